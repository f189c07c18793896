package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/casetools/acronym"
	"github.com/erraggy/casetools/convert"
	"github.com/erraggy/casetools/internal/options"
)

// acronymSource is an acronym table document given by path or inline.
// Exactly one of File or Content must be set.
type acronymSource struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an acronym table file (.yaml, .yml, .json or .toml)"`
	Content string `json:"content,omitempty" jsonschema:"Inline acronym table document"`
	Format  string `json:"format,omitempty"  jsonschema:"Format of inline content: yaml (default)\\, json or toml"`
}

// acronymOptions are the acronym settings shared by the conversion tools.
type acronymOptions struct {
	Acronyms      map[string]string
	Source        *acronymSource
	GoInitialisms *bool
}

// table merges the configured acronyms in precedence order: Go
// initialisms, then the source document, then inline acronyms.
func (a acronymOptions) table() (acronym.Table, error) {
	goInit := cfg.GoInitialisms
	if a.GoInitialisms != nil {
		goInit = *a.GoInitialisms
	}

	var tables []acronym.Table
	if goInit {
		tables = append(tables, acronym.GoInitialisms())
	}
	if a.Source != nil {
		t, err := a.Source.resolve()
		if err != nil {
			return acronym.Table{}, err
		}
		tables = append(tables, t)
	}
	tables = append(tables, acronym.New(a.Acronyms))
	return acronym.Merge(tables...), nil
}

// convertOptions returns the acronym settings as conversion options.
func (a acronymOptions) convertOptions() ([]convert.Option, error) {
	t, err := a.table()
	if err != nil {
		return nil, err
	}
	return []convert.Option{convert.WithAcronymTable(t)}, nil
}

// cacheEntry holds a cached table with LRU ordering and TTL expiry.
type cacheEntry struct {
	table     acronym.Table
	insertAt  time.Time
	expiresAt time.Time
}

// tableCacheStore provides a session-scoped cache for loaded acronym tables.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash of format and content.
// Entries expire after cfg.CacheTTL and a background sweeper removes them.
type tableCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var tableCache = &tableCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached table. Expired entries are lazily removed.
func (c *tableCacheStore) get(key string) (acronym.Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return acronym.Table{}, false
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.table, true
	}
	return acronym.Table{}, false
}

// putWithTTL stores a table with a specific TTL, evicting the oldest entry if at capacity.
func (c *tableCacheStore) putWithTTL(key string, t acronym.Table, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{table: t, insertAt: now, expiresAt: now.Add(ttl)}

	// If already cached, just update.
	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	// Evict oldest if at capacity.
	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *tableCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *tableCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *tableCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *tableCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given source.
// Returns "" when the source cannot be keyed (e.g. an unreadable file).
func makeCacheKey(s acronymSource) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Format + "\x00" + s.Content))
		return fmt.Sprintf("content:%s", hex.EncodeToString(h[:]))
	default:
		return ""
	}
}

// resolve loads the table from whichever input was provided, using the cache
// when it is enabled.
func (s acronymSource) resolve() (acronym.Table, error) {
	if err := options.RequireExactlyOne("acronym_source",
		options.Source{Name: "file", Set: s.File != ""},
		options.Source{Name: "content", Set: s.Content != ""},
	); err != nil {
		return acronym.Table{}, err
	}

	// Enforce inline content size limit.
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return acronym.Table{}, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set CASETOOLS_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
	}
	if key != "" {
		if cached, ok := tableCache.get(key); ok {
			return cached, nil
		}
	}

	var (
		t   acronym.Table
		err error
	)
	if s.File != "" {
		t, err = acronym.LoadFile(s.File)
	} else {
		var format acronym.Format
		format, err = acronym.ParseFormat(s.Format)
		if err == nil {
			t, err = acronym.Parse([]byte(s.Content), format)
		}
	}
	if err != nil {
		return acronym.Table{}, err
	}

	if key != "" {
		tableCache.putWithTTL(key, t, cfg.CacheTTL)
	}
	return t, nil
}
