package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/casetools/formatter"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings for acronym sources.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInputs     int
	MaxInlineSize int64

	// Conversion defaults.
	DefaultConvention formatter.Convention
	GoInitialisms     bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASETOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("CASETOOLS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("CASETOOLS_CACHE_MAX_SIZE", 16),
		CacheTTL:           envDuration("CASETOOLS_CACHE_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("CASETOOLS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInputs:          envInt("CASETOOLS_MAX_INPUTS", 10000),
		MaxInlineSize:      envInt64("CASETOOLS_MAX_INLINE_SIZE", 1024*1024),
		DefaultConvention:  envConvention("CASETOOLS_DEFAULT_CONVENTION", formatter.Snake),
		GoInitialisms:      envBool("CASETOOLS_GO_INITIALISMS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envConvention(key string, fallback formatter.Convention) formatter.Convention {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	c, err := formatter.ParseConvention(v)
	if err != nil {
		slog.Warn("invalid convention env var, using default", "key", key, "value", v, "default", fallback.String()) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return c
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
