package acronym

import (
	"maps"
	"slices"

	"github.com/erraggy/casetools/internal/naming"
)

// Table maps lower-case words to their display form.
// A Table is immutable after construction and safe for concurrent use.
// The zero value is an empty table.
type Table struct {
	entries map[string]string
}

// New builds a Table from m. Keys are lower-cased; empty keys are dropped.
// When several keys fold to the same word, the lexically greatest original
// key wins.
func New(m map[string]string) Table {
	if len(m) == 0 {
		return Table{}
	}
	entries := make(map[string]string, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if key == "" {
			continue
		}
		entries[naming.ToLower(key)] = m[key]
	}
	return Table{entries: entries}
}

// FromList builds a Table that maps each entry's lower-case form to the
// entry itself: ["XML", "OAuth"] -> {"xml": "XML", "oauth": "OAuth"}.
func FromList(words []string) Table {
	if len(words) == 0 {
		return Table{}
	}
	m := make(map[string]string, len(words))
	for _, w := range words {
		m[w] = w
	}
	return New(m)
}

// Resolve returns the display form for word and whether the table has one.
// The lookup is case-insensitive; the display form is returned unmodified.
func (t Table) Resolve(word string) (string, bool) {
	if len(t.entries) == 0 || word == "" {
		return "", false
	}
	if v, ok := t.entries[word]; ok {
		return v, true
	}
	if lw := naming.ToLower(word); lw != word {
		v, ok := t.entries[lw]
		return v, ok
	}
	return "", false
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// IsEmpty reports whether the table has no entries.
func (t Table) IsEmpty() bool {
	return len(t.entries) == 0
}

// Words returns the lower-case keys in sorted order.
func (t Table) Words() []string {
	if len(t.entries) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}

// Map returns a copy of the entries.
func (t Table) Map() map[string]string {
	return maps.Clone(t.entries)
}

// Merge combines tables; entries of later tables override earlier ones.
func Merge(tables ...Table) Table {
	n := 0
	for _, t := range tables {
		n += len(t.entries)
	}
	if n == 0 {
		return Table{}
	}
	entries := make(map[string]string, n)
	for _, t := range tables {
		maps.Copy(entries, t.entries)
	}
	return Table{entries: entries}
}
