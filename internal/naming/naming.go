package naming

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mapper writes case-mapped runes into a strings.Builder.
// A Mapper holds stateful casers and must not be shared between goroutines;
// use Get and Put to borrow one from the pool.
type Mapper struct {
	lower cases.Caser
	upper cases.Caser
}

// NewMapper creates a Mapper using language-neutral mappings.
func NewMapper() *Mapper {
	return &Mapper{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
	}
}

var mapperPool = sync.Pool{
	New: func() any {
		return NewMapper()
	},
}

// Get borrows a Mapper from the pool.
func Get() *Mapper {
	return mapperPool.Get().(*Mapper)
}

// Put returns a Mapper to the pool.
func Put(m *Mapper) {
	if m == nil {
		return
	}
	mapperPool.Put(m)
}

// WriteLower writes the lower-case mapping of s to b.
func (m *Mapper) WriteLower(b *strings.Builder, s string) {
	for _, r := range s {
		m.writeRune(b, r, false)
	}
}

// WriteUpper writes the upper-case mapping of s to b.
func (m *Mapper) WriteUpper(b *strings.Builder, s string) {
	for _, r := range s {
		m.writeRune(b, r, true)
	}
}

// WriteCapitalized writes s with its first rune upper-mapped and the
// remaining runes lower-mapped.
func (m *Mapper) WriteCapitalized(b *strings.Builder, s string) {
	first := true
	for _, r := range s {
		m.writeRune(b, r, first)
		first = false
	}
}

func (m *Mapper) writeRune(b *strings.Builder, r rune, upper bool) {
	if r < utf8.RuneSelf {
		switch {
		case upper && 'a' <= r && r <= 'z':
			r -= 'a' - 'A'
		case !upper && 'A' <= r && r <= 'Z':
			r += 'a' - 'A'
		}
		b.WriteByte(byte(r))
		return
	}
	if upper {
		b.WriteString(m.upper.String(string(r)))
	} else {
		b.WriteString(m.lower.String(string(r)))
	}
}

// ToLower returns the per-rune lower-case mapping of s.
// Example: "XΣXΣ" -> "xσxσ"
func ToLower(s string) string {
	return apply(s, (*Mapper).WriteLower)
}

func apply(s string, write func(*Mapper, *strings.Builder, string)) string {
	if s == "" {
		return ""
	}
	m := Get()
	defer Put(m)
	var b strings.Builder
	b.Grow(len(s))
	write(m, &b, s)
	return b.String()
}
