package generator

import (
	"go/token"
	"strings"
	"unicode"
)

// escapeReservedWord appends an underscore to Go keywords.
func escapeReservedWord(name string) string {
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

// toIdentifier turns a Pascal-case name into a Go identifier, or returns ""
// when nothing usable is left.
func toIdentifier(pascal, prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(pascal) + 1)
	b.WriteString(prefix)
	for _, r := range pascal {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == prefix {
		return ""
	}

	// Ensure starts with a letter
	if first := []rune(name)[0]; unicode.IsDigit(first) {
		name = "N" + name
	}

	name = escapeReservedWord(name)
	if !token.IsIdentifier(name) {
		return ""
	}
	return name
}
