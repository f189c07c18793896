package convert

import (
	"github.com/erraggy/casetools/acronym"
	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/tokenizer"
)

// Convert rewrites s in convention c.
func Convert(s string, c formatter.Convention, opts ...Option) string {
	words := tokenizer.Tokenize(s)
	if len(words) == 0 {
		return ""
	}
	return formatter.Format(words, c, applyOptions(opts).acronyms())
}

// Split returns the lower-case words of s.
func Split(s string) []string {
	return tokenizer.Split(s)
}

// ToSnake converts s to "snake_case".
func ToSnake(s string, opts ...Option) string {
	return Convert(s, formatter.Snake, opts...)
}

// ToScreamingSnake converts s to "SCREAMING_SNAKE_CASE".
func ToScreamingSnake(s string, opts ...Option) string {
	return Convert(s, formatter.ScreamingSnake, opts...)
}

// ToCamel converts s to "camelCase". The first word is always lower case,
// even when it has an acronym entry.
func ToCamel(s string, opts ...Option) string {
	return Convert(s, formatter.Camel, opts...)
}

// ToPascal converts s to "PascalCase".
func ToPascal(s string, opts ...Option) string {
	return Convert(s, formatter.Pascal, opts...)
}

// ToKebab converts s to "kebab-case".
func ToKebab(s string, opts ...Option) string {
	return Convert(s, formatter.Kebab, opts...)
}

// ToScreamingKebab converts s to "SCREAMING-KEBAB-CASE".
func ToScreamingKebab(s string, opts ...Option) string {
	return Convert(s, formatter.ScreamingKebab, opts...)
}

// ToTrain converts s to "Train-Case".
func ToTrain(s string, opts ...Option) string {
	return Convert(s, formatter.Train, opts...)
}

// ToTitle converts s to "Title Case".
func ToTitle(s string, opts ...Option) string {
	return Convert(s, formatter.Title, opts...)
}

// ToLower converts s to "lower case": lower-case words separated by spaces.
func ToLower(s string) string {
	return formatter.Format(tokenizer.Tokenize(s), formatter.Lower, acronym.Table{})
}

// ToUpper converts s to "UPPER CASE": upper-case words separated by spaces.
func ToUpper(s string) string {
	return formatter.Format(tokenizer.Tokenize(s), formatter.Upper, acronym.Table{})
}
