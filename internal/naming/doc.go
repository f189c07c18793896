// Package naming provides the per-rune case mappings shared by the tokenizer
// and the formatter.
//
// Mappings are the full Unicode mappings from golang.org/x/text/cases, applied
// one rune at a time: "ß" upper-cases to "SS" and "ﬄ" to "FFL", while a
// capital sigma always lower-cases to "σ" regardless of its position. Applying
// the mapping per rune keeps the result of a word independent of the words
// around it, which the tokenizer relies on when it re-reads its own output.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
