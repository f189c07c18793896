// Package formatter joins tokenized words in a naming convention.
//
// A Convention names a Style: the string placed between words and the casing
// Rule for the first word and for every following word. Format applies the
// style and consults an acronym table for every word whose rule is
// RuleCapitalize; lower-case and upper-case positions never use the table, so
// camel case keeps its first word lower case even when that word is an
// acronym.
package formatter
