// Package tokenizer splits identifier-like strings into words.
//
// Every rune is classified as upper, lower, digit, caseless letter, mark or
// separator, and a small state machine decides where one word ends and the
// next begins:
//
//   - separators end the current word and are dropped; runs of separators
//     collapse and never produce empty words
//   - a lower-case letter followed by an upper-case letter starts a new word:
//     "camelCase" -> camel | case
//   - in a run of upper-case letters followed by a lower-case letter, the last
//     upper-case letter starts the next word: "XMLHttp" -> xml | http
//   - digits stick to the letters around them; letters after digits start a
//     new word only when one of the two case rules fires against the last
//     letter before the digits: "abc123Def456" -> abc123 | def456, while
//     "ABC123DEF456" stays a single word
//
// Caseless letters such as ideographs behave like lower-case letters, and
// combining marks stick to whatever precedes them without changing state.
//
// Words are stored lower-cased together with the original text they were cut
// from. Tokenize never fails and never panics; the empty string and strings
// made only of separators yield no words.
package tokenizer
