package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/erraggy/casetools/internal/naming"
)

// Word is a single word cut from the input.
type Word struct {
	// Text is the lower-case form of the word. It is never empty.
	Text string `json:"text"`
	// Raw is the word exactly as it appeared in the input.
	Raw string `json:"raw"`
	// Offset is the byte offset of Raw in the input.
	Offset int `json:"offset"`
}

// String returns the lower-case text of the word.
func (w Word) String() string {
	return w.Text
}

// state is the boundary state of the scanner.
type state int

const (
	// stateStart: no letter seen in the current word yet.
	stateStart state = iota
	// stateInLower: the last letter was lower case (or caseless).
	stateInLower
	// stateInUpper: the last letter was a single upper-case letter.
	stateInUpper
	// stateInUpperRun: the last two or more letters were upper case.
	stateInUpperRun
	// stateInDigit: inside a digit run; scanner.letter keeps the state
	// that was active before the digits.
	stateInDigit
)

// scanner holds the pending word while Tokenize walks the input.
type scanner struct {
	src    string
	words  []Word
	mapper *naming.Mapper
	lower  strings.Builder

	// start is the byte offset of the pending word, or -1 when there is none.
	start  int
	state  state
	letter state
}

// Tokenize splits s into words.
// Example: "XMLHttpRequest" -> xml | http | request
// Example: "FieldNamE11" -> field | nam | e11
// Example: "99BOTTLES" -> 99bottles
func Tokenize(s string) []Word {
	if s == "" {
		return nil
	}

	sc := &scanner{
		src:    s,
		mapper: naming.Get(),
		start:  -1,
	}
	defer naming.Put(sc.mapper)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		sc.step(i, i+size, Classify(r))
		i += size
	}
	sc.flush(len(s))

	return sc.words
}

// Split returns the lower-case text of each word in s.
func Split(s string) []string {
	words := Tokenize(s)
	if len(words) == 0 {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

// step advances the state machine over the rune at s[i:next].
func (sc *scanner) step(i, next int, c Class) {
	switch c {
	case ClassSeparator:
		sc.flush(i)
		sc.state = stateStart
		sc.letter = stateStart
		return
	case ClassMark:
		if sc.start < 0 {
			sc.start = i
		}
		return
	}

	if sc.start < 0 {
		sc.start = i
	}

	switch c {
	case ClassDigit:
		if sc.state != stateInDigit {
			sc.letter = sc.state
			sc.state = stateInDigit
		}

	case ClassLower, ClassOther:
		sc.state = stateInLower

	case ClassUpper:
		prev := sc.state
		if prev == stateInDigit {
			prev = sc.letter
		}
		switch prev {
		case stateInLower:
			sc.flush(i)
			sc.start = i
			sc.state = stateInUpper
		case stateInUpper, stateInUpperRun:
			if sc.nextLetterClass(next).isLowerLike() {
				sc.flush(i)
				sc.start = i
				sc.state = stateInUpper
			} else {
				sc.state = stateInUpperRun
			}
		default:
			sc.state = stateInUpper
		}
	}
}

// nextLetterClass returns the class of the first non-mark rune at or after
// offset i, or ClassSeparator at the end of input.
func (sc *scanner) nextLetterClass(i int) Class {
	for i < len(sc.src) {
		r, size := utf8.DecodeRuneInString(sc.src[i:])
		if c := Classify(r); c != ClassMark {
			return c
		}
		i += size
	}
	return ClassSeparator
}

// flush ends the pending word at offset end.
func (sc *scanner) flush(end int) {
	if sc.start < 0 {
		return
	}
	if end > sc.start {
		raw := sc.src[sc.start:end]
		sc.lower.Reset()
		sc.mapper.WriteLower(&sc.lower, raw)
		sc.words = append(sc.words, Word{
			Text:   sc.lower.String(),
			Raw:    raw,
			Offset: sc.start,
		})
	}
	sc.start = -1
}
