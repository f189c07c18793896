package tokenizer

import "unicode"

// Class is the character class of a rune as seen by the tokenizer.
type Class int

const (
	// ClassSeparator ends a word and is discarded.
	ClassSeparator Class = iota
	// ClassUpper is an upper-case letter.
	ClassUpper
	// ClassLower is a lower-case letter.
	ClassLower
	// ClassDigit is any numeric rune.
	ClassDigit
	// ClassOther is a letter without case, such as an ideograph.
	// It is treated like ClassLower for boundary purposes.
	ClassOther
	// ClassMark is a combining mark. It joins the current word and leaves
	// the boundary state untouched.
	ClassMark
)

// String returns the lower-case name of the class.
func (c Class) String() string {
	switch c {
	case ClassSeparator:
		return "separator"
	case ClassUpper:
		return "upper"
	case ClassLower:
		return "lower"
	case ClassDigit:
		return "digit"
	case ClassOther:
		return "other"
	case ClassMark:
		return "mark"
	default:
		return "unknown"
	}
}

// Classify returns the class of r.
func Classify(r rune) Class {
	if r < 0x80 {
		switch {
		case 'a' <= r && r <= 'z':
			return ClassLower
		case 'A' <= r && r <= 'Z':
			return ClassUpper
		case '0' <= r && r <= '9':
			return ClassDigit
		default:
			return ClassSeparator
		}
	}
	switch {
	case unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r):
		return ClassUpper
	case unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r):
		return ClassLower
	case unicode.IsNumber(r):
		return ClassDigit
	case unicode.IsMark(r):
		return ClassMark
	case unicode.IsLetter(r) || unicode.Is(unicode.Other_Alphabetic, r):
		return ClassOther
	default:
		return ClassSeparator
	}
}

// isLowerLike reports whether c counts as lower case for boundary rules.
func (c Class) isLowerLike() bool {
	return c == ClassLower || c == ClassOther
}
