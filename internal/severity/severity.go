// Package severity provides the severity levels of issues reported while
// generating code or reading name lists.
//
// Levels are ordered from least to most severe: Info < Warning < Error.
package severity

// Severity indicates how serious an issue is.
type Severity int

const (
	// SeverityError means the output is incomplete or could not be formatted.
	SeverityError Severity = iota

	// SeverityWarning means an input was skipped or altered, but output was
	// still produced.
	SeverityWarning

	// SeverityInfo is an informational notice about a choice that was made.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity as its name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Rank orders severities from least (0) to most severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	default:
		return -1
	}
}
