// Package issues provides the issue type reported by the generator and
// helpers for locating issues in a names list.
package issues

import (
	"fmt"

	"github.com/erraggy/casetools/internal/severity"
)

// Issue represents a single problem found while processing an input.
type Issue struct {
	// Path locates the problem (e.g., "names[3]").
	Path string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// Value is the problematic value (optional)
	Value string `json:"value,omitempty"`
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int `json:"line,omitempty"`
	// File is the source file path (empty for stdin or in-memory input)
	File string `json:"file,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Location(), i.Message)
	if i.Value != "" {
		result += fmt.Sprintf(" (%q)", i.Value)
	}
	return result
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line" if file is set, "line N" if only line is set,
// or the path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d", i.File, i.Line)
	}
	return fmt.Sprintf("line %d", i.Line)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Count returns how many issues have the given severity.
func Count(list []Issue, sev severity.Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity == sev {
			n++
		}
	}
	return n
}

// HasErrors reports whether any issue has error severity.
func HasErrors(list []Issue) bool {
	return Count(list, severity.SeverityError) > 0
}
