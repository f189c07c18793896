// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"

	"github.com/erraggy/casetools/caseerrors"
)

// Source is one way of supplying an input, such as a file path or inline
// content.
type Source struct {
	// Name is the option name shown in errors
	Name string
	// Set reports whether the caller supplied this source
	Set bool
}

// RequireExactlyOne returns a *caseerrors.ConfigError for option unless
// exactly one of sources is set.
func RequireExactlyOne(option string, sources ...Source) error {
	var set []string
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
		if s.Set {
			set = append(set, s.Name)
		}
	}
	if len(set) == 1 {
		return nil
	}

	var got string
	switch {
	case len(set) == 0:
		got = "none"
	case len(set) == 2 && len(sources) == 2:
		got = "both"
	default:
		got = strings.Join(set, ", ")
	}
	return &caseerrors.ConfigError{
		Option:  option,
		Message: fmt.Sprintf("exactly one of %s must be provided (got %s)", joinOr(names), got),
	}
}

// joinOr joins names as "a or b" or "a, b or c".
func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}
