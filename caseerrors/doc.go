// Package caseerrors provides structured error types for casetools.
//
// Conversions themselves never fail. Errors only come from the layers around
// them: loading acronym tables from files, and interpreting configuration
// such as convention names or CLI flags. The types here support
// [errors.Is] and [errors.As] so callers can tell those cases apart.
//
// # Error Types
//
//   - [ParseError]: an acronym table document could not be decoded
//   - [ConfigError]: an unknown convention name or an invalid option value
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	table, err := acronym.LoadFile("acronyms.yaml")
//	if err != nil {
//	    var perr *caseerrors.ParseError
//	    if errors.As(err, &perr) {
//	        log.Printf("bad %s file %s: %v", perr.Format, perr.Path, perr.Cause)
//	    }
//	}
package caseerrors
