package generator

import (
	"go/token"

	"github.com/erraggy/casetools/acronym"
	"github.com/erraggy/casetools/caseerrors"
)

const (
	// DefaultPackageName is used when WithPackageName is not given.
	DefaultPackageName = "names"
	// DefaultFileName is used when WithFileName is not given.
	DefaultFileName = "names.go"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	packageName string
	typeName    string
	fileName    string
	source      string
	valuesVar   bool
	acronyms    acronym.Table
}

func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName: DefaultPackageName,
		fileName:    DefaultFileName,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.valuesVar && cfg.typeName == "" {
		return nil, &caseerrors.ConfigError{
			Option:  "values",
			Message: "a values slice requires a type name",
		}
	}
	return cfg, nil
}

// WithPackageName sets the package clause of the generated file.
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if !token.IsIdentifier(name) || name == "_" {
			return &caseerrors.ConfigError{Option: "package", Value: name, Message: "not a valid Go package name"}
		}
		cfg.packageName = name
		return nil
	}
}

// WithTypeName declares a named string type and prefixes every constant
// with it. An empty name generates untyped constants.
func WithTypeName(name string) Option {
	return func(cfg *generateConfig) error {
		if name != "" && (!token.IsIdentifier(name) || !token.IsExported(name)) {
			return &caseerrors.ConfigError{Option: "type", Value: name, Message: "not a valid exported Go identifier"}
		}
		cfg.typeName = name
		return nil
	}
}

// WithFileName sets the name of the generated file.
func WithFileName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return &caseerrors.ConfigError{Option: "file", Message: "file name is empty"}
		}
		cfg.fileName = name
		return nil
	}
}

// WithSource records where the names came from. It appears in the file
// header and in issue locations.
func WithSource(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.source = path
		return nil
	}
}

// WithValuesVar adds a slice variable listing every constant. It requires
// WithTypeName.
func WithValuesVar(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.valuesVar = enabled
		return nil
	}
}

// WithAcronyms sets display forms that override the Go initialisms.
func WithAcronyms(t acronym.Table) Option {
	return func(cfg *generateConfig) error {
		cfg.acronyms = t
		return nil
	}
}
