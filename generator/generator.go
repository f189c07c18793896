package generator

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/erraggy/casetools/acronym"
	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/internal/fileutil"
	"github.com/erraggy/casetools/internal/issues"
	"github.com/erraggy/casetools/internal/severity"
	"github.com/erraggy/casetools/tokenizer"
)

// GenerateIssue represents a single problem found while generating.
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "names.go")
	Name string `json:"name"`
	// Content is the generated Go source code
	Content []byte `json:"-"`
}

// WriteFile writes the file to path, creating the parent directory if needed.
func (f *GeneratedFile) WriteFile(path string) error {
	return fileutil.WriteFile(path, f.Content, fileutil.ReadableByAll)
}

// Constant is one generated declaration.
type Constant struct {
	// Name is the Go identifier
	Name string `json:"name"`
	// Value is the original wire name
	Value string `json:"value"`
	// Line is the 1-based position of the name in the input
	Line int `json:"line"`
}

// Result contains the output of GenerateConstants.
type Result struct {
	// File is the generated source file
	File GeneratedFile `json:"file"`
	// PackageName is the Go package name used in generation
	PackageName string `json:"package"`
	// TypeName is the named string type, empty for untyped constants
	TypeName string `json:"type,omitempty"`
	// Constants lists the declarations in input order
	Constants []Constant `json:"constants"`
	// Issues lists skipped names and formatting problems
	Issues []GenerateIssue `json:"issues,omitempty"`
	// WarningCount is the number of warning issues
	WarningCount int `json:"warnings"`
	// ErrorCount is the number of error issues
	ErrorCount int `json:"errors"`
	// Success is true if the file was generated and formatted
	Success bool `json:"success"`
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetConstant returns the constant generated for value, or nil.
func (r *Result) GetConstant(value string) *Constant {
	for i := range r.Constants {
		if r.Constants[i].Value == value {
			return &r.Constants[i]
		}
	}
	return nil
}

// GenerateConstants builds a Go source file declaring one constant per name.
// Entries are positions in an input list; blank entries and entries starting
// with "#" are ignored.
func GenerateConstants(names []string, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &constGenerator{
		cfg:    cfg,
		table:  acronym.Merge(acronym.GoInitialisms(), cfg.acronyms),
		seen:   make(map[string]int),
		values: make(map[string]bool),
	}
	g.reserve()
	for i, name := range names {
		g.add(i+1, name)
	}
	if len(g.constants) == 0 {
		g.addIssue(GenerateIssue{
			Path:     "names",
			Message:  "no constants generated",
			Severity: severity.SeverityWarning,
			File:     cfg.source,
		})
	}

	content, err := g.render()
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	result := &Result{
		File:        GeneratedFile{Name: cfg.fileName, Content: content},
		PackageName: cfg.packageName,
		TypeName:    cfg.typeName,
		Constants:   g.constants,
		Issues:      g.issues,
	}
	result.WarningCount = issues.Count(result.Issues, severity.SeverityWarning)
	result.ErrorCount = issues.Count(result.Issues, severity.SeverityError)
	result.Success = !issues.HasErrors(result.Issues)
	return result, nil
}

type constGenerator struct {
	cfg       *generateConfig
	table     acronym.Table
	constants []Constant
	issues    []GenerateIssue
	// seen maps identifiers to the line that declared them
	seen map[string]int
	// values holds the wire names already handled
	values map[string]bool
}

// reserve claims the identifiers the template declares besides the
// constants, so a colliding name is skipped instead of breaking the build.
func (g *constGenerator) reserve() {
	if g.cfg.typeName == "" {
		return
	}
	g.seen[g.cfg.typeName] = 0
	if g.cfg.valuesVar {
		g.seen[g.cfg.typeName+"Values"] = 0
	}
}

func (g *constGenerator) add(line int, raw string) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.HasPrefix(value, "#") || g.values[value] {
		return
	}
	g.values[value] = true

	path := issues.IndexPath("names", line-1)
	words := tokenizer.Tokenize(value)
	if len(words) == 0 {
		g.addIssue(GenerateIssue{
			Path:     path,
			Message:  "name has no letters or digits; skipped",
			Severity: severity.SeverityWarning,
			Value:    value,
			Line:     line,
			File:     g.cfg.source,
		})
		return
	}

	ident := toIdentifier(formatter.Format(words, formatter.Pascal, g.table), g.cfg.typeName)
	if ident == "" {
		g.addIssue(GenerateIssue{
			Path:     path,
			Message:  "name does not produce a valid Go identifier; skipped",
			Severity: severity.SeverityWarning,
			Value:    value,
			Line:     line,
			File:     g.cfg.source,
		})
		return
	}

	if first, dup := g.seen[ident]; dup {
		msg := fmt.Sprintf("identifier %s already declared for line %d; skipped", ident, first)
		if first == 0 {
			msg = fmt.Sprintf("identifier %s is reserved by the generated file; skipped", ident)
		}
		g.addIssue(GenerateIssue{
			Path:     path,
			Message:  msg,
			Severity: severity.SeverityWarning,
			Value:    value,
			Line:     line,
			File:     g.cfg.source,
		})
		return
	}
	g.seen[ident] = line
	g.constants = append(g.constants, Constant{Name: ident, Value: value, Line: line})
}

func (g *constGenerator) addIssue(issue GenerateIssue) {
	g.issues = append(g.issues, issue)
}

// render executes the template and formats the result. A formatting failure
// is reported as an issue, not an error.
func (g *constGenerator) render() ([]byte, error) {
	var source string
	if g.cfg.source != "" {
		source = filepath.Base(g.cfg.source)
	}

	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "constants.go.tmpl", templateData{
		PackageName: g.cfg.packageName,
		TypeName:    g.cfg.typeName,
		Source:      source,
		ValuesVar:   g.cfg.valuesVar,
		Constants:   g.constants,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	formatted, err := formatAndFixImports(g.cfg.fileName, buf.Bytes())
	if err != nil {
		g.addIssue(GenerateIssue{
			Path:     "source",
			Message:  fmt.Sprintf("failed to format generated code: %v", err),
			Severity: severity.SeverityError,
		})
		return buf.Bytes(), nil
	}
	return formatted, nil
}
