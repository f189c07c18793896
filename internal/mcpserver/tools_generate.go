package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/casetools/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Names       []string          `json:"names"                    jsonschema:"Wire names\\, one constant per name"`
	PackageName string            `json:"package_name,omitempty"   jsonschema:"Go package name for generated code (default: names)"`
	TypeName    string            `json:"type_name,omitempty"      jsonschema:"Exported string type to declare; also prefixes every constant"`
	ValuesVar   bool              `json:"values_var,omitempty"     jsonschema:"Also declare a slice with every constant (requires type_name)"`
	Acronyms    map[string]string `json:"acronyms,omitempty"       jsonschema:"Display forms that override the Go initialisms\\, e.g. {\"id\": \"Id\"}"`
	Source      *acronymSource    `json:"acronym_source,omitempty" jsonschema:"An acronym table document to load"`
	Output      string            `json:"output,omitempty"         jsonschema:"File path to write the generated source. If omitted the source is returned inline."`
}

type generateIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Value    string `json:"value,omitempty"`
}

type generateOutput struct {
	Success       bool                 `json:"success"`
	PackageName   string               `json:"package_name"`
	TypeName      string               `json:"type_name,omitempty"`
	ConstantCount int                  `json:"constant_count"`
	Constants     []generator.Constant `json:"constants,omitempty"`
	WarningCount  int                  `json:"warning_count"`
	Issues        []generateIssue      `json:"issues,omitempty"`
	WrittenTo     string               `json:"written_to,omitempty"`
	Source        string               `json:"source,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names is required")), generateOutput{}, nil
	}
	if len(input.Names) > cfg.MaxInputs {
		return errResult(fmt.Errorf("%d names exceeds maximum %d; set CASETOOLS_MAX_INPUTS to increase",
			len(input.Names), cfg.MaxInputs)), generateOutput{}, nil
	}

	// The generator always merges the Go initialisms under this table.
	noGoInit := false
	table, err := acronymOptions{Acronyms: input.Acronyms, Source: input.Source, GoInitialisms: &noGoInit}.table()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts := []generator.Option{
		generator.WithTypeName(input.TypeName),
		generator.WithValuesVar(input.ValuesVar),
		generator.WithAcronyms(table),
	}
	if input.PackageName != "" {
		opts = append(opts, generator.WithPackageName(input.PackageName))
	}

	result, err := generator.GenerateConstants(input.Names, opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Success:       result.Success,
		PackageName:   result.PackageName,
		TypeName:      result.TypeName,
		ConstantCount: len(result.Constants),
		Constants:     result.Constants,
		WarningCount:  result.WarningCount,
		Issues:        makeSlice[generateIssue](len(result.Issues)),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, generateIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Value:    issue.Value,
		})
	}

	if input.Output != "" {
		if err := result.File.WriteFile(input.Output); err != nil {
			return errResult(fmt.Errorf("failed to write generated file: %w", err)), generateOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Source = string(result.File.Content)
	}

	return nil, output, nil
}
