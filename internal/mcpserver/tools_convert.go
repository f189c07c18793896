package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/casetools/convert"
	"github.com/erraggy/casetools/internal/options"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Input      string   `json:"input,omitempty"      jsonschema:"A single string to convert"`
	Inputs     []string `json:"inputs,omitempty"     jsonschema:"Several strings to convert. Use instead of input."`
	Convention string   `json:"convention,omitempty" jsonschema:"Target convention (snake\\, camel\\, pascal\\, kebab\\, train\\, title ...). Default configurable via CASETOOLS_DEFAULT_CONVENTION."`

	Acronyms      map[string]string `json:"acronyms,omitempty"       jsonschema:"Display forms keyed by word\\, e.g. {\"xml\": \"XML\"}. Override entries from acronym_source and go_initialisms."`
	Source        *acronymSource    `json:"acronym_source,omitempty" jsonschema:"An acronym table document to load"`
	GoInitialisms *bool             `json:"go_initialisms,omitempty" jsonschema:"Include the common Go initialisms (ID\\, URL\\, HTTP ...). Default configurable via CASETOOLS_GO_INITIALISMS."`
}

func (in convertInput) acronymSettings() acronymOptions {
	return acronymOptions{Acronyms: in.Acronyms, Source: in.Source, GoInitialisms: in.GoInitialisms}
}

type conversion struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type convertOutput struct {
	Convention string       `json:"convention"`
	Count      int          `json:"count"`
	Results    []conversion `json:"results"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := options.RequireExactlyOne("input",
		options.Source{Name: "input", Set: input.Input != ""},
		options.Source{Name: "inputs", Set: len(input.Inputs) > 0},
	); err != nil {
		return errResult(err), convertOutput{}, nil
	}
	if len(input.Inputs) > cfg.MaxInputs {
		return errResult(fmt.Errorf("%d inputs exceeds maximum %d; split the call, or set CASETOOLS_MAX_INPUTS to increase",
			len(input.Inputs), cfg.MaxInputs)), convertOutput{}, nil
	}

	c, err := resolveConvention(input.Convention)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	opts, err := input.acronymSettings().convertOptions()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	inputs := input.Inputs
	if len(inputs) == 0 {
		inputs = []string{input.Input}
	}

	outputs, err := convert.ConvertAll(ctx, inputs, c, opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Convention: c.String(),
		Count:      len(outputs),
		Results:    makeSlice[conversion](len(outputs)),
	}
	for i, out := range outputs {
		output.Results = append(output.Results, conversion{Input: inputs[i], Output: out})
	}
	return nil, output, nil
}
