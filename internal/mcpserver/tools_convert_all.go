package mcpserver

import (
	"context"

	"github.com/erraggy/casetools/convert"
	"github.com/erraggy/casetools/formatter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertAllInput struct {
	Input string `json:"input" jsonschema:"The string to convert"`

	Acronyms      map[string]string `json:"acronyms,omitempty"       jsonschema:"Display forms keyed by word\\, e.g. {\"xml\": \"XML\"}. Override entries from acronym_source and go_initialisms."`
	Source        *acronymSource    `json:"acronym_source,omitempty" jsonschema:"An acronym table document to load"`
	GoInitialisms *bool             `json:"go_initialisms,omitempty" jsonschema:"Include the common Go initialisms (ID\\, URL\\, HTTP ...). Default configurable via CASETOOLS_GO_INITIALISMS."`
}

type conventionResult struct {
	Convention string `json:"convention"`
	Output     string `json:"output"`
}

type convertAllOutput struct {
	Input   string             `json:"input"`
	Words   []string           `json:"words"`
	Results []conventionResult `json:"results"`
}

func handleConvertAll(_ context.Context, _ *mcp.CallToolRequest, input convertAllInput) (*mcp.CallToolResult, convertAllOutput, error) {
	opts, err := acronymOptions{
		Acronyms:      input.Acronyms,
		Source:        input.Source,
		GoInitialisms: input.GoInitialisms,
	}.convertOptions()
	if err != nil {
		return errResult(err), convertAllOutput{}, nil
	}

	all := formatter.AllConventions()
	output := convertAllOutput{
		Input:   input.Input,
		Words:   convert.Split(input.Input),
		Results: makeSlice[conventionResult](len(all)),
	}
	for _, c := range all {
		output.Results = append(output.Results, conventionResult{
			Convention: c.String(),
			Output:     convert.Convert(input.Input, c, opts...),
		})
	}
	return nil, output, nil
}
