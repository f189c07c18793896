package mcpserver

import (
	"context"

	"github.com/erraggy/casetools/convert"
	"github.com/erraggy/casetools/formatter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// conventionExample is converted to every convention in the listing.
const conventionExample = "XMLHttpRequest"

type conventionsInput struct{}

type conventionInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Join    string   `json:"join"`
	First   string   `json:"first"`
	Rest    string   `json:"rest"`
	Example string   `json:"example"`
	Default bool     `json:"default,omitempty"`
}

type conventionsOutput struct {
	Input       string           `json:"example_input"`
	Conventions []conventionInfo `json:"conventions"`
}

func handleConventions(_ context.Context, _ *mcp.CallToolRequest, _ conventionsInput) (*mcp.CallToolResult, conventionsOutput, error) {
	all := formatter.AllConventions()
	output := conventionsOutput{
		Input:       conventionExample,
		Conventions: makeSlice[conventionInfo](len(all)),
	}
	for _, c := range all {
		style := c.Style()
		output.Conventions = append(output.Conventions, conventionInfo{
			Name:    c.String(),
			Aliases: formatter.Aliases(c),
			Join:    style.Join,
			First:   style.First.String(),
			Rest:    style.Rest.String(),
			Example: convert.Convert(conventionExample, c),
			Default: c == cfg.DefaultConvention,
		})
	}
	return nil, output, nil
}
