package mcpserver

import (
	"context"

	"github.com/erraggy/casetools/tokenizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type splitInput struct {
	Input string `json:"input" jsonschema:"The string to split into words"`
}

type splitOutput struct {
	Input string           `json:"input"`
	Count int              `json:"count"`
	Words []tokenizer.Word `json:"words"`
}

func handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	words := tokenizer.Tokenize(input.Input)
	if words == nil {
		words = []tokenizer.Word{}
	}
	return nil, splitOutput{Input: input.Input, Count: len(words), Words: words}, nil
}
