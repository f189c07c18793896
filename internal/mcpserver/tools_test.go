package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleConvert_Single(t *testing.T) {
	withConfig(t, func(c *serverConfig) {
		c.DefaultConvention = formatter.Snake
		c.GoInitialisms = false
	})

	result, out, err := handleConvert(context.Background(), nil, convertInput{Input: "XMLHttpRequest"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "snake", out.Convention)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, []conversion{{Input: "XMLHttpRequest", Output: "xml_http_request"}}, out.Results)
}

func TestHandleConvert_Batch(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.GoInitialisms = false })

	_, out, err := handleConvert(context.Background(), nil, convertInput{
		Inputs:     []string{"xml_http_request", "user_id", ""},
		Convention: "pascal",
		Acronyms:   map[string]string{"xml": "XML"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pascal", out.Convention)
	assert.Equal(t, []conversion{
		{Input: "xml_http_request", Output: "XMLHttpRequest"},
		{Input: "user_id", Output: "UserId"},
		{Input: "", Output: ""},
	}, out.Results)
}

func TestHandleConvert_GoInitialisms(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.GoInitialisms = true })

	_, out, err := handleConvert(context.Background(), nil, convertInput{Input: "user_id", Convention: "camel"})
	require.NoError(t, err)
	assert.Equal(t, "userID", out.Results[0].Output)

	off := false
	_, out, err = handleConvert(context.Background(), nil, convertInput{Input: "user_id", Convention: "camel", GoInitialisms: &off})
	require.NoError(t, err)
	assert.Equal(t, "userId", out.Results[0].Output)
}

func TestHandleConvert_AcronymSource(t *testing.T) {
	tableCache.reset()
	withConfig(t, func(c *serverConfig) { c.GoInitialisms = false })
	path := testutil.WriteTempAcronyms(t, "toml", map[string]any{"initialisms": []string{"HTTP", "OAuth"}})

	_, out, err := handleConvert(context.Background(), nil, convertInput{
		Input:      "oauth_http_client",
		Convention: "train",
		Source:     &acronymSource{File: path},
	})
	require.NoError(t, err)
	assert.Equal(t, "OAuth-HTTP-Client", out.Results[0].Output)
}

func TestHandleConvert_Errors(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.MaxInputs = 2 })

	tests := []struct {
		name  string
		input convertInput
		want  string
	}{
		{"no input", convertInput{}, "got none"},
		{"both inputs", convertInput{Input: "a", Inputs: []string{"b"}}, "got both"},
		{"too many inputs", convertInput{Inputs: []string{"a", "b", "c"}}, "exceeds maximum 2"},
		{"unknown convention", convertInput{Input: "a", Convention: "wavy"}, "valid conventions"},
		{"bad acronym source", convertInput{Input: "a", Source: &acronymSource{}}, "acronym_source"},
		{"missing acronym file", convertInput{Input: "a", Source: &acronymSource{File: "/tmp/does/not/exist.yaml"}}, "<path>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleConvert(context.Background(), nil, tt.input)
			require.NoError(t, err)
			assert.Contains(t, errorText(t, result), tt.want)
		})
	}
}

func TestHandleConvert_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, _, err := handleConvert(ctx, nil, convertInput{Inputs: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Contains(t, errorText(t, result), "canceled")
}

func TestHandleConvertAll(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.GoInitialisms = false })

	result, out, err := handleConvertAll(context.Background(), nil, convertAllInput{
		Input:    "xml_http_request",
		Acronyms: map[string]string{"xml": "XML"},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{"xml", "http", "request"}, out.Words)
	require.Len(t, out.Results, len(formatter.AllConventions()))

	got := make(map[string]string)
	for _, r := range out.Results {
		got[r.Convention] = r.Output
	}
	assert.Equal(t, "xml_http_request", got["snake"])
	assert.Equal(t, "xmlHttpRequest", got["camel"])
	assert.Equal(t, "XMLHttpRequest", got["pascal"])
	assert.Equal(t, "XML-Http-Request", got["train"])
	assert.Equal(t, "XML HTTP REQUEST", got["upper"])
}

func TestHandleSplit(t *testing.T) {
	_, out, err := handleSplit(context.Background(), nil, splitInput{Input: "abc123DEf456"})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Count)
	require.Len(t, out.Words, 3)
	assert.Equal(t, "abc123", out.Words[0].Text)
	assert.Equal(t, "D", out.Words[1].Raw)
	assert.Equal(t, "Ef456", out.Words[2].Raw)
	assert.Equal(t, 7, out.Words[2].Offset)

	_, out, err = handleSplit(context.Background(), nil, splitInput{Input: "--"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.NotNil(t, out.Words)
}

func TestHandleConventions(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.DefaultConvention = formatter.Camel })

	_, out, err := handleConventions(context.Background(), nil, conventionsInput{})
	require.NoError(t, err)
	require.Len(t, out.Conventions, len(formatter.AllConventions()))

	byName := make(map[string]conventionInfo)
	for _, c := range out.Conventions {
		byName[c.Name] = c
	}
	train := byName["train"]
	assert.Equal(t, "-", train.Join)
	assert.Equal(t, "capitalize", train.First)
	assert.Equal(t, "Xml-Http-Request", train.Example)
	assert.Contains(t, train.Aliases, "http-header")
	assert.True(t, byName["camel"].Default)
	assert.False(t, byName["snake"].Default)
}

func TestHandleGenerate_Inline(t *testing.T) {
	result, out, err := handleGenerate(context.Background(), nil, generateInput{
		Names:       []string{"user_id", "created-at", "--"},
		PackageName: "fields",
		TypeName:    "Field",
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.True(t, out.Success)
	assert.Equal(t, 2, out.ConstantCount)
	assert.Equal(t, 1, out.WarningCount)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "warning", out.Issues[0].Severity)
	assert.Contains(t, out.Source, "package fields")
	assert.Contains(t, out.Source, `FieldUserID`)
	assert.Empty(t, out.WrittenTo)
}

func TestHandleGenerate_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "names.go")
	_, out, err := handleGenerate(context.Background(), nil, generateInput{
		Names:    []string{"api_key"},
		Acronyms: map[string]string{"key": "KEY"},
		Output:   path,
	})
	require.NoError(t, err)
	assert.Equal(t, path, out.WrittenTo)
	assert.Empty(t, out.Source)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `APIKEY = "api_key"`))
}

func TestHandleGenerate_Errors(t *testing.T) {
	result, _, err := handleGenerate(context.Background(), nil, generateInput{})
	require.NoError(t, err)
	assert.Contains(t, errorText(t, result), "names is required")

	result, _, err = handleGenerate(context.Background(), nil, generateInput{Names: []string{"a"}, PackageName: "9lives"})
	require.NoError(t, err)
	assert.Contains(t, errorText(t, result), "invalid options")
}
