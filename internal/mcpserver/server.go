// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casetools conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"strings"

	"github.com/erraggy/casetools"
	"github.com/erraggy/casetools/formatter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `casetools MCP server: splits identifiers into words and rewrites them in a naming convention (snake, camel, pascal, kebab, train, title, ...).

Configuration: All defaults are configurable via CASETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CASETOOLS_DEFAULT_CONVENTION (default: snake): convention used when a call does not name one
- CASETOOLS_GO_INITIALISMS (default: false): apply the common Go initialisms (ID, URL, HTTP ...) by default
- CASETOOLS_MAX_INPUTS (default: 10000): maximum number of strings per convert call
- CASETOOLS_MAX_INLINE_SIZE (default: 1MiB): maximum size of inline acronym documents
- CASETOOLS_CACHE_ENABLED (default: true): cache loaded acronym tables
- CASETOOLS_CACHE_TTL (default: 15m): cache TTL for acronym tables

Acronyms only change words a convention capitalizes: pascal, train and title words, and every camel word after the first.

Caching: Acronym tables are cached per session. File entries use path+mtime as key (auto-invalidated on change), inline content uses a SHA-256 hash. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		tableCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "casetools", Version: casetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "convert",
		Description: "Convert one string (input) or many (inputs) to a naming convention: " +
			strings.Join(formatter.ValidConventions(), ", ") +
			". Aliases such as constant or http-header are accepted. Results keep input order. " +
			"Optional acronyms override the casing of capitalized words, e.g. {\"xml\": \"XML\"} turns xml_http into XMLHttp in pascal.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_all",
		Description: "Convert a single string to every naming convention at once. Useful to compare conventions or pick one.",
	}, handleConvertAll)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "Split a string into its words. Returns each word in lower case with its original text and byte offset. Shows how word boundaries are detected in mixed inputs like XMLHttpRequest or abc123DEf456.",
	}, handleSplit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "conventions",
		Description: "List the supported naming conventions with their join string, casing rules, aliases and an example.",
	}, handleConventions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Go constants for a list of wire names (JSON fields, headers, env vars). Identifiers are PascalCase with Go initialisms, optionally prefixed by a named string type. Returns the source inline, or writes it when output is set.",
	}, handleGenerate)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// resolveConvention parses name, falling back to cfg.DefaultConvention.
func resolveConvention(name string) (formatter.Convention, error) {
	if name == "" {
		return cfg.DefaultConvention, nil
	}
	return formatter.ParseConvention(name)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
