package main

import (
	"fmt"
	"os"

	"github.com/erraggy/casetools"
	"github.com/erraggy/casetools/cmd/casetools/commands"
)

// commandHandlers maps sub-command names to their handlers.
var commandHandlers = map[string]func([]string) error{
	"convert":     commands.HandleConvert,
	"split":       commands.HandleSplit,
	"all":         commands.HandleAll,
	"generate":    commands.HandleGenerate,
	"conventions": commands.HandleConventions,
	"mcp":         commands.HandleMCP,
}

// knownCommands lists every command name, including the built-in ones.
var knownCommands = []string{
	"convert", "split", "all", "generate", "conventions", "mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casetools v%s\n", casetools.Version())
		if len(os.Args) > 2 && (os.Args[2] == "-l" || os.Args[2] == "--long") {
			fmt.Println(casetools.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := commandHandlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`casetools - Identifier Case Conversion Tools

Usage:
  casetools <command> [options]

Commands:
  convert      Convert identifiers to a naming convention
  split        Print the words an identifier is made of
  all          Show an identifier in every naming convention
  generate     Generate Go constants from a list of wire names
  conventions  List the supported naming conventions
  mcp          Run the MCP server over stdio
  version      Show version information (--long for build details)
  help         Show this help message

Examples:
  casetools convert XMLHttpRequest
  casetools convert -t camel --go-initialisms user_id api_url
  casetools split getHTTPResponseCode2
  casetools all "this-contains_ ALLKinds"
  casetools generate -p headers -type Header -o headers/names.go headers.txt

Run 'casetools <command> --help' for more information on a command.`)
}
