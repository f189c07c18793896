package commands

import (
	"errors"
	"flag"
	"strconv"
	"strings"

	"github.com/erraggy/casetools/convert"
	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/internal/cliutil"
)

// conventionExample is converted by every convention in the listing.
const conventionExample = "XMLHttpRequest"

// ConventionsFlags contains flags for the conventions command
type ConventionsFlags struct {
	Format string
}

// conventionEntry describes one convention in the listing.
type conventionEntry struct {
	Name    string   `json:"name" yaml:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Join    string   `json:"join" yaml:"join"`
	First   string   `json:"first" yaml:"first"`
	Rest    string   `json:"rest" yaml:"rest"`
	Example string   `json:"example" yaml:"example"`
}

// SetupConventionsFlags creates and configures a FlagSet for the conventions command.
// Returns the FlagSet and a ConventionsFlags struct with bound flag variables.
func SetupConventionsFlags() (*flag.FlagSet, *ConventionsFlags) {
	fs := flag.NewFlagSet("conventions", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &ConventionsFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools conventions [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the supported naming conventions.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleConventions executes the conventions command
func HandleConventions(args []string) error {
	fs, flags := SetupConventionsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	entries := listConventions()
	if flags.Format != FormatText {
		return OutputStructured(stdout, entries, flags.Format)
	}

	rows := [][]string{{"NAME", "JOIN", "FIRST", "REST", "EXAMPLE", "ALIASES"}}
	for _, e := range entries {
		rows = append(rows, []string{
			e.Name, strconv.Quote(e.Join), e.First, e.Rest, e.Example, strings.Join(e.Aliases, ", "),
		})
	}
	cliutil.Writef(stdout, "%s", alignRows(rows))
	return nil
}

func listConventions() []conventionEntry {
	all := formatter.AllConventions()
	entries := make([]conventionEntry, len(all))
	for i, c := range all {
		style := c.Style()
		entries[i] = conventionEntry{
			Name:    c.String(),
			Aliases: formatter.Aliases(c),
			Join:    style.Join,
			First:   style.First.String(),
			Rest:    style.Rest.String(),
			Example: convert.Convert(conventionExample, c),
		}
	}
	return entries
}

// alignRows pads every column to its widest cell.
func alignRows(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for col, cell := range row {
			if col == len(widths) {
				widths = append(widths, 0)
			}
			widths[col] = max(widths[col], displayWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for col, cell := range row {
			if col > 0 {
				b.WriteString(columnGap)
			}
			if col < len(row)-1 {
				cell = padRight(cell, widths[col])
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}
