package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/casetools/convert"
	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/internal/cliutil"
	"github.com/erraggy/casetools/tokenizer"
	"github.com/fatih/color"
)

// columnGap separates table columns.
const columnGap = "  "

// AllFlags contains flags for the all command
type AllFlags struct {
	Format   string
	NoColor  bool
	Width    int
	Acronyms acronymFlags
}

// conventionOutput is one convention of an input in structured output.
type conventionOutput struct {
	Convention string `json:"convention" yaml:"convention"`
	Output     string `json:"output" yaml:"output"`
}

// allRecord is the structured output for one input.
type allRecord struct {
	Input   string             `json:"input" yaml:"input"`
	Words   []string           `json:"words" yaml:"words"`
	Results []conventionOutput `json:"results" yaml:"results"`
}

// SetupAllFlags creates and configures a FlagSet for the all command.
// Returns the FlagSet and an AllFlags struct with bound flag variables.
func SetupAllFlags() (*flag.FlagSet, *AllFlags) {
	fs := flag.NewFlagSet("all", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &AllFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored headers")
	fs.IntVar(&flags.Width, "w", 40, "maximum column width in cells (0 = no limit)")
	fs.IntVar(&flags.Width, "width", 40, "maximum column width in cells (0 = no limit)")
	flags.Acronyms.register(fs, true)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools all [flags] <input...|->\n\n")
		cliutil.Writef(fs.Output(), "Show an identifier in every naming convention.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casetools all XMLHttpRequest\n")
		cliutil.Writef(fs.Output(), "  casetools all --go-initialisms user_id api_url\n")
		cliutil.Writef(fs.Output(), "  casetools all -f yaml getHTTPResponseCode\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Headers are colored only when stdout is a terminal\n")
		cliutil.Writef(fs.Output(), "  - Cells wider than --width are truncated with '...'\n")
	}

	return fs, flags
}

// HandleAll executes the all command
func HandleAll(args []string) error {
	fs, flags := SetupAllFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("all command requires at least one input or '-' for stdin")
	}

	table, err := flags.Acronyms.table()
	if err != nil {
		return fmt.Errorf("loading acronyms: %w", err)
	}

	inputs, err := collectInputs(fs.Args())
	if err != nil {
		return err
	}

	records := make([]allRecord, len(inputs))
	for i, in := range inputs {
		records[i] = allRecord{
			Input:   in,
			Words:   tokenizer.Split(in),
			Results: make([]conventionOutput, 0, len(formatter.AllConventions())),
		}
		if records[i].Words == nil {
			records[i].Words = []string{}
		}
		for _, c := range formatter.AllConventions() {
			records[i].Results = append(records[i].Results, conventionOutput{
				Convention: c.String(),
				Output:     convert.Convert(in, c, convert.WithAcronymTable(table)),
			})
		}
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, records, flags.Format)
	}

	useColor := !flags.NoColor && isTerminal(stdout)
	cliutil.Writef(stdout, "%s", renderTable(records, flags.Width, useColor))
	return nil
}

// renderTable lays records out with one row per convention and one column
// per input.
func renderTable(records []allRecord, width int, useColor bool) string {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgGreen)
	if useColor {
		header.EnableColor()
		label.EnableColor()
	} else {
		header.DisableColor()
		label.DisableColor()
	}

	conventions := formatter.AllConventions()
	rows := make([][]string, len(conventions)+1)
	rows[0] = []string{"CONVENTION"}
	for _, r := range records {
		rows[0] = append(rows[0], truncate(r.Input, width))
	}
	for i, c := range conventions {
		row := []string{c.String()}
		for _, r := range records {
			row = append(row, truncate(r.Results[i].Output, width))
		}
		rows[i+1] = row
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for col, cell := range row {
			widths[col] = max(widths[col], displayWidth(cell))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		for col, cell := range row {
			if col > 0 {
				b.WriteString(columnGap)
			}
			// Pad before coloring so escape codes do not count toward width.
			padded := cell
			if col < len(row)-1 {
				padded = padRight(cell, widths[col])
			}
			switch {
			case i == 0:
				b.WriteString(header.Sprint(padded))
			case col == 0:
				b.WriteString(label.Sprint(padded))
			default:
				b.WriteString(padded)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
