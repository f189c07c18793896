package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/casetools/convert"
	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Convention  string
	Concurrency int
	Format      string
	Acronyms    acronymFlags
}

// conversionRecord is one converted input in structured output.
type conversionRecord struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// convertReport is the structured output of the convert command.
type convertReport struct {
	Convention string             `json:"convention" yaml:"convention"`
	Count      int                `json:"count" yaml:"count"`
	Results    []conversionRecord `json:"results" yaml:"results"`
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Convention, "t", "snake", "target convention")
	fs.StringVar(&flags.Convention, "target", "snake", "target convention")
	fs.IntVar(&flags.Concurrency, "j", 0, "number of parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	flags.Acronyms.register(fs, true)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools convert [flags] [input...|-]\n\n")
		cliutil.Writef(fs.Output(), "Convert identifiers to a naming convention.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casetools convert XMLHttpRequest\n")
		cliutil.Writef(fs.Output(), "  casetools convert -t camel user_id created_at\n")
		cliutil.Writef(fs.Output(), "  casetools convert -t pascal --go-initialisms user_id api_url\n")
		cliutil.Writef(fs.Output(), "  casetools convert -t kebab --acronym oauth=OAuth -f json oauth_token\n")
		cliutil.Writef(fs.Output(), "  cut -d, -f1 columns.csv | casetools convert -t pascal -\n")
		cliutil.Writef(fs.Output(), "\nConventions:\n")
		cliutil.Writef(fs.Output(), "  %s\n", strings.Join(formatter.ValidConventions(), ", "))
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  With no inputs, or with '-', each line of stdin is converted.\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	convention, err := formatter.ParseConvention(flags.Convention)
	if err != nil {
		return err
	}

	table, err := flags.Acronyms.table()
	if err != nil {
		return fmt.Errorf("loading acronyms: %w", err)
	}

	inputs, err := collectInputs(fs.Args())
	if err != nil {
		return err
	}

	outputs, err := convert.ConvertAll(context.Background(), inputs, convention,
		convert.WithAcronymTable(table),
		convert.WithConcurrency(flags.Concurrency),
	)
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	if flags.Format != FormatText {
		report := convertReport{
			Convention: convention.String(),
			Count:      len(outputs),
			Results:    make([]conversionRecord, len(outputs)),
		}
		for i, out := range outputs {
			report.Results[i] = conversionRecord{Input: inputs[i], Output: out}
		}
		return OutputStructured(stdout, report, flags.Format)
	}

	cliutil.WriteLines(stdout, outputs)
	return nil
}
