package commands

import (
	"errors"
	"flag"
	"strings"

	"github.com/erraggy/casetools/internal/cliutil"
	"github.com/erraggy/casetools/tokenizer"
)

// SplitFlags contains flags for the split command
type SplitFlags struct {
	Format    string
	Separator string
}

// splitRecord is one split input in structured output.
type splitRecord struct {
	Input string           `json:"input" yaml:"input"`
	Words []tokenizer.Word `json:"words" yaml:"words"`
}

// SetupSplitFlags creates and configures a FlagSet for the split command.
// Returns the FlagSet and a SplitFlags struct with bound flag variables.
func SetupSplitFlags() (*flag.FlagSet, *SplitFlags) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &SplitFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Separator, "sep", " ", "separator between words in text output")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools split [flags] <input...|->\n\n")
		cliutil.Writef(fs.Output(), "Print the words an identifier is made of.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casetools split XMLHttpRequest\n")
		cliutil.Writef(fs.Output(), "  casetools split -f json getHTTPResponseCode2\n")
		cliutil.Writef(fs.Output(), "  casetools split --sep , user_id\n")
	}

	return fs, flags
}

// HandleSplit executes the split command
func HandleSplit(args []string) error {
	fs, flags := SetupSplitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	inputs, err := collectInputs(fs.Args())
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		records := make([]splitRecord, len(inputs))
		for i, in := range inputs {
			words := tokenizer.Tokenize(in)
			if words == nil {
				words = []tokenizer.Word{}
			}
			records[i] = splitRecord{Input: in, Words: words}
		}
		return OutputStructured(stdout, records, flags.Format)
	}

	lines := make([]string, len(inputs))
	for i, in := range inputs {
		lines[i] = strings.Join(tokenizer.Split(in), flags.Separator)
	}
	cliutil.WriteLines(stdout, lines)
	return nil
}
