package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/casetools/generator"
	"github.com/erraggy/casetools/internal/cliutil"
	"github.com/erraggy/casetools/internal/severity"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output      string
	PackageName string
	TypeName    string
	Values      bool
	Strict      bool
	NoWarnings  bool
	Acronyms    acronymFlags
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file (default: stdout)")
	fs.StringVar(&flags.PackageName, "p", generator.DefaultPackageName, "Go package name for generated code")
	fs.StringVar(&flags.PackageName, "package", generator.DefaultPackageName, "Go package name for generated code")
	fs.StringVar(&flags.TypeName, "type", "", "named string type for the constants (default: untyped)")
	fs.BoolVar(&flags.Values, "values", false, "also declare a slice of every value (requires -type)")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")
	flags.Acronyms.register(fs, false)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools generate [flags] <names-file|->\n\n")
		cliutil.Writef(fs.Output(), "Generate Go constants from a list of wire names, one per line.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casetools generate -p headers -type Header -o headers/names.go headers.txt\n")
		cliutil.Writef(fs.Output(), "  casetools generate -type Field --values -a acronyms.yaml fields.txt\n")
		cliutil.Writef(fs.Output(), "  psql -Atc 'select column_name from columns' | casetools generate -p db -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Blank lines and lines starting with '#' are ignored\n")
		cliutil.Writef(fs.Output(), "  - The common Go initialisms (ID, URL, HTTP ...) are always applied\n")
		cliutil.Writef(fs.Output(), "  - Names that do not form a valid identifier are reported and skipped\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one names file or '-' for stdin")
	}
	namesPath := fs.Arg(0)

	table, err := flags.Acronyms.table()
	if err != nil {
		return fmt.Errorf("loading acronyms: %w", err)
	}

	names, err := readNamesFile(namesPath)
	if err != nil {
		return err
	}

	opts := []generator.Option{
		generator.WithPackageName(flags.PackageName),
		generator.WithTypeName(flags.TypeName),
		generator.WithValuesVar(flags.Values),
		generator.WithAcronyms(table),
	}
	if namesPath != StdinFilePath {
		opts = append(opts, generator.WithSource(namesPath))
	}
	if flags.Output != "" {
		opts = append(opts, generator.WithFileName(filepath.Base(flags.Output)))
	}

	result, err := generator.GenerateConstants(names, opts...)
	if err != nil {
		return err
	}

	for _, issue := range result.Issues {
		if flags.NoWarnings && issue.Severity.Rank() < severity.SeverityError.Rank() {
			continue
		}
		cliutil.Writef(stderr, "%s\n", issue.String())
	}

	if !result.Success {
		return fmt.Errorf("generation failed with %d error(s)", result.ErrorCount)
	}
	if flags.Strict && result.HasWarnings() {
		return fmt.Errorf("generation produced %d warning(s) (strict mode)", result.WarningCount)
	}

	if flags.Output == "" {
		cliutil.Writef(stdout, "%s", result.File.Content)
		return nil
	}

	if err := result.File.WriteFile(flags.Output); err != nil {
		return fmt.Errorf("writing %s: %w", flags.Output, err)
	}
	cliutil.Writef(stderr, "Wrote %d constant(s) from %s to %s\n",
		len(result.Constants), FormatSourcePath(namesPath), flags.Output)
	return nil
}

// readNamesFile reads the names list from path, or from stdin for "-".
func readNamesFile(path string) ([]string, error) {
	if path == StdinFilePath {
		return generator.ReadNames(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening names file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return generator.ReadNames(f)
}
