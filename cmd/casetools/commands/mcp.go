package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/casetools/internal/cliutil"
	"github.com/erraggy/casetools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the casetools MCP server over stdin/stdout.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_DEFAULT_CONVENTION    convention used when a call names none (default: snake)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_GO_INITIALISMS        apply the Go initialisms by default (default: false)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_MAX_INPUTS            maximum inputs per convert call (default: 10000)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_MAX_INLINE_SIZE       maximum inline acronym content in bytes (default: 1048576)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_CACHE_ENABLED         cache loaded acronym tables (default: true)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_CACHE_MAX_SIZE        maximum cached tables (default: 16)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_CACHE_TTL             cache entry lifetime (default: 15m)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_CACHE_SWEEP_INTERVAL  cache sweep interval (default: 60s)\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
