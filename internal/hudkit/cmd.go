// Package hudkit is the entry point of the hudkit CLI.
package hudkit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/hudkit/internal/cmd/factory"
	"github.com/schmitthub/hudkit/internal/cmd/root"
	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOk        = 0
	exitError     = 1
	exitUsage     = 2
	exitInterrupt = 130
)

// Main is the entry point for the hudkit CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)
	return run(f, os.Args[1:])
}

// run executes args against the command tree built from f and maps the
// result onto an exit code.
func run(f *cmdutil.Factory, args []string) int {
	rootCmd := root.NewCmdRoot(f)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(f.IOStreams.Out)
	rootCmd.SetErr(f.IOStreams.ErrOut)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	cmd, err := rootCmd.ExecuteContextC(context.Background())
	if err == nil {
		return exitOk
	}
	return handleError(f, cmd, err)
}

func handleError(f *cmdutil.Factory, cmd *cobra.Command, err error) int {
	stderr := f.IOStreams.ErrOut
	cs := f.IOStreams.ColorScheme()

	var flagErr *cmdutil.FlagError
	var exitErr *cmdutil.ExitError
	switch {
	case errors.Is(err, cmdutil.SilentError):
		return exitError
	case errors.Is(err, cmdutil.CancelError), errors.Is(err, context.Canceled):
		return exitInterrupt
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &flagErr) || isUsageError(err):
		fmt.Fprintln(stderr, cs.FailureIconWithColor(err.Error()))
		if !strings.Contains(err.Error(), "Usage:") {
			fmt.Fprintln(stderr)
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return exitUsage
	default:
		fmt.Fprintln(stderr, cs.FailureIconWithColor(err.Error()))
		fmt.Fprintf(stderr, "Run '%s --help' for more information.\n", cmd.CommandPath())
		return exitError
	}
}

// isUsageError matches the argument errors of cobra and cmdutil.NoArgs.
func isUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "accepts no arguments") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "requires ")
}
