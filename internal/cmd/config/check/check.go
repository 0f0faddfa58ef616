package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/iostreams"
	"github.com/schmitthub/hudkit/internal/logger"
)

// CheckOptions holds options for the config check command.
type CheckOptions struct {
	IOStreams *iostreams.IOStreams
	WorkDir   string

	File string
}

// NewCmdCheck creates the config check command.
func NewCmdCheck(f *cmdutil.Factory, runF func(context.Context, *CheckOptions) error) *cobra.Command {
	opts := &CheckOptions{
		IOStreams: f.IOStreams,
		WorkDir:   f.WorkDir,
	}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate hudkit.yaml",
		Long: `Validates the hudkit configuration that would be loaded from the current
directory, or the file given with --file.

Checks for:
  - YAML syntax and value types
  - Non-negative durations and a positive spring damping
  - Known style, animation, theme mode and demo mode names`,
		Example: `  # Validate the configuration hudkit would load
  hudkit config check

  # Validate a specific file
  hudkit config check --file ./hudkit.yaml`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return checkRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the file to validate")

	return cmd
}

func checkRun(_ context.Context, opts *CheckOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	var loaderOpts []config.LoaderOption
	if opts.File != "" {
		loaderOpts = append(loaderOpts, config.WithFile(opts.File))
	}
	loader := config.NewLoader(opts.WorkDir, loaderOpts...)

	cfg, err := loader.Load()
	if err == nil {
		_, err = cmdutil.HUDOptions(cfg)
	}
	if err != nil {
		fmt.Fprintln(ios.ErrOut, cs.FailureIconWithColor("Configuration is invalid"))
		fmt.Fprintf(ios.ErrOut, "  %s\n", err)
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(ios.ErrOut, "  Fix %s in %s and run 'hudkit config check' again.\n", verr.Key, source(loader))
		}
		return cmdutil.SilentError
	}

	logger.Debug().Str("file", loader.ConfigFileUsed()).Msg("configuration valid")

	fmt.Fprintln(ios.ErrOut, cs.SuccessIconWithColor("Configuration is valid"))
	fmt.Fprintf(ios.ErrOut, "  Source:    %s\n", source(loader))
	fmt.Fprintf(ios.ErrOut, "  Style:     %s\n", cfg.HUD.Style)
	fmt.Fprintf(ios.ErrOut, "  Animation: %s\n", cfg.HUD.Animation)
	fmt.Fprintf(ios.ErrOut, "  Theme:     %s\n", cfg.Theme.Mode)
	return nil
}

func source(loader *config.Loader) string {
	if used := loader.ConfigFileUsed(); used != "" {
		return used
	}
	return "built-in defaults"
}
