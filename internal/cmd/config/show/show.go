package show

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/iostreams"
)

// ShowOptions holds options for the config show command.
type ShowOptions struct {
	IOStreams    *iostreams.IOStreams
	Config       func() (*config.Config, error)
	ConfigLoader func() *config.Loader

	JSON bool
}

// NewCmdShow creates the config show command.
func NewCmdShow(f *cmdutil.Factory, runF func(context.Context, *ShowOptions) error) *cobra.Command {
	opts := &ShowOptions{
		IOStreams:    f.IOStreams,
		Config:       f.Config,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration hudkit runs with: built-in defaults, overlaid
with hudkit.yaml and HUDKIT_* environment variables.`,
		Example: `  # Show the effective configuration as YAML
  hudkit config show

  # Machine-readable output
  hudkit config show --json`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return showRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

func showRun(_ context.Context, opts *ShowOptions) error {
	ios := opts.IOStreams

	cfg, err := opts.Config()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if opts.JSON {
		return cmdutil.WriteJSON(ios.Out, cfg)
	}

	source := "built-in defaults"
	if opts.ConfigLoader != nil {
		if used := opts.ConfigLoader().ConfigFileUsed(); used != "" {
			source = used
		}
	}
	fmt.Fprintln(ios.ErrOut, ios.ColorScheme().Muted("# source: "+source))

	encoded, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = ios.Out.Write(encoded)
	return err
}
