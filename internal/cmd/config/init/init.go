package initcmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/iostreams"
)

// InitOptions holds options for the config init command.
type InitOptions struct {
	IOStreams *iostreams.IOStreams

	Path  string
	Force bool
}

// NewCmdInit creates the config init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams: f.IOStreams,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default hudkit.yaml",
		Long: `Writes a commented hudkit.yaml with every setting at its default.

Without --path the file goes to the user config directory
($XDG_CONFIG_HOME/hudkit, or $HUDKIT_CONFIG_DIR when set).`,
		Example: `  # Create the user configuration
  hudkit config init

  # Create a project-local configuration, replacing any existing one
  hudkit config init --path ./hudkit.yaml --force`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Path == "" {
				opts.Path = config.UserConfigPath()
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Path, "path", "p", "", "Write the file here instead of the user config directory")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func initRun(_ context.Context, opts *InitOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	if err := config.WriteDefault(opts.Path, opts.Force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Fprintln(ios.ErrOut, cs.FailureIconWithColor(fmt.Sprintf("%s already exists", opts.Path)))
			fmt.Fprintln(ios.ErrOut, "  Use --force to overwrite it.")
			return cmdutil.SilentError
		}
		return err
	}

	fmt.Fprintln(ios.ErrOut, cs.SuccessIconWithColor(fmt.Sprintf("Wrote %s", opts.Path)))
	return nil
}
