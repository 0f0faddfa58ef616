package config

import (
	"github.com/spf13/cobra"

	"github.com/schmitthub/hudkit/internal/cmd/config/check"
	initcmd "github.com/schmitthub/hudkit/internal/cmd/config/init"
	"github.com/schmitthub/hudkit/internal/cmd/config/show"
	"github.com/schmitthub/hudkit/internal/cmdutil"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long:  `Commands for creating, inspecting and validating hudkit.yaml.`,
	}

	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(show.NewCmdShow(f, nil))
	cmd.AddCommand(check.NewCmdCheck(f, nil))

	return cmd
}
