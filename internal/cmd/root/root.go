package root

import (
	"github.com/spf13/cobra"

	configcmd "github.com/schmitthub/hudkit/internal/cmd/config"
	"github.com/schmitthub/hudkit/internal/cmd/demo"
	"github.com/schmitthub/hudkit/internal/cmd/render"
	versioncmd "github.com/schmitthub/hudkit/internal/cmd/version"
	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/logger"
)

// NewCmdRoot creates the root command for the hudkit CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hudkit",
		Short: "Overlay progress HUDs for the terminal",
		Long: `hudkit draws a heads-up progress display over your terminal: a bezel
holding a spinner or a determinate bar, doughnut or pie indicator, a title
and a details line.

Quick start:
  hudkit demo                    # Watch a HUD track a simulated transfer
  hudkit render --fraction 0.4   # Print an indicator at 40%
  hudkit config init             # Write a commented hudkit.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(f.Version, f.Commit),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f)
			logger.SetCommand(cmd.CommandPath())

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", f.Debug).
				Msg("hudkit starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&f.ConfigFile, "config", "c", "", "Path to hudkit.yaml (default: search the working directory, then the user config dir)")

	cmd.SetVersionTemplate(versioncmd.Format(f.Version, f.Commit))

	cmd.AddCommand(demo.NewCmdDemo(f, nil))
	cmd.AddCommand(render.NewCmdRender(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, f.Version, f.Commit))

	return cmd
}

// initializeLogger sets up the logger with file logging if the config asks
// for it. Falls back to console-only logging on any error.
func initializeLogger(f *cmdutil.Factory) {
	console := f.IOStreams.ErrOut

	if f.Config == nil {
		_ = logger.InitWithWriter(console, f.Debug, "", nil)
		return
	}
	cfg, err := f.Config()
	if err != nil {
		// The command reports the config error itself.
		_ = logger.InitWithWriter(console, f.Debug, "", nil)
		logger.Debug().Err(err).Msg("file logging unavailable: failed to load config")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: cfg.Logging.FileEnabled,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxAgeDays:  cfg.Logging.MaxAgeDays,
		MaxBackups:  cfg.Logging.MaxBackups,
		Compress:    cfg.Logging.Compress,
	}
	if err := logger.InitWithWriter(console, f.Debug, config.LogsDir(), logCfg); err != nil {
		_ = logger.InitWithWriter(console, f.Debug, "", nil)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
