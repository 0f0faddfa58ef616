package factory

import (
	"os"
	"sync"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/iostreams"
	"github.com/schmitthub/hudkit/internal/logger"
	"github.com/schmitthub/hudkit/internal/tui"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/hudkit/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()
	ios.Logger = &logger.Log

	// Auto-detect color support
	if ios.IsStderrTTY() {
		ios.DetectTerminalTheme()
		// Respect NO_COLOR environment variable
		if os.Getenv("NO_COLOR") != "" {
			ios.SetColorEnabled(false)
		}
	} else {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
		TUI:       tui.NewTUI(ios),
	}
	if wd, err := os.Getwd(); err == nil {
		f.WorkDir = wd
	}

	// --- Lazy dependency closures ---

	// Config
	var (
		configOnce   sync.Once
		configLoader *config.Loader
		configData   *config.Config
		configErr    error
	)
	f.ConfigLoader = func() *config.Loader {
		configOnce.Do(func() {
			var opts []config.LoaderOption
			// --config is parsed before any command runs.
			if f.ConfigFile != "" {
				opts = append(opts, config.WithFile(f.ConfigFile))
			}
			configLoader = config.NewLoader(f.WorkDir, opts...)
		})
		return configLoader
	}
	f.Config = func() (*config.Config, error) {
		if configData != nil || configErr != nil {
			return configData, configErr
		}
		configData, configErr = f.ConfigLoader().Load()
		return configData, configErr
	}
	f.ResetConfig = func() {
		configData = nil
		configErr = nil
	}

	return f
}
