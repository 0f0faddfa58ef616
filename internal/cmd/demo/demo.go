// Package demo implements the demo command: a simulated multi-worker
// transfer tracked by one HUD.
package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams"
	"github.com/schmitthub/hudkit/internal/logger"
	"github.com/schmitthub/hudkit/internal/signals"
	"github.com/schmitthub/hudkit/internal/tui"
)

// DemoOptions holds options for the demo command.
type DemoOptions struct {
	IOStreams    *iostreams.IOStreams
	TUI          *tui.TUI
	Config       func() (*config.Config, error)
	ConfigLoader func() *config.Loader

	Style      string
	Animation  string
	Grace      time.Duration
	MinDisplay time.Duration
	DelayHide  time.Duration
	Workers    int
	Size       string
	Rate       string
	Title      string
	Mode       string

	// changed reports whether a flag was set on the command line. Flags
	// that were not set fall back to the config file.
	changed func(name string) bool
}

// NewCmdDemo creates the demo command.
func NewCmdDemo(f *cmdutil.Factory, runF func(context.Context, *DemoOptions) error) *cobra.Command {
	opts := &DemoOptions{
		IOStreams:    f.IOStreams,
		TUI:          f.TUI,
		Config:       f.Config,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a simulated transfer under a progress HUD",
		Long: `Starts a number of workers that each copy a fixed amount of data at a
steady rate, and tracks their combined progress with one HUD.

The HUD waits out the grace period before it appears, stays up for at
least the minimum display time, and hides after --delay-hide once the
transfer completes. Ctrl+C or q stops the workers.

Flags that are not given fall back to the hud and demo sections of
hudkit.yaml. When the config file changes during the run the HUD is
re-themed.`,
		Example: `  # Four workers copying 64MiB each
  hudkit demo

  # A pie indicator that pops in
  hudkit demo --style pie --animation zoom

  # Line-oriented output for CI logs
  hudkit demo --mode plain --size 8MiB --rate 32MiB`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.changed = cmd.Flags().Changed
			if opts.changed("workers") && opts.Workers < 1 {
				return cmdutil.FlagErrorf("--workers must be at least 1")
			}
			if opts.changed("mode") {
				switch opts.Mode {
				case tui.ModeAuto, tui.ModeTTY, tui.ModePlain:
				default:
					return cmdutil.FlagErrorf("invalid --mode %q (want auto, tty or plain)", opts.Mode)
				}
			}
			for _, d := range []struct {
				name string
				v    time.Duration
			}{{"grace", opts.Grace}, {"min-display", opts.MinDisplay}, {"delay-hide", opts.DelayHide}} {
				if d.v < 0 {
					return cmdutil.FlagErrorf("--%s must not be negative", d.name)
				}
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return demoRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Style, "style", "s", "", "Indicator style: activity, linear, doughnut or pie")
	cmd.Flags().StringVarP(&opts.Animation, "animation", "a", "", "Show/hide animation: fade, zoom, zoom-out or zoom-in")
	cmd.Flags().DurationVar(&opts.Grace, "grace", 0, "Wait this long before showing the HUD")
	cmd.Flags().DurationVar(&opts.MinDisplay, "min-display", 0, "Keep a shown HUD up for at least this long")
	cmd.Flags().DurationVar(&opts.DelayHide, "delay-hide", 0, "Keep the finished HUD up for this long")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "Number of simulated workers")
	cmd.Flags().StringVar(&opts.Size, "size", "", "Bytes each worker copies, e.g. 64MiB")
	cmd.Flags().StringVar(&opts.Rate, "rate", "", "Bytes per second per worker, e.g. 24MiB")
	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "HUD title")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "Display: auto, tty or plain")

	return cmd
}

// settings is the merged result of config and flags.
type settings struct {
	hudOpts   []hud.Option
	delayHide time.Duration
	load      workload
	title     string
	mode      string
	themeMode string
}

func (opts *DemoOptions) isSet(name string) bool {
	return opts.changed != nil && opts.changed(name)
}

// resolve layers the flags that were given over cfg.
func (opts *DemoOptions) resolve(cfg *config.Config) (*settings, error) {
	hudOpts, err := cmdutil.HUDOptions(cfg)
	if err != nil {
		return nil, err
	}
	s := &settings{
		delayHide: cfg.HUD.DelayHide,
		title:     cfg.Demo.Title,
		mode:      cfg.Demo.Mode,
		themeMode: cfg.Theme.Mode,
	}

	if opts.isSet("style") {
		style, err := hud.ParseStyle(opts.Style)
		if err != nil {
			return nil, cmdutil.FlagErrorWrap(err)
		}
		hudOpts = append(hudOpts, hud.WithStyle(style))
	}
	if opts.isSet("animation") {
		animation, err := hud.ParseAnimationType(opts.Animation)
		if err != nil {
			return nil, cmdutil.FlagErrorWrap(err)
		}
		hudOpts = append(hudOpts, hud.WithAnimationType(animation))
	}
	if opts.isSet("grace") {
		hudOpts = append(hudOpts, hud.WithGracePeriod(opts.Grace))
	}
	if opts.isSet("min-display") {
		hudOpts = append(hudOpts, hud.WithMinimumDisplayTime(opts.MinDisplay))
	}
	s.hudOpts = append(hudOpts, hud.WithLogger(logger.For("hud")))
	if opts.isSet("delay-hide") {
		s.delayHide = opts.DelayHide
	}
	if opts.isSet("title") {
		s.title = opts.Title
	}
	if opts.isSet("mode") {
		s.mode = opts.Mode
	}

	s.load.workers = cfg.Demo.Workers
	if opts.isSet("workers") {
		s.load.workers = opts.Workers
	}
	size, rate := cfg.Demo.Size, cfg.Demo.Rate
	if opts.isSet("size") {
		size = opts.Size
	}
	if opts.isSet("rate") {
		rate = opts.Rate
	}
	if s.load.size, err = iostreams.ParseSize(size); err != nil {
		return nil, cmdutil.FlagErrorWrap(err)
	}
	if s.load.rate, err = iostreams.ParseSize(rate); err != nil {
		return nil, cmdutil.FlagErrorWrap(err)
	}
	return s, nil
}

func demoRun(ctx context.Context, opts *DemoOptions) error {
	cfg, err := opts.Config()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	s, err := opts.resolve(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signals.SetupSignalContext(ctx)
	defer cancel()

	sess := newSession(opts.IOStreams, s.title, s.load, s.hudOpts)
	sess.delayHide = s.delayHide
	sess.themeMode = s.themeMode
	if opts.ConfigLoader != nil {
		if loader := opts.ConfigLoader(); loader.ConfigFileUsed() != "" {
			sess.watch = loader
		}
	}

	logger.Debug().
		Int("workers", s.load.workers).
		Str("size", iostreams.FormatBytes(s.load.size)).
		Str("rate", iostreams.FormatBytes(s.load.rate)+"/s").
		Str("mode", s.mode).
		Msg("starting demo")

	err = opts.TUI.Run(ctx, s.mode, sess)
	cancel()
	sess.wait()

	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return cmdutil.CancelError
	default:
		// Run has printed the failure summary.
		return cmdutil.SilentError
	}
}
