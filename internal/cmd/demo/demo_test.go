package demo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/iostreams/iostreamstest"
	"github.com/schmitthub/hudkit/internal/tui"
)

func TestNewCmdDemo_Flags(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}

	var got *DemoOptions
	cmd := NewCmdDemo(f, func(_ context.Context, opts *DemoOptions) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{"-s", "pie", "-a", "zoom", "--grace", "0s", "-w", "2", "--size", "1MiB", "-m", "plain"})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, got)
	assert.Equal(t, "pie", got.Style)
	assert.Equal(t, "zoom", got.Animation)
	assert.Equal(t, 2, got.Workers)
	assert.Equal(t, "1MiB", got.Size)
	assert.Equal(t, "plain", got.Mode)
	assert.True(t, got.isSet("grace"), "a zero duration still counts as set")
	assert.False(t, got.isSet("rate"))
}

func TestNewCmdDemo_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no workers", args: []string{"--workers", "0"}},
		{name: "negative grace", args: []string{"--grace", "-1s"}},
		{name: "negative delay", args: []string{"--delay-hide", "-5ms"}},
		{name: "mode", args: []string{"--mode", "fancy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tio := iostreamstest.New()
			cmd := NewCmdDemo(&cmdutil.Factory{IOStreams: tio.IOStreams}, func(context.Context, *DemoOptions) error {
				t.Fatal("runF must not be called")
				return nil
			})
			cmd.SetArgs(tt.args)
			cmd.SetOut(tio.ErrBuf)
			cmd.SetErr(tio.ErrBuf)

			err := cmd.Execute()
			var flagErr *cmdutil.FlagError
			assert.True(t, errors.As(err, &flagErr), "got %v", err)
		})
	}
}

// flags marks the named flags as given on the command line.
func flags(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestResolve_ConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.HUD.DelayHide = time.Second
	opts := &DemoOptions{Workers: 9, Title: "ignored"}

	s, err := opts.resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Demo.Workers, s.load.workers)
	assert.Equal(t, int64(64<<20), s.load.size)
	assert.Equal(t, int64(24<<20), s.load.rate)
	assert.Equal(t, cfg.Demo.Title, s.title)
	assert.Equal(t, cfg.Demo.Mode, s.mode)
	assert.Equal(t, time.Second, s.delayHide)
	assert.NotEmpty(t, s.hudOpts)
}

func TestResolve_FlagsWin(t *testing.T) {
	opts := &DemoOptions{
		Workers:   2,
		Size:      "1KiB",
		Rate:      "2KiB",
		Title:     "Syncing",
		Mode:      tui.ModePlain,
		DelayHide: 0,
		changed:   flags("workers", "size", "rate", "title", "mode", "delay-hide"),
	}
	cfg := config.DefaultConfig()
	cfg.HUD.DelayHide = time.Minute

	s, err := opts.resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, s.load.workers)
	assert.Equal(t, int64(1024), s.load.size)
	assert.Equal(t, int64(2048), s.load.rate)
	assert.Equal(t, "Syncing", s.title)
	assert.Equal(t, tui.ModePlain, s.mode)
	assert.Zero(t, s.delayHide)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		opts     DemoOptions
		mutate   func(*config.Config)
		flagErr  bool
		contains string
	}{
		{name: "style flag", opts: DemoOptions{Style: "hexagon", changed: flags("style")}, flagErr: true},
		{name: "animation flag", opts: DemoOptions{Animation: "spin", changed: flags("animation")}, flagErr: true},
		{name: "size flag", opts: DemoOptions{Size: "lots", changed: flags("size")}, flagErr: true, contains: "lots"},
		{name: "zero rate", opts: DemoOptions{Rate: "0", changed: flags("rate")}, flagErr: true, contains: "positive"},
		{name: "config style", mutate: func(c *config.Config) { c.HUD.Style = "hexagon" }, contains: "hud.style"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			_, err := tt.opts.resolve(cfg)
			require.Error(t, err)
			var flagErr *cmdutil.FlagError
			assert.Equal(t, tt.flagErr, errors.As(err, &flagErr), "got %v", err)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func runOptions(tio *iostreamstest.TestIOStreams, changed func(string) bool) *DemoOptions {
	return &DemoOptions{
		IOStreams: tio.IOStreams,
		TUI:       tui.NewTUI(tio.IOStreams),
		Config:    func() (*config.Config, error) { return config.DefaultConfig(), nil },
		Workers:   2,
		Size:      "4KiB",
		Rate:      "64MiB",
		Title:     "Copying",
		Mode:      tui.ModePlain,
		changed:   changed,
	}
}

func TestDemoRun_Plain(t *testing.T) {
	tio := iostreamstest.New()
	opts := runOptions(tio, flags("workers", "size", "rate", "title", "mode"))

	require.NoError(t, demoRun(context.Background(), opts))

	out := tio.ErrBuf.String()
	assert.Contains(t, out, "━━ Copying")
	assert.Contains(t, out, "[show] Copying")
	assert.Contains(t, out, "[hide] Copying")
	assert.Contains(t, out, "[ok] Copying finished in")
	assert.Empty(t, tio.OutBuf.String())
}

func TestDemoRun_Canceled(t *testing.T) {
	tio := iostreamstest.New()
	opts := runOptions(tio, flags("workers", "size", "rate", "title", "mode"))
	opts.Size = "1GiB"
	opts.Rate = "1KiB"

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	err := demoRun(ctx, opts)
	assert.ErrorIs(t, err, cmdutil.CancelError)
	assert.Contains(t, tio.ErrBuf.String(), "[warn] Copying interrupted after")
}

func TestDemoRun_ConfigError(t *testing.T) {
	tio := iostreamstest.New()
	boom := errors.New("broken")
	opts := runOptions(tio, nil)
	opts.Config = func() (*config.Config, error) { return nil, boom }

	err := demoRun(context.Background(), opts)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, tio.ErrBuf.String())
}
