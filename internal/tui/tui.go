// Package tui hosts HUDs in the terminal: a BubbleTea program that draws
// the bezel over a host view, and a line-oriented fallback for pipes and
// CI logs.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams"
	"github.com/schmitthub/hudkit/internal/scheduler"
)

// Display modes accepted by Run.
const (
	ModeAuto  = "auto"
	ModeTTY   = "tty"
	ModePlain = "plain"
)

// Session is the work a HUD run tracks.
type Session interface {
	// Start runs once on the UI thread when the display is ready. It
	// attaches HUDs through ui and starts the work. It must not block.
	Start(ui *UI)
	// HostView renders the content the HUDs float over.
	HostView(width int) string
	// Title names the run in summaries.
	Title() string
}

// UI is the handle a Session drives the display through. Container,
// Scheduler and the HUDs they hold belong to the UI thread; Post and Done
// are safe from any goroutine.
type UI struct {
	Context   context.Context
	Container *hud.Container
	Scheduler scheduler.Scheduler
	// Dark reports whether the terminal has a dark background.
	Dark bool
	// Animated is false where animation cannot be seen (plain output).
	Animated bool

	post  func(func())
	done  func(error)
	watch func(*hud.HUD)
}

// NewHUD creates a HUD on the UI scheduler and attaches it to the
// container.
func (ui *UI) NewHUD(opts ...hud.Option) *hud.HUD {
	h := hud.New(ui.Scheduler, opts...)
	ui.Attach(h)
	return h
}

// Attach puts h on top of the container.
func (ui *UI) Attach(h *hud.HUD) {
	ui.Container.Attach(h)
	if ui.watch != nil {
		ui.watch(h)
	}
}

// Post runs fn on the UI thread.
func (ui *UI) Post(fn func()) { ui.post(fn) }

// Done ends the run with err. Only the first call counts.
func (ui *UI) Done(err error) { ui.done(err) }

// TUI provides the interactive presentation layer.
// Constructed once via Factory and shared by the commands.
type TUI struct {
	ios *iostreams.IOStreams
}

// NewTUI creates a TUI bound to the given IOStreams.
func NewTUI(ios *iostreams.IOStreams) *TUI {
	if ios == nil {
		panic("NewTUI: IOStreams must not be nil")
	}
	return &TUI{ios: ios}
}

// IOStreams returns the underlying IOStreams for callers that need direct access.
func (t *TUI) IOStreams() *iostreams.IOStreams {
	return t.ios
}

// Run drives session until it calls Done or ctx ends. mode is "auto",
// "tty" or "plain"; auto picks the BubbleTea display when stderr is a
// terminal. A summary line is printed to stderr afterwards.
func (t *TUI) Run(ctx context.Context, mode string, session Session) error {
	ttyMode := t.ios.IsStderrTTY()
	switch mode {
	case ModeTTY:
		ttyMode = true
	case ModePlain:
		ttyMode = false
	case ModeAuto, "":
	default:
		return fmt.Errorf("unknown display mode %q (want auto, tty or plain)", mode)
	}

	start := time.Now()
	var err error
	if ttyMode {
		err = runTTY(ctx, t.ios, session)
	} else {
		err = runPlain(ctx, t.ios, session)
	}
	renderSummary(t.ios, session.Title(), time.Since(start), err)
	return err
}

func renderSummary(ios *iostreams.IOStreams, title string, elapsed time.Duration, err error) {
	cs := ios.ColorScheme()
	switch {
	case err == nil:
		fmt.Fprintln(ios.ErrOut, cs.SuccessIconWithColor(fmt.Sprintf("%s finished in %s", title, iostreams.FormatElapsed(elapsed))))
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(ios.ErrOut, cs.WarningIconWithColor(fmt.Sprintf("%s interrupted after %s", title, iostreams.FormatElapsed(elapsed))))
	default:
		fmt.Fprintln(ios.ErrOut, cs.FailureIconWithColor(fmt.Sprintf("%s failed: %v", title, err)))
	}
}
