package tui

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams"
	"github.com/schmitthub/hudkit/internal/scheduler"
	"github.com/schmitthub/hudkit/internal/signals"
)

// plainMilestones is how many progress lines a HUD prints from 0 to 100%.
const plainMilestones = 10

// plainReporter prints HUD lifecycle and progress milestones as lines.
// It runs on the UI thread like the HUDs it watches.
type plainReporter struct {
	ios  *iostreams.IOStreams
	cs   *iostreams.ColorScheme
	last map[*hud.HUD]int
}

func newPlainReporter(ios *iostreams.IOStreams) *plainReporter {
	return &plainReporter{
		ios:  ios,
		cs:   ios.ColorScheme(),
		last: make(map[*hud.HUD]int),
	}
}

func (r *plainReporter) watch(h *hud.HUD) {
	h.SetStateHook(func(s hud.State) { r.state(h, s) })
	h.SetProgressHook(func(f float64) { r.progress(h, f) })
}

func (r *plainReporter) state(h *hud.HUD, s hud.State) {
	var tag string
	switch s {
	case hud.StateAwaitingGrace:
		tag = "[wait]"
	case hud.StateVisible:
		tag = "[show]"
	case hud.StateAwaitingMinDisplay:
		tag = "[hold]"
	case hud.StateHidden:
		tag = "[hide]"
		delete(r.last, h)
	default:
		return
	}
	fmt.Fprintf(r.ios.ErrOut, "%s %s\n", r.cs.Muted(tag), label(h))
}

func (r *plainReporter) progress(h *hud.HUD, f float64) {
	if math.IsNaN(f) {
		return
	}
	step := int(math.Floor(min(max(f, 0), 1) * plainMilestones))
	if step <= r.last[h] {
		return
	}
	r.last[h] = step
	line := fmt.Sprintf("%s %s %s", r.cs.Cyan("[run]"), label(h),
		iostreams.FormatPercent(float64(step)/plainMilestones))
	if details := h.Details(); details != "" {
		line += "  " + r.cs.Muted(details)
	}
	fmt.Fprintln(r.ios.ErrOut, line)
}

func label(h *hud.HUD) string {
	if h.Title() != "" {
		return h.Title()
	}
	return h.Style().String()
}

// ---------------------------------------------------------------------------
// Plain mode
// ---------------------------------------------------------------------------

func runPlain(ctx context.Context, ios *iostreams.IOStreams, session Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := scheduler.NewQueue(inboxSize)
	defer queue.Close()
	reporter := newPlainReporter(ios)

	var (
		result   error
		finished bool
	)
	ui := &UI{
		Context:   ctx,
		Container: hud.NewContainer(),
		Scheduler: scheduler.NewLoop(queue.Post),
		Dark:      ios.HasDarkBackground(),
		post:      queue.Post,
		watch:     reporter.watch,
	}
	ui.done = func(err error) {
		queue.Post(func() {
			if finished {
				return
			}
			finished = true
			result = err
			queue.Close()
		})
	}
	width, height := ios.TerminalSize()
	ui.Container.SetBounds(hud.Rect{W: width, H: height})

	resize := signals.NewResizeHandler(func(w, h int) {
		queue.Post(func() { ui.Container.SetBounds(hud.Rect{W: w, H: h}) })
	}, func() (int, int, error) {
		ios.InvalidateTerminalSizeCache()
		w, h := ios.TerminalSize()
		return w, h, nil
	})
	resize.Start()
	defer resize.Stop()

	fmt.Fprintf(ios.ErrOut, "%s %s\n", ios.ColorScheme().Bold("━━"), session.Title())
	queue.Post(func() { session.Start(ui) })

	err := queue.Run(ctx)
	// Run has returned, so this goroutine is the UI thread now.
	ui.Container.Close()
	if errors.Is(err, scheduler.ErrQueueClosed) {
		return result
	}
	return err
}
