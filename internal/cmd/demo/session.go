package demo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams"
	"github.com/schmitthub/hudkit/internal/logger"
	"github.com/schmitthub/hudkit/internal/progress"
	"github.com/schmitthub/hudkit/internal/scheduler"
	"github.com/schmitthub/hudkit/internal/tui"
)

const (
	// tickInterval is how often a worker reports its transfer.
	tickInterval = 50 * time.Millisecond
	// detailsInterval is how often the HUD's details line is refreshed.
	detailsInterval = 250 * time.Millisecond
)

// workload describes the simulated transfer.
type workload struct {
	workers int
	size    int64
	rate    int64
}

// worker simulates one transfer feeding its own progress node.
type worker struct {
	name string
	node *progress.Node
	size int64
	rate int64
}

// run transfers size bytes at rate bytes per second.
func (w *worker) run(ctx context.Context, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	chunk := max(int64(float64(w.rate)*tick.Seconds()), 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		done, total := w.node.Counts()
		w.node.Add(min(chunk, total-done))
		if done+chunk >= total {
			return nil
		}
	}
}

// session runs the workers under one HUD. Its methods other than wait are
// called on the UI thread.
type session struct {
	ios       *iostreams.IOStreams
	title     string
	hudOpts   []hud.Option
	delayHide time.Duration
	themeMode string
	watch     *config.Loader
	tick      time.Duration

	root    *progress.Node
	workers []*worker
	tracks  tui.Tracks

	ui      *tui.UI
	hud     *hud.HUD
	details scheduler.Timer
	err     error
	wg      sync.WaitGroup
}

func newSession(ios *iostreams.IOStreams, title string, load workload, hudOpts []hud.Option) *session {
	s := &session{
		ios:     ios,
		title:   title,
		hudOpts: hudOpts,
		tick:    tickInterval,
		root:    progress.NewNode(int64(load.workers)),
		tracks:  tui.NewTracks(),
	}
	for i := range load.workers {
		// Later workers run faster so the bars spread out.
		rate := int64(float64(load.rate) * (0.6 + 0.4*float64(i+1)/float64(load.workers)))
		s.workers = append(s.workers, &worker{
			name: fmt.Sprintf("worker-%d", i+1),
			node: s.root.NewChild(load.size, 1),
			size: load.size,
			rate: max(rate, 1),
		})
	}
	return s
}

func (s *session) Title() string { return s.title }

func (s *session) Start(ui *tui.UI) {
	s.ui = ui
	ui.Dark = cmdutil.DarkBackground(s.themeMode, s.ios)

	h := ui.NewHUD(s.hudOpts...)
	h.SetTitle(s.title)
	h.SetProgressNode(s.root)
	s.hud = h
	s.refreshDetails()
	s.details = ui.Scheduler.Every(detailsInterval, s.refreshDetails)

	if s.watch != nil {
		if err := s.watch.Watch(s.configChanged); err != nil {
			logger.Debug().Err(err).Msg("config reload disabled")
		}
	}

	h.Show(ui.Animated)

	ctx := ui.Context
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range s.workers {
		g.Go(func() error { return w.run(ctx, s.tick) })
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := g.Wait()
		ui.Post(func() { s.finish(err) })
	}()
}

// finish winds the HUD down once every worker has returned. Only this
// hide ends the run; hides from the show/hide key do not.
func (s *session) finish(err error) {
	scheduler.Stop(s.details)
	s.refreshDetails()
	s.err = err
	if s.hud.State() == hud.StateHidden && !s.hud.IsActive() {
		// Hidden from the keyboard: no hide cycle is left to complete.
		s.ui.Done(err)
		return
	}
	s.hud.SetCompletion(func() { s.ui.Done(err) })
	if err != nil {
		logger.Debug().Err(err).Msg("workers stopped")
		s.hud.Hide(s.ui.Animated)
		return
	}
	s.hud.SetDetails("done")
	s.hud.DelayHide(s.delayHide, s.ui.Animated)
}

func (s *session) refreshDetails() {
	var done, total int64
	for _, w := range s.workers {
		d, t := w.node.Counts()
		done += d
		total += t
	}
	s.hud.SetDetails(iostreams.FormatTransfer(done, total))
}

// configChanged runs on the watcher goroutine.
func (s *session) configChanged(e fsnotify.Event, cfg *config.Config, err error) {
	if err != nil {
		logger.Warn().Err(err).Str("file", e.Name).Msg("ignoring invalid config change")
		return
	}
	s.ui.Post(func() {
		s.themeMode = cfg.Theme.Mode
		s.ui.Dark = cmdutil.DarkBackground(cfg.Theme.Mode, s.ios)
		s.hud.SetTheme(cmdutil.ThemeFromConfig(cfg.Theme))
		logger.Debug().Str("file", e.Name).Msg("theme reloaded")
	})
}

func (s *session) HostView(width int) string {
	tracks := make([]tui.Track, len(s.workers))
	for i, w := range s.workers {
		done, total := w.node.Counts()
		tracks[i] = tui.Track{
			Label:    w.name,
			Fraction: w.node.FractionCompleted(),
			Detail:   iostreams.FormatTransfer(done, total),
		}
	}
	return s.tracks.View(tracks, width)
}

// wait blocks until the goroutine collecting the workers has returned.
func (s *session) wait() { s.wg.Wait() }
