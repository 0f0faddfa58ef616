// Package hud implements an overlay progress indicator: the visibility and
// timing state machine, the hosted indicator and its appearance.
//
// A HUD is owned by a single UI thread. Every method, timer callback and
// progress sample runs there; workers must marshal progress writes onto it
// (see scheduler.Loop and scheduler.Queue).
package hud

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/schmitthub/hudkit/internal/anim"
	"github.com/schmitthub/hudkit/internal/progress"
	"github.com/schmitthub/hudkit/internal/scheduler"
)

// Scale factors used by the zoom animations.
const (
	minimumScale = 0.5
	maximumScale = 1.5
)

// Delegate is notified once per hide cycle, after the HUD has finished
// hiding.
type Delegate interface {
	HUDHidden(h *HUD)
}

// DelegateFunc adapts a function to Delegate.
type DelegateFunc func(h *HUD)

func (f DelegateFunc) HUDHidden(h *HUD) { f(h) }

// HUD is an overlay progress indicator.
type HUD struct {
	id         uuid.UUID
	sched      scheduler.Scheduler
	animator   anim.Animator
	transition anim.Transition
	log        zerolog.Logger

	style      Style
	indicator  Indicator
	customView View
	animation  AnimationType
	source     *progress.Source

	title   string
	details string

	theme      Theme
	appearance Appearance
	layout     Layout

	gracePeriod       time.Duration
	minimumDisplay    time.Duration
	removeWhenStopped bool

	delegate   Delegate
	completion func()
	onState    func(State)
	onProgress func(float64)

	container *Container

	active         bool
	prepareHidden  bool
	useAnimation   bool
	latestActivity time.Time
	shown          bool
	hiding         bool
	cycleOpen      bool
	closed         bool
	lastState      State

	graceTimer      scheduler.Timer
	minDisplayTimer scheduler.Timer
	delayHideTimer  scheduler.Timer
	running         anim.Handle
	animSeq         int

	alpha float64
	bezel anim.State
}

// Option configures a HUD at construction.
type Option func(*HUD)

// WithStyle sets the initial style.
func WithStyle(s Style) Option {
	return func(h *HUD) { h.style = s }
}

// WithAnimationType sets the show/hide animation.
func WithAnimationType(a AnimationType) Option {
	return func(h *HUD) { h.animation = a }
}

// WithAnimator replaces the default spring animator.
func WithAnimator(a anim.Animator) Option {
	return func(h *HUD) { h.animator = a }
}

// WithTransition sets the spring parameters of the show/hide animation.
func WithTransition(tr anim.Transition) Option {
	return func(h *HUD) { h.transition = tr }
}

// WithLogger sets the logger. The HUD's id is attached to every event.
func WithLogger(log zerolog.Logger) Option {
	return func(h *HUD) { h.log = log }
}

// WithTheme sets the caller-level appearance.
func WithTheme(t Theme) Option {
	return func(h *HUD) { h.theme = t }
}

// WithGracePeriod delays showing by d. Non-positive values disable it.
func WithGracePeriod(d time.Duration) Option {
	return func(h *HUD) { h.gracePeriod = d }
}

// WithMinimumDisplayTime keeps a shown HUD visible for at least d.
// Non-positive values disable it.
func WithMinimumDisplayTime(d time.Duration) Option {
	return func(h *HUD) { h.minimumDisplay = d }
}

// WithLayout replaces DefaultLayout.
func WithLayout(l Layout) Option {
	return func(h *HUD) { h.layout = l }
}

// WithStateHook registers a function called whenever State changes.
func WithStateHook(fn func(State)) Option {
	return func(h *HUD) { h.onState = fn }
}

// WithProgressHook registers a function called whenever Progress changes.
func WithProgressHook(fn func(float64)) Option {
	return func(h *HUD) { h.onProgress = fn }
}

// New creates a hidden HUD whose timers run on sched.
func New(sched scheduler.Scheduler, opts ...Option) *HUD {
	h := &HUD{
		id:         uuid.New(),
		sched:      sched,
		transition: anim.DefaultTransition,
		log:        zerolog.Nop(),
		style:      StyleActivityIndicator,
		layout:     DefaultLayout,
		bezel:      anim.State{Opacity: 0, Scale: 1},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.animator == nil {
		h.animator = anim.NewSpring(sched)
	}
	h.log = h.log.With().Str("hud", h.id.String()).Logger()
	h.source = progress.NewSource(sched,
		func() bool { return h.State() != StateHidden },
		h.progressChanged,
		progress.WithLogger(h.log))
	h.indicator = newIndicator(h.style, 0, nil)
	return h
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Show requests the HUD to become visible. With a grace period the HUD
// only appears if it is still requested when the period ends.
func (h *HUD) Show(animated bool) {
	if h.closed {
		return
	}
	scheduler.Stop(h.graceTimer)
	h.graceTimer = nil

	h.active = true
	h.prepareHidden = false
	h.useAnimation = animated
	h.cycleOpen = true

	if h.gracePeriod > 0 {
		h.graceTimer = h.sched.AfterFunc(h.gracePeriod, h.graceFired)
		h.log.Debug().Dur("grace", h.gracePeriod).Msg("show deferred by grace period")
		h.stateChanged()
		h.source.Arm()
		return
	}
	h.showPath(animated)
}

// Hide requests the HUD to disappear. A HUD shown for less than its
// minimum display time stays up for the remainder first.
func (h *HUD) Hide(animated bool) {
	if h.closed {
		return
	}
	if !h.cycleOpen && h.State() == StateHidden {
		h.active = false
		return
	}

	scheduler.Stop(h.graceTimer)
	h.graceTimer = nil
	scheduler.Stop(h.minDisplayTimer)
	h.minDisplayTimer = nil

	h.active = false
	h.useAnimation = animated

	if h.minimumDisplay > 0 && !h.latestActivity.IsZero() {
		elapsed := h.sched.Now().Sub(h.latestActivity)
		if elapsed < h.minimumDisplay {
			remaining := h.minimumDisplay - elapsed
			h.minDisplayTimer = h.sched.AfterFunc(remaining, h.minDisplayFired)
			h.log.Debug().Dur("remaining", remaining).Msg("hide deferred by minimum display time")
			h.stateChanged()
			return
		}
	}
	h.hidePath(animated)
}

// DelayHide hides the HUD after delay. From now until it hides, the HUD is
// skipped by Container.Active. A non-positive delay hides on the next tick.
func (h *HUD) DelayHide(delay time.Duration, animated bool) {
	if h.closed {
		return
	}
	scheduler.Stop(h.delayHideTimer)
	h.prepareHidden = true
	if delay < 0 {
		delay = 0
	}
	h.delayHideTimer = h.sched.AfterFunc(delay, func() {
		h.delayHideTimer = nil
		h.Hide(animated)
	})
}

// Close cancels every timer, the sampler and any running animation. The
// HUD is detached from its container and ignores further requests.
func (h *HUD) Close() {
	if h.closed {
		return
	}
	h.closed = true
	for _, t := range []scheduler.Timer{h.graceTimer, h.minDisplayTimer, h.delayHideTimer} {
		scheduler.Stop(t)
	}
	h.graceTimer, h.minDisplayTimer, h.delayHideTimer = nil, nil, nil
	h.stopAnimation()
	h.source.Disarm()
	if h.container != nil {
		h.container.Detach(h)
	}
	h.log.Debug().Msg("hud closed")
}

func (h *HUD) graceFired() {
	h.graceTimer = nil
	if h.active {
		h.showPath(h.useAnimation)
		return
	}
	h.stateChanged()
}

func (h *HUD) minDisplayFired() {
	h.minDisplayTimer = nil
	h.hidePath(h.useAnimation)
}

func (h *HUD) showPath(animated bool) {
	scheduler.Stop(h.graceTimer)
	h.graceTimer = nil
	h.stopAnimation()

	h.latestActivity = h.sched.Now()
	h.alpha = 1
	h.shown = true
	h.cycleOpen = true
	h.source.Arm()
	h.log.Debug().Bool("animated", animated).Msg("hud shown")

	if animated {
		kind := h.animation.resolve(true)
		from := h.bezel
		if from.Opacity == 0 {
			switch kind {
			case AnimationZoomIn:
				from.Scale = minimumScale
			case AnimationZoomOut:
				from.Scale = maximumScale
			}
		}
		h.runAnimation(from, anim.Identity, nil)
	} else {
		h.bezel = anim.Identity
	}
	h.stateChanged()
}

func (h *HUD) hidePath(animated bool) {
	scheduler.Stop(h.minDisplayTimer)
	h.minDisplayTimer = nil
	scheduler.Stop(h.delayHideTimer)
	h.delayHideTimer = nil
	h.stopAnimation()
	h.shown = false

	if animated && !h.latestActivity.IsZero() {
		h.latestActivity = time.Time{}
		h.hiding = true
		to := anim.State{Opacity: 0, Scale: h.bezel.Scale}
		switch h.animation.resolve(false) {
		case AnimationZoomIn:
			to.Scale = maximumScale
		case AnimationZoomOut:
			to.Scale = minimumScale
		}
		h.stateChanged()
		// A Show that interrupts the transition still closes this cycle.
		h.runAnimation(h.bezel, to, func(bool) {
			h.hiding = false
			if !h.closed {
				h.finish()
			}
		})
		return
	}

	h.latestActivity = time.Time{}
	h.bezel.Opacity = 0
	h.finish()
}

// finish completes a hide. Completion and delegate fire at most once per
// show/hide cycle.
func (h *HUD) finish() {
	h.source.Disarm()
	if h.active {
		// Re-requested while the hide was in flight: keep observing if the
		// new request already made the HUD eligible.
		h.source.Arm()
	} else {
		h.alpha = 0
		if h.removeWhenStopped && h.container != nil {
			h.container.Detach(h)
		}
	}
	h.log.Debug().Msg("hud hidden")
	h.stateChanged()

	if !h.cycleOpen {
		return
	}
	h.cycleOpen = false
	if h.completion != nil {
		h.completion()
	}
	if h.delegate != nil {
		h.delegate.HUDHidden(h)
	}
}

func (h *HUD) runAnimation(from, to anim.State, done func(bool)) {
	h.animSeq++
	seq := h.animSeq
	completed := false
	handle := h.animator.Animate(h.transition, from, to,
		func(s anim.State) { h.bezel = s },
		func(finished bool) {
			completed = true
			if h.animSeq == seq {
				h.running = nil
			}
			if done != nil {
				done(finished)
			}
		})
	if !completed {
		h.running = handle
	}
}

func (h *HUD) stopAnimation() {
	if h.running == nil {
		return
	}
	handle := h.running
	h.running = nil
	handle.Stop()
}

func (h *HUD) stateChanged() {
	s := h.State()
	if s == h.lastState {
		return
	}
	h.log.Debug().Stringer("from", h.lastState).Stringer("to", s).Msg("hud state")
	h.lastState = s
	if h.onState != nil {
		h.onState(s)
	}
}

// ---------------------------------------------------------------------------
// Progress
// ---------------------------------------------------------------------------

// Progress returns the current progress value.
func (h *HUD) Progress() float64 {
	return h.source.Value()
}

// SetProgress writes the progress directly. While a progress node is being
// sampled the next frame overwrites it.
func (h *HUD) SetProgress(f float64) {
	h.source.Set(f)
}

// ProgressNode returns the observed progress node, or nil.
func (h *HUD) ProgressNode() *progress.Node {
	return h.source.Node()
}

// SetProgressNode observes node. Sampling runs while the HUD is not hidden.
func (h *HUD) SetProgressNode(node *progress.Node) {
	if h.closed {
		return
	}
	h.source.Observe(node)
}

// Sampling reports whether the progress node is being sampled.
func (h *HUD) Sampling() bool {
	return h.source.Sampling()
}

func (h *HUD) progressChanged(f float64) {
	setIndicatorFraction(h.indicator, f)
	if h.onProgress != nil {
		h.onProgress(f)
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// ID returns the HUD's unique id.
func (h *HUD) ID() uuid.UUID { return h.id }

// State returns the lifecycle state.
func (h *HUD) State() State {
	switch {
	case h.hiding:
		return StateHiding
	case h.shown && h.active:
		// A Show during the min-display countdown leaves that timer armed;
		// the HUD still reads as visible until it fires.
		return StateVisible
	case h.minDisplayTimer != nil:
		return StateAwaitingMinDisplay
	case h.shown:
		return StateVisible
	case h.graceTimer != nil:
		return StateAwaitingGrace
	default:
		return StateHidden
	}
}

// IsActive reports whether the HUD is currently requested to be visible.
func (h *HUD) IsActive() bool { return h.active }

// PrepareHidden reports whether a delayed hide is pending.
func (h *HUD) PrepareHidden() bool { return h.prepareHidden }

// Opacity is the effective opacity: the master alpha times the bezel's
// animated opacity.
func (h *HUD) Opacity() float64 { return h.alpha * h.bezel.Opacity }

// Scale is the bezel's animated scale.
func (h *HUD) Scale() float64 { return h.bezel.Scale }

// Style returns the current style.
func (h *HUD) Style() Style { return h.style }

// SetStyle switches the hosted indicator. The new indicator replaces the
// old one in a single step.
func (h *HUD) SetStyle(s Style) {
	if s == h.style {
		return
	}
	h.style = s
	h.indicator = newIndicator(s, h.source.Value(), h.customView)
}

// Indicator returns the hosted indicator.
func (h *HUD) Indicator() Indicator { return h.indicator }

// SetCustomView sets the view hosted by StyleCustomView.
func (h *HUD) SetCustomView(v View) {
	h.customView = v
	if h.style == StyleCustomView {
		h.indicator = newIndicator(h.style, h.source.Value(), v)
	}
}

// AnimationType returns the show/hide animation.
func (h *HUD) AnimationType() AnimationType { return h.animation }

// SetAnimationType changes the show/hide animation for future transitions.
func (h *HUD) SetAnimationType(a AnimationType) { h.animation = a }

// Title returns the title label text.
func (h *HUD) Title() string { return h.title }

// SetTitle sets the title label text. Empty hides the label.
func (h *HUD) SetTitle(s string) { h.title = s }

// Details returns the details label text.
func (h *HUD) Details() string { return h.details }

// SetDetails sets the details label text. Empty hides the label.
func (h *HUD) SetDetails(s string) { h.details = s }

// Appearance returns the instance-level color overrides.
func (h *HUD) Appearance() Appearance { return h.appearance }

// SetAppearance replaces the instance-level color overrides.
func (h *HUD) SetAppearance(a Appearance) { h.appearance = a }

// Theme returns the caller-level appearance.
func (h *HUD) Theme() Theme { return h.theme }

// SetTheme replaces the caller-level appearance.
func (h *HUD) SetTheme(t Theme) { h.theme = t }

// Colors resolves the effective colors for a light or dark background.
func (h *HUD) Colors(dark bool) Appearance {
	return Resolve(h.appearance, h.theme, dark)
}

// Layout returns the bezel layout.
func (h *HUD) Layout() Layout { return h.layout }

// SetLayout replaces the bezel layout.
func (h *HUD) SetLayout(l Layout) { h.layout = l }

// GracePeriod returns the grace period.
func (h *HUD) GracePeriod() time.Duration { return h.gracePeriod }

// SetGracePeriod sets the grace period used by the next Show.
func (h *HUD) SetGracePeriod(d time.Duration) { h.gracePeriod = d }

// MinimumDisplayTime returns the minimum display time.
func (h *HUD) MinimumDisplayTime() time.Duration { return h.minimumDisplay }

// SetMinimumDisplayTime sets the minimum display time used by the next Hide.
func (h *HUD) SetMinimumDisplayTime(d time.Duration) { h.minimumDisplay = d }

// RemoveWhenStopped reports whether the HUD detaches itself after hiding.
func (h *HUD) RemoveWhenStopped() bool { return h.removeWhenStopped }

// SetRemoveWhenStopped makes the HUD detach from its container after it
// finishes hiding.
func (h *HUD) SetRemoveWhenStopped(v bool) { h.removeWhenStopped = v }

// SetDelegate sets the delegate notified after each hide.
func (h *HUD) SetDelegate(d Delegate) { h.delegate = d }

// SetCompletion sets the function called after each hide.
func (h *HUD) SetCompletion(fn func()) { h.completion = fn }

// SetStateHook replaces the function called whenever State changes.
func (h *HUD) SetStateHook(fn func(State)) { h.onState = fn }

// SetProgressHook replaces the function called whenever Progress changes.
func (h *HUD) SetProgressHook(fn func(float64)) { h.onProgress = fn }

// Container returns the container the HUD is attached to, or nil.
func (h *HUD) Container() *Container { return h.container }
