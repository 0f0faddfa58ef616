package progress

import (
	"github.com/rs/zerolog"

	"github.com/schmitthub/hudkit/internal/scheduler"
)

// Source reconciles a scalar progress value with an optional Node. While a
// node is observed and the owner is eligible, a frame-rate sampler copies
// the node's fraction into the value. Callbacks only fire when the value
// actually changes.
//
// A Source belongs to the UI thread; none of its methods are safe for
// concurrent use.
type Source struct {
	sched    scheduler.Scheduler
	eligible func() bool
	onChange func(float64)
	log      zerolog.Logger

	value   float64
	node    *Node
	sampler scheduler.Timer
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithLogger sets the logger used for sampler lifecycle events.
func WithLogger(log zerolog.Logger) SourceOption {
	return func(s *Source) {
		s.log = log
	}
}

// NewSource creates a Source sampling on sched. eligible reports whether
// the owner currently wants sampling (a HUD that is not hidden); nil means
// always. onChange, if non-nil, is called with each new value.
func NewSource(sched scheduler.Scheduler, eligible func() bool, onChange func(float64), opts ...SourceOption) *Source {
	if eligible == nil {
		eligible = func() bool { return true }
	}
	s := &Source{
		sched:    sched,
		eligible: eligible,
		onChange: onChange,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Value returns the current progress. It is not clamped.
func (s *Source) Value() float64 {
	return s.value
}

// Set writes the progress directly. The last write wins; while a node is
// being sampled the next frame overwrites it.
func (s *Source) Set(v float64) {
	if v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
}

// Node returns the observed node, or nil.
func (s *Source) Node() *Node {
	return s.node
}

// Observe replaces the observed node. Any running sampler is torn down and
// a new one is started when node is non-nil and the owner is eligible.
func (s *Source) Observe(node *Node) {
	s.Disarm()
	s.node = node
	s.Arm()
}

// Arm starts the sampler if a node is observed, the owner is eligible and
// no sampler is running.
func (s *Source) Arm() {
	if s.sampler != nil || s.node == nil || !s.eligible() {
		return
	}
	node := s.node
	s.sampler = s.sched.Every(scheduler.FrameInterval, func() {
		s.Set(node.FractionCompleted())
	})
	s.log.Debug().Msg("progress sampler started")
}

// Disarm stops the sampler if one is running.
func (s *Source) Disarm() {
	if s.sampler == nil {
		return
	}
	s.sampler.Stop()
	s.sampler = nil
	s.log.Debug().Msg("progress sampler stopped")
}

// Sampling reports whether the sampler is running.
func (s *Source) Sampling() bool {
	return s.sampler != nil
}
