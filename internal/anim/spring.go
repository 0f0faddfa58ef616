package anim

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/schmitthub/hudkit/internal/scheduler"
)

// settleRatio is ω·t at which a critically damped spring is within 1% of
// its target.
const settleRatio = 6.6

// Spring animates on a scheduler using harmonica springs, one per channel.
// The animation is snapped to its target once the transition's duration
// has elapsed.
type Spring struct {
	sched scheduler.Scheduler
}

// NewSpring creates a Spring animator driven by sched.
func NewSpring(sched scheduler.Scheduler) *Spring {
	return &Spring{sched: sched}
}

func (s *Spring) Animate(tr Transition, from, to State, step func(State), done func(bool)) Handle {
	if step == nil {
		step = func(State) {}
	}
	if done == nil {
		done = func(bool) {}
	}

	if tr.Duration <= 0 {
		step(to)
		done(true)
		return noopHandle{}
	}

	damping := tr.Damping
	if damping <= 0 {
		damping = 1
	}
	omega := settleRatio / tr.Duration.Seconds()
	spring := harmonica.NewSpring(harmonica.FPS(int(time.Second/scheduler.FrameInterval)), omega, damping)

	r := &run{done: done}
	cur := from
	// Velocity is expressed relative to the total change, per channel.
	velOpacity := tr.InitialVelocity * (to.Opacity - from.Opacity)
	velScale := tr.InitialVelocity * (to.Scale - from.Scale)
	start := s.sched.Now()

	step(cur)
	if r.over {
		return r
	}
	r.ticker = s.sched.Every(scheduler.FrameInterval, func() {
		if r.over {
			return
		}
		if s.sched.Now().Sub(start) >= tr.Duration {
			step(to)
			r.finish(true)
			return
		}
		cur.Opacity, velOpacity = spring.Update(cur.Opacity, velOpacity, to.Opacity)
		cur.Scale, velScale = spring.Update(cur.Scale, velScale, to.Scale)
		step(cur)
	})
	return r
}

type run struct {
	ticker scheduler.Timer
	done   func(bool)
	over   bool
}

func (r *run) finish(finished bool) {
	if r.over {
		return
	}
	r.over = true
	scheduler.Stop(r.ticker)
	r.done(finished)
}

func (r *run) Stop() {
	r.finish(false)
}
