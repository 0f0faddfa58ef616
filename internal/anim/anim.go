// Package anim animates the HUD's opacity and scale.
package anim

import "time"

// State is the animatable part of a bezel.
type State struct {
	Opacity float64
	Scale   float64
}

// Identity is a fully opaque bezel at its natural size.
var Identity = State{Opacity: 1, Scale: 1}

// Transition describes a spring animation.
type Transition struct {
	Duration        time.Duration
	Damping         float64
	InitialVelocity float64
}

// DefaultTransition is used for every show and hide.
var DefaultTransition = Transition{
	Duration:        300 * time.Millisecond,
	Damping:         1.0,
	InitialVelocity: 0,
}

// Handle controls a running animation.
type Handle interface {
	// Stop ends the animation where it is. If it had not finished, its done
	// callback runs with finished=false.
	Stop()
}

// Animator runs transitions. step receives every intermediate state; done
// is called exactly once, with true when the target was reached.
type Animator interface {
	Animate(tr Transition, from, to State, step func(State), done func(finished bool)) Handle
}

// Immediate applies the target state synchronously.
type Immediate struct{}

func (Immediate) Animate(_ Transition, _, to State, step func(State), done func(bool)) Handle {
	if step != nil {
		step(to)
	}
	if done != nil {
		done(true)
	}
	return noopHandle{}
}

type noopHandle struct{}

func (noopHandle) Stop() {}
