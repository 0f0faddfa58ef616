// Package scheduler provides the timer abstraction the HUD runs on.
//
// Every timer callback is delivered on a single logical UI thread. The
// real implementation (Loop) marshals expiry through a dispatcher so the
// caller decides what "the UI thread" is: a bubbletea event loop, or a
// Queue in plain mode. Tests use schedulertest.Clock instead.
package scheduler

import "time"

// FrameInterval is the period of a display-refresh driven sampler (~60 Hz).
const FrameInterval = time.Second / 60

// Timer is a handle to a pending one-shot or periodic callback.
type Timer interface {
	// Stop cancels the timer. It returns true if the call prevented a
	// callback from running, false if the timer had already fired (one-shot)
	// or was already stopped.
	Stop() bool
}

// Scheduler creates cancellable timers whose callbacks run on the UI thread.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

// Stop stops t if it is non-nil. It is a convenience for optional handles.
func Stop(t Timer) {
	if t != nil {
		t.Stop()
	}
}
