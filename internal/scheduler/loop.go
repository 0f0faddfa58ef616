package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Dispatcher runs fn on the UI thread. It must be safe to call from any
// goroutine.
type Dispatcher func(fn func())

// Loop is a wall-clock Scheduler. Expiry happens on runtime timer
// goroutines; the callback itself is handed to the dispatcher.
type Loop struct {
	dispatch Dispatcher
	now      func() time.Time
}

// NewLoop creates a Loop delivering callbacks through dispatch.
func NewLoop(dispatch Dispatcher) *Loop {
	if dispatch == nil {
		panic("scheduler.NewLoop: dispatcher must not be nil")
	}
	return &Loop{dispatch: dispatch, now: time.Now}
}

// Now returns the current wall-clock time.
func (l *Loop) Now() time.Time {
	return l.now()
}

// AfterFunc arms a one-shot timer. A timer stopped on the UI thread never
// runs its callback, even when its expiry was already queued.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.dispatch(func() {
			if !t.done.CompareAndSwap(false, true) {
				return
			}
			f()
		})
	})
	return t
}

// Every arms a periodic timer. Ticks that arrive while the UI thread is
// busy are coalesced by the underlying ticker.
func (l *Loop) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = FrameInterval
	}
	t := &loopTicker{
		ticker: time.NewTicker(d),
		quit:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.quit:
				return
			case <-t.ticker.C:
				l.dispatch(func() {
					if t.stopped.Load() {
						return
					}
					f()
				})
			}
		}
	}()
	return t
}

type loopTimer struct {
	timer *time.Timer
	done  atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	return t.done.CompareAndSwap(false, true)
}

type loopTicker struct {
	ticker   *time.Ticker
	quit     chan struct{}
	stopped  atomic.Bool
	stopOnce sync.Once
}

func (t *loopTicker) Stop() bool {
	prevented := false
	t.stopOnce.Do(func() {
		prevented = true
		t.stopped.Store(true)
		t.ticker.Stop()
		close(t.quit)
	})
	return prevented
}
