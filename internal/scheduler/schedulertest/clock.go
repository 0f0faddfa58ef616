// Package schedulertest provides a simulated-clock Scheduler for
// deterministic timing tests.
package schedulertest

import (
	"sort"
	"sync"
	"time"

	"github.com/schmitthub/hudkit/internal/scheduler"
)

// Epoch is the default start time of a Clock.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Clock is a scheduler.Scheduler driven by Advance. Callbacks run
// synchronously inside Advance, on the calling goroutine.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

var _ scheduler.Scheduler = (*Clock)(nil)

// New creates a Clock starting at Epoch.
func New() *Clock {
	return &Clock{now: Epoch}
}

// Now returns the simulated time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc arms a one-shot timer at Now()+d.
func (c *Clock) AfterFunc(d time.Duration, f func()) scheduler.Timer {
	if d < 0 {
		d = 0
	}
	return c.add(d, 0, f)
}

// Every arms a periodic timer firing every d.
func (c *Clock) Every(d time.Duration, f func()) scheduler.Timer {
	if d <= 0 {
		d = scheduler.FrameInterval
	}
	return c.add(d, d, f)
}

func (c *Clock) add(d, period time.Duration, f func()) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{
		clock:    c,
		deadline: c.now.Add(d),
		period:   period,
		fn:       f,
		seq:      c.seq,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls within the window in deadline order. Timers armed by callbacks
// fire too if they fall inside the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	c.mu.Lock()
	if c.now.Before(target) {
		c.now = target
	}
	c.mu.Unlock()
}

// nextDue pops the earliest timer due at or before target and moves the
// clock to its deadline.
func (c *Clock) nextDue(target time.Time) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
	if len(c.timers) == 0 {
		return nil
	}

	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].deadline.Equal(c.timers[j].deadline) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].deadline.Before(c.timers[j].deadline)
	})

	t := c.timers[0]
	if t.deadline.After(target) {
		return nil
	}
	if t.deadline.After(c.now) {
		c.now = t.deadline
	}
	if t.period > 0 {
		t.deadline = t.deadline.Add(t.period)
		c.seq++
		t.seq = c.seq
	} else {
		t.stopped = true
	}
	return t
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type fakeTimer struct {
	clock    *Clock
	deadline time.Time
	period   time.Duration
	fn       func()
	seq      int
	stopped  bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}
