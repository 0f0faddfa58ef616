package scheduler

import (
	"context"
	"errors"
)

// ErrQueueClosed is returned by Run when the queue was closed before the
// context finished.
var ErrQueueClosed = errors.New("scheduler: queue closed")

// Queue is a serial executor. Functions posted from any goroutine run one
// at a time, in post order, on the goroutine that calls Run. It is the UI
// thread for plain (non-TTY) output.
type Queue struct {
	fns  chan func()
	done chan struct{}
}

// NewQueue creates a queue with the given buffer size.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 64
	}
	return &Queue{
		fns:  make(chan func(), size),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. Posting after Close is a no-op.
func (q *Queue) Post(fn func()) {
	select {
	case <-q.done:
		return
	default:
	}
	select {
	case q.fns <- fn:
	case <-q.done:
	}
}

// Close stops Run after the function currently executing returns.
func (q *Queue) Close() {
	select {
	case <-q.done:
	default:
		close(q.done)
	}
}

// Run executes posted functions until ctx is done or Close is called.
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.done:
			return ErrQueueClosed
		case fn := <-q.fns:
			fn()
		}
	}
}
