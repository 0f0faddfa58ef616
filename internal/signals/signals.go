// Package signals provides OS signal utilities for graceful shutdown and
// terminal resize propagation. This is a leaf package: stdlib only, no
// internal imports, no logging.
package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SetupSignalContext creates a context that's canceled on SIGINT/SIGTERM.
func SetupSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

// ResizeHandler forwards terminal resizes (SIGWINCH). The caller decides
// how to measure the terminal and what to do with the new size.
type ResizeHandler struct {
	sigChan  chan os.Signal
	onResize func(width, height int)
	getSize  func() (width, height int, err error)
	done     chan struct{}
	stopOnce sync.Once
}

// NewResizeHandler creates a new resize handler. onResize is called from
// the handler goroutine with the size getSize reports.
func NewResizeHandler(onResize func(width, height int), getSize func() (width, height int, err error)) *ResizeHandler {
	return &ResizeHandler{
		sigChan:  make(chan os.Signal, 1),
		onResize: onResize,
		getSize:  getSize,
		done:     make(chan struct{}),
	}
}

// Start begins listening for resize signals.
func (h *ResizeHandler) Start() {
	signal.Notify(h.sigChan, syscall.SIGWINCH)

	go h.handle()
}

// Stop stops listening for resize signals. Safe to call multiple times.
func (h *ResizeHandler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
	})
}

func (h *ResizeHandler) handle() {
	for {
		select {
		case <-h.done:
			return
		case <-h.sigChan:
			h.doResize()
		}
	}
}

func (h *ResizeHandler) doResize() {
	if h.getSize == nil || h.onResize == nil {
		return
	}

	width, height, err := h.getSize()
	if err != nil {
		return
	}

	h.onResize(width, height)
}

// TriggerResize manually triggers a resize operation.
func (h *ResizeHandler) TriggerResize() {
	h.doResize()
}
