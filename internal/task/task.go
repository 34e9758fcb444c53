// Package task provides the explicit asynchronous task handle behind the
// deferred actions in the rooms: a task runs on its own goroutine, can be
// canceled, and reports a single outcome.
package task

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCanceled is the outcome of a task whose context was canceled before the
// work finished.
var ErrCanceled = errors.New("task: canceled")

// Handle tracks one running task.
type Handle struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// Run starts fn on its own goroutine and returns a handle for it. The task
// context ends through Handle.Cancel or with the parent ctx.
func Run(ctx context.Context, name string, fn func(ctx context.Context) error) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		defer cancel()

		err := fn(ctx)
		if errors.Is(err, context.Canceled) {
			err = ErrCanceled
		}
		h.mu.Lock()
		h.err = err
		h.mu.Unlock()
	}()

	return h
}

// Name returns the label the task was started with.
func (h *Handle) Name() string {
	return h.name
}

// Cancel asks the task to stop. Safe to call more than once.
func (h *Handle) Cancel() {
	h.cancel()
}

// Done is closed once the task finished, successfully or not.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the task finished and returns its outcome.
func (h *Handle) Wait() error {
	<-h.done
	return h.Err()
}

// Err returns the task outcome: nil on success, ErrCanceled on cancellation,
// otherwise the error the task function returned. Only meaningful once Done
// is closed.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Sleep waits for d, returning early with the context's error when canceled.
// It is the single suspension point behind the simulated-latency lessons.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
