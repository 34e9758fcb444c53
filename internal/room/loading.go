package room

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/seojunpark/homeroom/internal/task"
)

const (
	statusIdle    = "press start to load"
	statusLoading = "loading..."
	statusDone    = "done! fresh data arrived"
)

// Loading is the delayed-load lesson. start flips the status to loading and
// runs a simulated fetch on a task; the status lands on done after the
// configured delay unless the task is canceled first, in which case it
// returns to the initial prompt.
type Loading struct {
	delay time.Duration

	mu      sync.Mutex
	status  string
	note    string
	pending *task.Handle
}

// NewLoading creates the loading room with the given simulated latency.
func NewLoading(delay time.Duration) *Loading {
	return &Loading{delay: delay, status: statusIdle}
}

func (l *Loading) Key() string   { return "loading" }
func (l *Loading) Title() string { return "Loading" }

func (l *Loading) Render(w io.Writer) {
	l.mu.Lock()
	status, note := l.status, l.note
	l.mu.Unlock()

	fmt.Fprintln(w, status)
	if note != "" {
		fmt.Fprintln(w, note)
	}
	fmt.Fprintln(w, "commands: start, cancel")
}

func (l *Loading) Handle(ctx context.Context, input string) (Outcome, error) {
	verb, _ := splitCommand(input)
	switch verb {
	case "start":
		l.start(ctx)
		return Stay, nil
	case "cancel":
		l.cancelPending()
		return Stay, nil
	}
	return Stay, fmt.Errorf("unknown command %q", input)
}

// Status reports the current status line.
func (l *Loading) Status() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

func (l *Loading) start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running() {
		l.note = "already loading"
		return
	}
	l.status = statusLoading
	l.note = ""
	l.pending = task.Run(ctx, "load", l.load)
}

// load is the simulated fetch. It writes the final status itself so the
// transition lands before the task handle reports done.
func (l *Loading) load(ctx context.Context) error {
	if err := task.Sleep(ctx, l.delay); err != nil {
		return err
	}
	l.mu.Lock()
	l.status = statusDone
	l.mu.Unlock()
	return nil
}

// cancelPending aborts a running load and waits for it to settle, so the
// next render already shows the outcome.
func (l *Loading) cancelPending() {
	l.mu.Lock()
	if !l.running() {
		l.note = "nothing to cancel"
		l.mu.Unlock()
		return
	}
	h := l.pending
	l.mu.Unlock()

	h.Cancel()
	<-h.Done()

	l.mu.Lock()
	// A load that finished right before the cancel keeps its done status.
	if errors.Is(h.Err(), task.ErrCanceled) {
		l.status = statusIdle
		l.note = "load canceled"
	}
	l.mu.Unlock()
}

// running reports whether a load task is still in flight. Callers hold mu.
func (l *Loading) running() bool {
	if l.pending == nil {
		return false
	}
	select {
	case <-l.pending.Done():
		return false
	default:
		return true
	}
}
