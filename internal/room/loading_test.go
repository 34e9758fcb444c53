package room

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestLoadingStatusOrder(t *testing.T) {
	t.Parallel()

	l := NewLoading(100 * time.Millisecond)

	if got := l.Status(); got != statusIdle {
		t.Fatalf("initial status %q", got)
	}

	if _, err := l.Handle(context.Background(), "start"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := l.Status(); got != statusLoading {
		t.Fatalf("status after start %q", got)
	}

	l.mu.Lock()
	h := l.pending
	l.mu.Unlock()
	if h == nil {
		t.Fatalf("expected a pending load task")
	}
	if err := h.Wait(); err != nil {
		t.Fatalf("load task failed: %v", err)
	}

	if got := l.Status(); got != statusDone {
		t.Fatalf("status after load %q", got)
	}
}

func TestLoadingCancelReturnsToIdle(t *testing.T) {
	t.Parallel()

	l := NewLoading(time.Minute)
	ctx := context.Background()

	if _, err := l.Handle(ctx, "start"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := l.Status(); got != statusLoading {
		t.Fatalf("status after start %q", got)
	}

	if _, err := l.Handle(ctx, "cancel"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := l.Status(); got != statusIdle {
		t.Fatalf("status after cancel %q", got)
	}

	var buf bytes.Buffer
	l.Render(&buf)
	if !strings.Contains(buf.String(), "load canceled") {
		t.Fatalf("expected the canceled note, got %q", buf.String())
	}

	// the lesson allows a fresh start after a cancel
	if _, err := l.Handle(ctx, "start"); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if got := l.Status(); got != statusLoading {
		t.Fatalf("status after restart %q", got)
	}
	if _, err := l.Handle(ctx, "cancel"); err != nil {
		t.Fatalf("cleanup cancel: %v", err)
	}
}

func TestLoadingDoubleStart(t *testing.T) {
	t.Parallel()

	l := NewLoading(time.Minute)
	ctx := context.Background()

	if _, err := l.Handle(ctx, "start"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := l.Handle(ctx, "start"); err != nil {
		t.Fatalf("second start: %v", err)
	}

	var buf bytes.Buffer
	l.Render(&buf)
	if !strings.Contains(buf.String(), "already loading") {
		t.Fatalf("expected the already-loading note, got %q", buf.String())
	}
	if _, err := l.Handle(ctx, "cancel"); err != nil {
		t.Fatalf("cleanup cancel: %v", err)
	}
}

func TestLoadingCancelWithoutLoad(t *testing.T) {
	t.Parallel()

	l := NewLoading(time.Minute)
	if _, err := l.Handle(context.Background(), "cancel"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	var buf bytes.Buffer
	l.Render(&buf)
	if !strings.Contains(buf.String(), "nothing to cancel") {
		t.Fatalf("expected the nothing-to-cancel note, got %q", buf.String())
	}
	if got := l.Status(); got != statusIdle {
		t.Fatalf("status %q", got)
	}
}
