package task

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunReportsSuccess(t *testing.T) {
	t.Parallel()

	h := Run(context.Background(), "noop", func(ctx context.Context) error {
		return nil
	})

	if err := h.Wait(); err != nil {
		t.Fatalf("unexpected outcome: %v", err)
	}
	if h.Name() != "noop" {
		t.Fatalf("unexpected name %q", h.Name())
	}
}

func TestRunReportsFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	h := Run(context.Background(), "failing", func(ctx context.Context) error {
		return boom
	})

	if err := h.Wait(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestCancelMapsToErrCanceled(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	h := Run(context.Background(), "sleeper", func(ctx context.Context) error {
		close(started)
		return Sleep(ctx, time.Minute)
	})

	<-started
	h.Cancel()

	if err := h.Wait(); !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}

func TestSleepReturnsAfterDelay(t *testing.T) {
	t.Parallel()

	start := time.Now()
	if err := Sleep(context.Background(), 10*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("sleep returned after %v, want at least 10ms", elapsed)
	}
}

func TestParentContextCancelsTask(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	h := Run(ctx, "child", func(ctx context.Context) error {
		return Sleep(ctx, time.Minute)
	})

	cancel()
	if err := h.Wait(); !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}
