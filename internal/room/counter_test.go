package room

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestCounterTapAndReset(t *testing.T) {
	t.Parallel()

	c := NewCounter()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := c.Handle(ctx, "tap"); err != nil {
			t.Fatalf("tap %d: %v", i, err)
		}
	}
	if c.Count() != 3 {
		t.Fatalf("count = %d, want 3", c.Count())
	}

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "count: 3") {
		t.Fatalf("unexpected render: %q", buf.String())
	}

	if _, err := c.Handle(ctx, "reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if c.Count() != 0 {
		t.Fatalf("count after reset = %d, want 0", c.Count())
	}
}

func TestCounterStateSurvivesReentry(t *testing.T) {
	t.Parallel()

	counter := NewCounter()
	r := NewRouter(NewHome(counter), counter)

	if err := r.Go("counter"); err != nil {
		t.Fatalf("go counter: %v", err)
	}
	if _, err := r.Current().Handle(context.Background(), "tap"); err != nil {
		t.Fatalf("tap: %v", err)
	}

	r.Back()
	if err := r.Go("counter"); err != nil {
		t.Fatalf("re-enter counter: %v", err)
	}
	if got := r.Current().(*Counter).Count(); got != 1 {
		t.Fatalf("count after re-entry = %d, want 1", got)
	}
}

func TestRenderCountIsPure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderCount(&buf, 42)
	if !strings.Contains(buf.String(), "count: 42") {
		t.Fatalf("unexpected render: %q", buf.String())
	}
}
