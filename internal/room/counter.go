package room

import (
	"context"
	"fmt"
	"io"
)

// Counter is the click-state lesson. The count and its mutators live on the
// room; drawing goes through a pure helper that receives the value, so the
// renderer works against any count the caller owns.
type Counter struct {
	count int
}

// NewCounter creates the counter room at zero.
func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Key() string   { return "counter" }
func (c *Counter) Title() string { return "Counter" }

func (c *Counter) Render(w io.Writer) {
	renderCount(w, c.count)
}

func (c *Counter) Handle(ctx context.Context, input string) (Outcome, error) {
	verb, _ := splitCommand(input)
	switch verb {
	case "tap":
		c.count++
		return Stay, nil
	case "reset":
		c.count = 0
		return Stay, nil
	}
	return Stay, fmt.Errorf("unknown command %q", input)
}

// Count reports the current value.
func (c *Counter) Count() int {
	return c.count
}

// renderCount draws a counter from the value alone, with no access to the
// room that owns it.
func renderCount(w io.Writer, count int) {
	fmt.Fprintf(w, "count: %d\n", count)
	fmt.Fprintln(w, "commands: tap, reset")
}
