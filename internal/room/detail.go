package room

import (
	"context"
	"fmt"
	"io"
)

// Detail is the second screen of the navigation lesson. It renders the name
// argument it was routed with, untouched.
type Detail struct {
	params map[string]string
}

// NewDetail creates the detail room with no argument yet.
func NewDetail() *Detail {
	return &Detail{params: make(map[string]string)}
}

func (d *Detail) Key() string   { return "detail" }
func (d *Detail) Title() string { return "Detail" }

// SetParam stores a route argument for rendering.
func (d *Detail) SetParam(name, value string) {
	d.params[name] = value
}

// Name reports the name argument the room was last routed with.
func (d *Detail) Name() string {
	return d.params["name"]
}

func (d *Detail) Render(w io.Writer) {
	fmt.Fprintf(w, "detail page for: %s\n", d.params["name"])
	fmt.Fprintln(w, "'back' returns to the previous room")
}

func (d *Detail) Handle(ctx context.Context, input string) (Outcome, error) {
	if verb, _ := splitCommand(input); verb == "close" {
		return GoBack, nil
	}
	return Stay, fmt.Errorf("unknown command %q", input)
}
