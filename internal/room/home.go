package room

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Home is the landing menu. It lists the rooms and starts the two-screen
// navigation lesson: "visit <name>" builds a detail route from the name and
// navigates there.
type Home struct {
	rooms []Room
}

// NewHome creates the landing room listing the given rooms.
func NewHome(rooms ...Room) *Home {
	return &Home{rooms: rooms}
}

func (h *Home) Key() string   { return "home" }
func (h *Home) Title() string { return "Home" }

func (h *Home) Render(w io.Writer) {
	fmt.Fprintln(w, "Welcome to homeroom. 'go <room>' enters a room:")
	WriteRoomList(w, h.rooms)
	fmt.Fprintln(w, "Or 'visit <name>' opens the detail page for a name.")
}

func (h *Home) Handle(ctx context.Context, input string) (Outcome, error) {
	verb, rest := splitCommand(input)
	if verb == "visit" {
		name := strings.TrimSpace(rest)
		if name == "" {
			return Stay, fmt.Errorf("visit needs a name, e.g. 'visit seojun'")
		}
		return GoTo("detail/" + name), nil
	}
	return Stay, fmt.Errorf("unknown command %q", input)
}
