// Package room holds the screens of the guided lessons. A room owns its
// observable state, renders it to a writer, and mutates it in response to
// commands; navigation between rooms goes through the Router.
package room

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Room is one screen of the session.
type Room interface {
	// Key is the route name the room is reachable under.
	Key() string
	// Title is the human-readable room name shown in menus.
	Title() string
	// Render writes the current state of the room.
	Render(w io.Writer)
	// Handle applies one command to the room and reports where to go next.
	Handle(ctx context.Context, input string) (Outcome, error)
}

// Paramed is implemented by rooms that accept a route argument.
type Paramed interface {
	SetParam(name, value string)
}

// Outcome tells the session loop where to go after a command.
type Outcome struct {
	// Route is the key of the room to navigate to; empty means stay.
	Route string
	// Back pops the previous room off the back stack.
	Back bool
}

// Stay keeps the session in the current room.
var Stay = Outcome{}

// GoBack returns to the previous room.
var GoBack = Outcome{Back: true}

// GoTo navigates to the room resolved from route.
func GoTo(route string) Outcome {
	return Outcome{Route: route}
}

// WriteRoomList prints one line per room with its key and title.
func WriteRoomList(w io.Writer, rooms []Room) {
	for _, r := range rooms {
		fmt.Fprintf(w, "  %-10s %s\n", r.Key(), r.Title())
	}
}

// splitCommand separates the first word of the input from the rest.
func splitCommand(input string) (string, string) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(input), " ")
	return strings.ToLower(verb), strings.TrimSpace(rest)
}

func fallback(primary, secondary string) string {
	if strings.TrimSpace(primary) == "" {
		return secondary
	}
	return primary
}
