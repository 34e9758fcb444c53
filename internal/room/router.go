package room

import (
	"fmt"
	"strings"
)

// Router resolves route strings to rooms and keeps the back stack. Routes
// are plain keys except for parameterized ones like "detail/<name>", where
// everything after the first slash is handed to the room as an argument.
type Router struct {
	rooms   map[string]Room
	order   []string
	current Room
	stack   []Room
}

// NewRouter registers the given rooms. The first one is the landing room.
func NewRouter(rooms ...Room) *Router {
	r := &Router{rooms: make(map[string]Room, len(rooms))}
	for _, rm := range rooms {
		r.rooms[rm.Key()] = rm
		r.order = append(r.order, rm.Key())
	}
	if len(rooms) > 0 {
		r.current = rooms[0]
	}
	return r
}

// Resolve looks up the room for a route. A route argument is passed through
// to the room untouched; the room reports it back exactly as given.
func (r *Router) Resolve(route string) (Room, error) {
	route = strings.TrimSpace(route)
	key, param, hasParam := strings.Cut(route, "/")

	rm, ok := r.rooms[key]
	if !ok {
		return nil, fmt.Errorf("no room at %q, 'rooms' lists what exists", route)
	}
	if hasParam {
		p, ok := rm.(Paramed)
		if !ok {
			return nil, fmt.Errorf("room %q takes no argument", key)
		}
		p.SetParam("name", param)
	}
	return rm, nil
}

// Go navigates to route, pushing the active room onto the back stack.
func (r *Router) Go(route string) error {
	rm, err := r.Resolve(route)
	if err != nil {
		return err
	}
	if r.current != nil && r.current != rm {
		r.stack = append(r.stack, r.current)
	}
	r.current = rm
	return nil
}

// Back pops the previous room. At the bottom of the stack it stays put.
func (r *Router) Back() {
	if len(r.stack) == 0 {
		return
	}
	r.current = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Current returns the active room.
func (r *Router) Current() Room {
	return r.current
}

// List returns the rooms in registration order.
func (r *Router) List() []Room {
	out := make([]Room, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.rooms[key])
	}
	return out
}
