// Package app drives one interactive session over the rooms.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/seojunpark/homeroom/internal/room"
)

// App is the session loop. Everything it needs is constructed in main and
// handed over here; nothing is global.
type App struct {
	logger *log.Logger
	router *room.Router
	in     io.Reader
	out    io.Writer
}

// New assembles a session from its parts. Reader and writer are injected so
// the loop runs against buffers in tests.
func New(logger *log.Logger, router *room.Router, in io.Reader, out io.Writer) *App {
	return &App{logger: logger, router: router, in: in, out: out}
}

// Run reads commands until the input ends, 'quit', or ctx is canceled.
// Global commands (go, back, rooms, quit) steer navigation; everything else
// goes to the current room. The room is re-rendered after each command.
// Input is read on its own goroutine, so a canceled ctx ends the session
// even while the read is blocked waiting for the next line.
func (a *App) Run(ctx context.Context) error {
	a.logger.Printf("session started in room %q", a.router.Current().Key())
	a.render()

	var readErr error
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr = scanner.Err()
	}()

	for {
		fmt.Fprint(a.out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out, "goodbye")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if readErr != nil {
					return fmt.Errorf("read input: %w", readErr)
				}
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if quit := a.dispatch(ctx, line); quit {
				fmt.Fprintln(a.out, "goodbye")
				return nil
			}
			a.render()
		}
	}
}

// dispatch runs one command and reports whether the session should end.
func (a *App) dispatch(ctx context.Context, line string) bool {
	verb, rest, _ := strings.Cut(line, " ")
	switch strings.ToLower(verb) {
	case "quit", "exit":
		return true
	case "go":
		route := strings.TrimSpace(rest)
		if route == "" {
			a.report(fmt.Errorf("go needs a route, e.g. 'go counter'"))
			return false
		}
		if err := a.router.Go(route); err != nil {
			a.report(err)
		}
		return false
	case "back":
		a.router.Back()
		return false
	case "rooms":
		room.WriteRoomList(a.out, a.router.List())
		return false
	}

	outcome, err := a.router.Current().Handle(ctx, line)
	if err != nil {
		a.report(err)
		return false
	}
	switch {
	case outcome.Back:
		a.router.Back()
	case outcome.Route != "":
		if err := a.router.Go(outcome.Route); err != nil {
			a.report(err)
		}
	}
	return false
}

func (a *App) render() {
	current := a.router.Current()
	fmt.Fprintf(a.out, "\n=== %s ===\n", current.Title())
	current.Render(a.out)
}

func (a *App) report(err error) {
	fmt.Fprintln(a.out, "error:", err)
}
