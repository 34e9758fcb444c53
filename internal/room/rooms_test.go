package room

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/seojunpark/homeroom/internal/extract"
	"github.com/seojunpark/homeroom/internal/notify"
	"github.com/seojunpark/homeroom/internal/store"
	"github.com/seojunpark/homeroom/internal/weather"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func mustHandle(t *testing.T, r Room, input string) {
	t.Helper()
	if _, err := r.Handle(context.Background(), input); err != nil {
		t.Fatalf("handle %q: %v", input, err)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func TestRoomsRenderIntoBuffer(t *testing.T) {
	t.Parallel()

	notes := NewNotes(store.NewMemoryNoteStore())
	todos := NewTodos(store.NewMemoryTodoStore(), "owner")
	weatherRoom := NewWeather(weather.NewService(weather.NewFixture(), discardLogger()))
	extractRoom := NewExtract(extract.NewMock(), store.NewScheduleLog(), notify.NewNoop(), discardLogger())
	loading := NewLoading(time.Millisecond)
	counter := NewCounter()
	profiles := NewProfiles()
	detail := NewDetail()
	home := NewHome(profiles, counter, loading, notes, todos, weatherRoom, extractRoom)

	rooms := []Room{home, profiles, counter, loading, notes, todos, weatherRoom, extractRoom, detail}
	for _, rm := range rooms {
		var buf bytes.Buffer
		rm.Render(&buf)
		if buf.Len() == 0 {
			t.Errorf("room %q rendered nothing", rm.Key())
		}
	}
}

func TestProfilesRenderCards(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewProfiles().Render(&buf)
	if !containsAll(buf.String(), []string{"이서준", "담임", "김민지"}) {
		t.Fatalf("unexpected cards: %q", buf.String())
	}
}

func TestNotesAddEditDelete(t *testing.T) {
	t.Parallel()

	n := NewNotes(store.NewMemoryNoteStore())

	mustHandle(t, n, "add shopping: milk and eggs")
	mustHandle(t, n, "add homework: math p.42")

	var buf bytes.Buffer
	n.Render(&buf)
	if !containsAll(buf.String(), []string{"1. shopping: milk and eggs", "2. homework: math p.42"}) {
		t.Fatalf("unexpected listing: %q", buf.String())
	}

	mustHandle(t, n, "edit 1 groceries: milk, eggs and bread")
	mustHandle(t, n, "del 2")

	buf.Reset()
	n.Render(&buf)
	out := buf.String()
	if !strings.Contains(out, "groceries") || strings.Contains(out, "homework") {
		t.Fatalf("unexpected listing after edit and delete: %q", out)
	}

	if _, err := n.Handle(context.Background(), "del 9"); err == nil {
		t.Fatalf("expected an error for an out-of-range number")
	}
}

func TestTodosOwnerScopedFlow(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryTodoStore()
	mine := NewTodos(s, "me")
	theirs := NewTodos(s, "them")

	mustHandle(t, mine, "add hand in homework")
	mustHandle(t, mine, "add water the plants")
	mustHandle(t, theirs, "add somebody else's job")

	mustHandle(t, mine, "done 1")

	var buf bytes.Buffer
	mine.Render(&buf)
	out := buf.String()
	if !containsAll(out, []string{"[x] hand in homework", "[ ] water the plants"}) {
		t.Fatalf("unexpected listing: %q", out)
	}
	if strings.Contains(out, "somebody else's job") {
		t.Fatalf("foreign todo leaked into the listing: %q", out)
	}

	mustHandle(t, mine, "edit 2 water the garden")
	buf.Reset()
	mine.Render(&buf)
	out = buf.String()
	if !strings.Contains(out, "[ ] water the garden") || strings.Contains(out, "water the plants") {
		t.Fatalf("edit did not rewrite the title: %q", out)
	}

	mustHandle(t, mine, "del 1")
	buf.Reset()
	mine.Render(&buf)
	if strings.Contains(buf.String(), "homework") {
		t.Fatalf("deleted todo still listed: %q", buf.String())
	}
}

func TestWeatherRoomErrorIsScreenState(t *testing.T) {
	t.Parallel()

	r := NewWeather(weather.NewService(weather.NewFixture(), discardLogger()))

	// a failed lookup lands in the screen, not in the command result
	if _, err := r.Handle(context.Background(), "city nowhere"); err != nil {
		t.Fatalf("unexpected command error: %v", err)
	}
	var buf bytes.Buffer
	r.Render(&buf)
	if !strings.Contains(buf.String(), "weather error") {
		t.Fatalf("expected the error on screen, got %q", buf.String())
	}

	mustHandle(t, r, "city seoul")
	buf.Reset()
	r.Render(&buf)
	if !strings.Contains(buf.String(), "Seoul") {
		t.Fatalf("expected conditions for Seoul, got %q", buf.String())
	}

	mustHandle(t, r, "refresh")
}

func TestExtractKeepAndList(t *testing.T) {
	t.Parallel()

	kept := store.NewScheduleLog()
	r := NewExtract(extract.NewMock(), kept, notify.NewNoop(), discardLogger())

	mustHandle(t, r, "meeting at gangnam next week")
	var buf bytes.Buffer
	r.Render(&buf)
	if !containsAll(buf.String(), []string{"팀 미팅", "0.92"}) {
		t.Fatalf("unexpected extraction render: %q", buf.String())
	}

	mustHandle(t, r, "keep")
	if kept.Count() != 1 {
		t.Fatalf("expected one kept schedule, got %d", kept.Count())
	}

	mustHandle(t, r, "list")
	buf.Reset()
	r.Render(&buf)
	if !strings.Contains(buf.String(), "1. 팀 미팅") {
		t.Fatalf("kept schedule missing from the log: %q", buf.String())
	}

	if _, err := r.Handle(context.Background(), "keep"); err == nil {
		t.Fatalf("expected an error when there is nothing to keep")
	}
}
