package room

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seojunpark/homeroom/internal/model"
	"github.com/seojunpark/homeroom/internal/store"
)

// Notes is the note-taking room backed by the configured note store.
// Commands address notes by their 1-based listing number.
type Notes struct {
	store store.NoteStore
}

// NewNotes creates the notes room over the given store.
func NewNotes(s store.NoteStore) *Notes {
	return &Notes{store: s}
}

func (n *Notes) Key() string   { return "notes" }
func (n *Notes) Title() string { return "Notes" }

func (n *Notes) Render(w io.Writer) {
	notes, err := n.store.List(context.Background())
	if err != nil {
		fmt.Fprintf(w, "could not load notes: %v\n", err)
		return
	}

	if len(notes) == 0 {
		fmt.Fprintln(w, "no notes yet")
	}
	for i, note := range notes {
		fmt.Fprintf(w, "%d. %s: %s\n", i+1, note.Title, note.Content)
	}
	fmt.Fprintln(w, "commands: add <title>: <content>, edit <n> <title>: <content>, del <n>, list")
}

func (n *Notes) Handle(ctx context.Context, input string) (Outcome, error) {
	verb, rest := splitCommand(input)
	switch verb {
	case "add":
		title, content, _ := cutTitleContent(rest)
		if title == "" {
			return Stay, fmt.Errorf("add needs a title, e.g. 'add shopping: milk and eggs'")
		}
		if _, err := n.store.Create(ctx, model.Note{Title: title, Content: content}); err != nil {
			return Stay, fmt.Errorf("create note: %w", err)
		}
		return Stay, nil
	case "list":
		return Stay, nil
	case "edit":
		numText, text, _ := strings.Cut(rest, " ")
		note, err := n.noteAt(ctx, numText)
		if err != nil {
			return Stay, err
		}
		title, content, hasContent := cutTitleContent(text)
		if title != "" {
			note.Title = title
		}
		if hasContent {
			note.Content = content
		}
		if err := n.store.Update(ctx, note); err != nil {
			return Stay, fmt.Errorf("update note: %w", err)
		}
		return Stay, nil
	case "del":
		note, err := n.noteAt(ctx, rest)
		if err != nil {
			return Stay, err
		}
		if err := n.store.Delete(ctx, note.ID); err != nil {
			return Stay, fmt.Errorf("delete note: %w", err)
		}
		return Stay, nil
	}
	return Stay, fmt.Errorf("unknown command %q", input)
}

// noteAt resolves a 1-based listing number against the current list.
func (n *Notes) noteAt(ctx context.Context, raw string) (model.Note, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 1 {
		return model.Note{}, fmt.Errorf("expected a listing number, got %q", raw)
	}
	notes, err := n.store.List(ctx)
	if err != nil {
		return model.Note{}, fmt.Errorf("list notes: %w", err)
	}
	if idx > len(notes) {
		return model.Note{}, fmt.Errorf("no note %d, the list has %d", idx, len(notes))
	}
	return notes[idx-1], nil
}

// cutTitleContent splits "title: content" and reports whether a colon was
// present.
func cutTitleContent(text string) (string, string, bool) {
	title, content, found := strings.Cut(text, ":")
	return strings.TrimSpace(title), strings.TrimSpace(content), found
}
