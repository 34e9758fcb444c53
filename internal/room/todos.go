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

// Todos is the todo-list room. Every command is scoped to the configured
// owner id, so a shared backend keeps sessions apart.
type Todos struct {
	store   store.TodoStore
	ownerID string
}

// NewTodos creates the todos room for one owner.
func NewTodos(s store.TodoStore, ownerID string) *Todos {
	return &Todos{store: s, ownerID: ownerID}
}

func (t *Todos) Key() string   { return "todos" }
func (t *Todos) Title() string { return "Todos" }

func (t *Todos) Render(w io.Writer) {
	todos, err := t.store.ListByOwner(context.Background(), t.ownerID)
	if err != nil {
		fmt.Fprintf(w, "could not load todos: %v\n", err)
		return
	}

	if len(todos) == 0 {
		fmt.Fprintln(w, "nothing to do")
	}
	for i, todo := range todos {
		mark := " "
		if todo.Done {
			mark = "x"
		}
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, mark, todo.Title)
	}
	fmt.Fprintln(w, "commands: add <title>, edit <n> <title>, done <n>, del <n>, list")
}

func (t *Todos) Handle(ctx context.Context, input string) (Outcome, error) {
	verb, rest := splitCommand(input)
	switch verb {
	case "add":
		if rest == "" {
			return Stay, fmt.Errorf("add needs a title, e.g. 'add hand in homework'")
		}
		if _, err := t.store.Create(ctx, model.Todo{Title: rest, OwnerID: t.ownerID}); err != nil {
			return Stay, fmt.Errorf("create todo: %w", err)
		}
		return Stay, nil
	case "list":
		return Stay, nil
	case "edit":
		numText, text, _ := strings.Cut(rest, " ")
		todo, err := t.todoAt(ctx, numText)
		if err != nil {
			return Stay, err
		}
		title := strings.TrimSpace(text)
		if title == "" {
			return Stay, fmt.Errorf("edit needs a title, e.g. 'edit 1 hand in homework'")
		}
		todo.Title = title
		if err := t.store.Update(ctx, todo); err != nil {
			return Stay, fmt.Errorf("update todo: %w", err)
		}
		return Stay, nil
	case "done":
		todo, err := t.todoAt(ctx, rest)
		if err != nil {
			return Stay, err
		}
		if _, err := t.store.Toggle(ctx, todo.ID); err != nil {
			return Stay, fmt.Errorf("toggle todo: %w", err)
		}
		return Stay, nil
	case "del":
		todo, err := t.todoAt(ctx, rest)
		if err != nil {
			return Stay, err
		}
		if err := t.store.Delete(ctx, todo.ID); err != nil {
			return Stay, fmt.Errorf("delete todo: %w", err)
		}
		return Stay, nil
	}
	return Stay, fmt.Errorf("unknown command %q", input)
}

func (t *Todos) todoAt(ctx context.Context, raw string) (model.Todo, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 1 {
		return model.Todo{}, fmt.Errorf("expected a listing number, got %q", raw)
	}
	todos, err := t.store.ListByOwner(ctx, t.ownerID)
	if err != nil {
		return model.Todo{}, fmt.Errorf("list todos: %w", err)
	}
	if idx > len(todos) {
		return model.Todo{}, fmt.Errorf("no todo %d, the list has %d", idx, len(todos))
	}
	return todos[idx-1], nil
}
