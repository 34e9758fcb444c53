package store

import (
	"context"
	"sync"
	"time"

	"github.com/seojunpark/homeroom/internal/model"
)

// MemoryNoteStore keeps notes in a slice scanned linearly by id. It is the
// fixture backend: state lives for the session and is gone on exit.
type MemoryNoteStore struct {
	mu    sync.RWMutex
	notes []model.Note
}

// NewMemoryNoteStore creates an empty in-memory note store.
func NewMemoryNoteStore() *MemoryNoteStore {
	return &MemoryNoteStore{}
}

func (s *MemoryNoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = newID(note.ID)
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	s.notes = append(s.notes, note)
	return note, nil
}

func (s *MemoryNoteStore) Get(ctx context.Context, id string) (model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return model.Note{}, ErrNotFound
}

func (s *MemoryNoteStore) List(ctx context.Context) ([]model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Note, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

// Update rewrites title and content of the note matching id, keeping the
// creation time. A missing id is a no-op.
func (s *MemoryNoteStore) Update(ctx context.Context, note model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			s.notes[i].Title = note.Title
			s.notes[i].Content = note.Content
			return nil
		}
	}
	return nil
}

// Delete removes the one note matching id and leaves the rest untouched. A
// missing id is a no-op.
func (s *MemoryNoteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryNoteStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes), nil
}

// MemoryTodoStore keeps todos in a slice scanned linearly by id.
type MemoryTodoStore struct {
	mu    sync.RWMutex
	todos []model.Todo
}

// NewMemoryTodoStore creates an empty in-memory todo store.
func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{}
}

func (s *MemoryTodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo.ID = newID(todo.ID)
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now()
	}
	s.todos = append(s.todos, todo)
	return todo, nil
}

func (s *MemoryTodoStore) Get(ctx context.Context, id string) (model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.todos {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Todo{}, ErrNotFound
}

func (s *MemoryTodoStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Todo
	for _, t := range s.todos {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

// Update rewrites title and done of the todo matching id, keeping owner and
// creation time. A missing id is a no-op.
func (s *MemoryTodoStore) Update(ctx context.Context, todo model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == todo.ID {
			s.todos[i].Title = todo.Title
			s.todos[i].Done = todo.Done
			return nil
		}
	}
	return nil
}

// Toggle flips the done flag of the todo matching id.
func (s *MemoryTodoStore) Toggle(ctx context.Context, id string) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Done = !s.todos[i].Done
			return s.todos[i], nil
		}
	}
	return model.Todo{}, ErrNotFound
}

func (s *MemoryTodoStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryTodoStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos), nil
}

// ScheduleLog records extracted schedules for the session. Unlike notes and
// todos it has no configurable backend; extractions are session-scoped.
type ScheduleLog struct {
	mu        sync.RWMutex
	schedules []model.Schedule
}

// NewScheduleLog creates an empty schedule log.
func NewScheduleLog() *ScheduleLog {
	return &ScheduleLog{}
}

// Append stores a schedule, assigning an id and timestamp when empty.
func (l *ScheduleLog) Append(schedule model.Schedule) model.Schedule {
	l.mu.Lock()
	defer l.mu.Unlock()

	schedule.ID = newID(schedule.ID)
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now()
	}
	l.schedules = append(l.schedules, schedule)
	return schedule
}

func (l *ScheduleLog) List() []model.Schedule {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Schedule, len(l.schedules))
	copy(out, l.schedules)
	return out
}

func (l *ScheduleLog) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.schedules)
}
