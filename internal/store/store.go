// Package store holds the persistence behind the rooms. Each entity gets a
// small interface naming its capability set, with interchangeable backends
// (in-memory fixture, gorm, mongo) selected by configuration.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/seojunpark/homeroom/internal/model"
)

// ErrNotFound is returned by lookups when no record matches the id.
var ErrNotFound = errors.New("store: record not found")

// NoteStore defines the capabilities the notes room needs.
type NoteStore interface {
	Create(ctx context.Context, note model.Note) (model.Note, error)
	Get(ctx context.Context, id string) (model.Note, error)
	List(ctx context.Context) ([]model.Note, error)
	Update(ctx context.Context, note model.Note) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// TodoStore defines the capabilities the todos room needs. Every read is
// scoped to an owner id; writes address records by id.
type TodoStore interface {
	Create(ctx context.Context, todo model.Todo) (model.Todo, error)
	Get(ctx context.Context, id string) (model.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error)
	Update(ctx context.Context, todo model.Todo) error
	Toggle(ctx context.Context, id string) (model.Todo, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// newID returns id unchanged when set, otherwise a fresh uuid string.
func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
