package store

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/seojunpark/homeroom/internal/model"
)

// OpenGorm creates the GORM database connection backing the gorm stores.
// When databaseURL is provided PostgreSQL is used, otherwise SQLite is used.
func OpenGorm(databaseURL string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open("homeroom.db"), gormConfig)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Note{}, &model.Todo{}); err != nil {
		return nil, err
	}

	logGormBackend(db)
	return db, nil
}

func logGormBackend(db *gorm.DB) {
	dialector := db.Dialector.Name()
	switch strings.ToLower(dialector) {
	case "postgres":
		log.Printf("store: connected to PostgreSQL")
	case "sqlite":
		log.Printf("store: using SQLite homeroom.db")
	default:
		log.Printf("store: connected via %s", dialector)
	}
}

// GormNoteStore persists notes through GORM.
type GormNoteStore struct {
	db *gorm.DB
}

// NewGormNoteStore creates a note store on an open GORM connection.
func NewGormNoteStore(db *gorm.DB) *GormNoteStore {
	return &GormNoteStore{db: db}
}

func (s *GormNoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	note.ID = newID(note.ID)
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return model.Note{}, err
	}
	return note, nil
}

func (s *GormNoteStore) Get(ctx context.Context, id string) (model.Note, error) {
	var note model.Note
	err := s.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Note{}, ErrNotFound
	}
	if err != nil {
		return model.Note{}, err
	}
	return note, nil
}

func (s *GormNoteStore) List(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Update rewrites title and content of the matching row. A missing id
// matches zero rows and is a no-op.
func (s *GormNoteStore) Update(ctx context.Context, note model.Note) error {
	return s.db.WithContext(ctx).Model(&model.Note{}).Where("id = ?", note.ID).
		Updates(map[string]any{"title": note.Title, "content": note.Content}).Error
}

func (s *GormNoteStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Note{}, "id = ?", id).Error
}

func (s *GormNoteStore) Count(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Note{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// GormTodoStore persists todos through GORM.
type GormTodoStore struct {
	db *gorm.DB
}

// NewGormTodoStore creates a todo store on an open GORM connection.
func NewGormTodoStore(db *gorm.DB) *GormTodoStore {
	return &GormTodoStore{db: db}
}

func (s *GormTodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	todo.ID = newID(todo.ID)
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&todo).Error; err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (s *GormTodoStore) Get(ctx context.Context, id string) (model.Todo, error) {
	var todo model.Todo
	err := s.db.WithContext(ctx).First(&todo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Todo{}, ErrNotFound
	}
	if err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (s *GormTodoStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	var todos []model.Todo
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at ASC").Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *GormTodoStore) Update(ctx context.Context, todo model.Todo) error {
	return s.db.WithContext(ctx).Model(&model.Todo{}).Where("id = ?", todo.ID).
		Updates(map[string]any{"title": todo.Title, "done": todo.Done}).Error
}

func (s *GormTodoStore) Toggle(ctx context.Context, id string) (model.Todo, error) {
	todo, err := s.Get(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	todo.Done = !todo.Done
	err = s.db.WithContext(ctx).Model(&model.Todo{}).Where("id = ?", id).
		Update("done", todo.Done).Error
	if err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (s *GormTodoStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id).Error
}

func (s *GormTodoStore) Count(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Todo{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
