package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seojunpark/homeroom/internal/model"
)

// OpenMongo connects to MongoDB and verifies the connection with a ping.
// The caller owns the client and disconnects it on shutdown.
func OpenMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// MongoTodoStore keeps todos in a MongoDB collection, one document per item,
// keyed by the owner field.
type MongoTodoStore struct {
	collection *mongo.Collection
}

// NewMongoTodoStore creates a todo store on the "todos" collection.
func NewMongoTodoStore(db *mongo.Database) *MongoTodoStore {
	return &MongoTodoStore{collection: db.Collection("todos")}
}

func (s *MongoTodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	todo.ID = newID(todo.ID)
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now()
	}
	if _, err := s.collection.InsertOne(ctx, todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (s *MongoTodoStore) Get(ctx context.Context, id string) (model.Todo, error) {
	var todo model.Todo
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Todo{}, ErrNotFound
	}
	if err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (s *MongoTodoStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []model.Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Update rewrites title and done of the matching document. A missing id
// matches zero documents and is a no-op.
func (s *MongoTodoStore) Update(ctx context.Context, todo model.Todo) error {
	update := bson.M{"$set": bson.M{"title": todo.Title, "done": todo.Done}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": todo.ID}, update)
	return err
}

func (s *MongoTodoStore) Toggle(ctx context.Context, id string) (model.Todo, error) {
	todo, err := s.Get(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	todo.Done = !todo.Done
	update := bson.M{"$set": bson.M{"done": todo.Done}}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (s *MongoTodoStore) Delete(ctx context.Context, id string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoTodoStore) Count(ctx context.Context) (int, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	return int(count), err
}
