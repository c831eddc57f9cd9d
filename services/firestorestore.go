package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"todoboard/model"
)

const todosCollection = "todos"

// FirestoreTodoStore keeps todos in a Firestore collection, one document
// per todo with a uuid document id.
type FirestoreTodoStore struct {
	client *firestore.Client
}

func NewFirestoreTodoStore(client *firestore.Client) *FirestoreTodoStore {
	return &FirestoreTodoStore{client: client}
}

func (s *FirestoreTodoStore) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	id := uuid.New().String()
	if _, err := s.client.Collection(todosCollection).Doc(id).Set(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	created := todo.Clone()
	created.ID = id
	return created, nil
}

func (s *FirestoreTodoStore) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	doc, err := s.client.Collection(todosCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	var todo model.Todo
	if err := doc.DataTo(&todo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
	}
	todo.ID = doc.Ref.ID
	return &todo, nil
}

func (s *FirestoreTodoStore) Put(ctx context.Context, todo *model.Todo) error {
	if _, err := s.client.Collection(todosCollection).Doc(todo.ID).Set(ctx, todo); err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return nil
}

func (s *FirestoreTodoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Collection(todosCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

func (s *FirestoreTodoStore) ListVisibleTo(ctx context.Context, userID string) ([]*model.Todo, error) {
	iter := s.client.Collection(todosCollection).
		Where("visibleTo", "array-contains", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	todos := []*model.Todo{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate todos: %w", err)
		}

		var todo model.Todo
		if err := doc.DataTo(&todo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
		}
		todo.ID = doc.Ref.ID
		todos = append(todos, &todo)
	}

	return todos, nil
}
