package services

import (
	"context"

	"todoboard/model"
)

// TodoStore is the persistence boundary for todos: a collection keyed by
// generated ids, queryable by visibility membership.
type TodoStore interface {
	// Create persists a new record, assigns its id, and returns it.
	Create(ctx context.Context, todo *model.Todo) (*model.Todo, error)

	// GetByID returns the record or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Todo, error)

	// Put replaces the stored document for todo.ID wholesale. Two
	// concurrent Puts race; the last write wins.
	Put(ctx context.Context, todo *model.Todo) error

	// Delete removes the record. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error

	// ListVisibleTo returns all records whose visibleTo set contains
	// userID, most recently created first.
	ListVisibleTo(ctx context.Context, userID string) ([]*model.Todo, error)
}
