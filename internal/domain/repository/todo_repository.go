package repository

import (
	"context"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
)

// TodoUpdate carries the fields an update may change. Text is optional;
// Completed/CompletedAt are always written (the service derives them on
// every call, whether or not the client sent them).
type TodoUpdate struct {
	Text        *string
	Completed   bool
	CompletedAt *int64
}

// TodoRepository persists task items. Every lookup is scoped by authorID;
// an existing item owned by someone else reports ErrNotFound.
type TodoRepository interface {
	Create(ctx context.Context, t *entity.Todo) error
	ListByAuthor(ctx context.Context, authorID string) ([]entity.Todo, error)
	GetByID(ctx context.Context, authorID, id string) (*entity.Todo, error)
	Update(ctx context.Context, authorID, id string, upd TodoUpdate) (*entity.Todo, error)
	Delete(ctx context.Context, authorID, id string) (*entity.Todo, error)
}
