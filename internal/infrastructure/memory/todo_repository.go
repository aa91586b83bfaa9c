package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
	"github.com/prasetya/tasklist-api/internal/domain/repository"
)

type TodoRepository struct {
	mu    sync.Mutex
	order []string
	todos map[string]entity.Todo
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todos: make(map[string]entity.Todo)}
}

func (r *TodoRepository) Create(_ context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.NewString()
	t.Completed = false
	t.CompletedAt = nil
	t.CreatedAt = time.Now()
	r.todos[t.ID] = *t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *TodoRepository) ListByAuthor(_ context.Context, authorID string) ([]entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Todo, 0)
	for _, id := range r.order {
		if t, ok := r.todos[id]; ok && t.AuthorID == authorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TodoRepository) GetByID(_ context.Context, authorID, id string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok || t.AuthorID != authorID {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *TodoRepository) Update(_ context.Context, authorID, id string, upd repository.TodoUpdate) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok || t.AuthorID != authorID {
		return nil, repository.ErrNotFound
	}
	if upd.Text != nil {
		t.Text = *upd.Text
	}
	t.Completed = upd.Completed
	t.CompletedAt = upd.CompletedAt
	r.todos[id] = t
	return &t, nil
}

func (r *TodoRepository) Delete(_ context.Context, authorID, id string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok || t.AuthorID != authorID {
		return nil, repository.ErrNotFound
	}
	delete(r.todos, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return &t, nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
