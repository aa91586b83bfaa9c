package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
	repo "github.com/prasetya/tasklist-api/internal/domain/repository"
)

// TodoService is the ownership-scoped resource store: every operation takes
// the acting user's id and only ever touches that user's items. A
// syntactically invalid item id, a missing item, and an item owned by
// someone else all surface as repository.ErrNotFound.
type TodoService struct {
	Todos  repo.TodoRepository
	Logger *logrus.Logger
	Events EventPublisher
}

func NewTodoService(todos repo.TodoRepository, logger *logrus.Logger, events EventPublisher) *TodoService {
	return &TodoService{Todos: todos, Logger: logger, Events: events}
}

// TodoInput is a PATCH body after binding. Completed reflects exactly what
// the client sent; nil means absent.
type TodoInput struct {
	Text      *string
	Completed *bool
}

func (s *TodoService) Create(ctx context.Context, authorID, text string) (*entity.Todo, error) {
	t := &entity.Todo{AuthorID: authorID, Text: text}
	if err := s.Todos.Create(ctx, t); err != nil {
		return nil, err
	}
	s.publish(ctx, newEvent("todo.created", authorID, t.ID))
	return t, nil
}

func (s *TodoService) List(ctx context.Context, authorID string) ([]entity.Todo, error) {
	return s.Todos.ListByAuthor(ctx, authorID)
}

func (s *TodoService) Get(ctx context.Context, authorID, id string) (*entity.Todo, error) {
	if !validID(id) {
		return nil, repo.ErrNotFound
	}
	return s.Todos.GetByID(ctx, authorID, id)
}

// Update applies the derived-field rule unconditionally: completed=true
// stamps CompletedAt with the current epoch-millisecond time; anything else,
// including an absent completed field, forces completed=false and a null
// CompletedAt.
func (s *TodoService) Update(ctx context.Context, authorID, id string, in TodoInput) (*entity.Todo, error) {
	if !validID(id) {
		return nil, repo.ErrNotFound
	}
	upd := repo.TodoUpdate{Text: in.Text}
	if in.Completed != nil && *in.Completed {
		now := time.Now().UnixMilli()
		upd.Completed = true
		upd.CompletedAt = &now
	}
	t, err := s.Todos.Update(ctx, authorID, id, upd)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, newEvent("todo.updated", authorID, t.ID))
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, authorID, id string) (*entity.Todo, error) {
	if !validID(id) {
		return nil, repo.ErrNotFound
	}
	t, err := s.Todos.Delete(ctx, authorID, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, newEvent("todo.deleted", authorID, t.ID))
	return t, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *TodoService) publish(ctx context.Context, ev Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event", ev.Type).Warn("event publish failed")
	}
}
