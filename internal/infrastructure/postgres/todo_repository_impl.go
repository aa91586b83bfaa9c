package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
	"github.com/prasetya/tasklist-api/internal/domain/repository"
)

// TodoRepository scopes every statement by author_id so an item belonging to
// another user is indistinguishable from one that does not exist.
type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

const todoColumns = `id, author_id, text, completed, completed_at, created_at`

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO todos (author_id, text)
		VALUES ($1, $2)
		RETURNING id, completed, completed_at, created_at
	`, t.AuthorID, t.Text)
	return row.Scan(&t.ID, &t.Completed, &t.CompletedAt, &t.CreatedAt)
}

func (r *TodoRepository) ListByAuthor(ctx context.Context, authorID string) ([]entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE author_id = $1
		ORDER BY created_at
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]entity.Todo, 0)
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.AuthorID, &t.Text, &t.Completed, &t.CompletedAt, &t.CreatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) GetByID(ctx context.Context, authorID, id string) (*entity.Todo, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1 AND author_id = $2
	`, id, authorID)
	return scanTodo(row)
}

func (r *TodoRepository) Update(ctx context.Context, authorID, id string, upd repository.TodoUpdate) (*entity.Todo, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE todos
		SET text = COALESCE($3, text), completed = $4, completed_at = $5
		WHERE id = $1 AND author_id = $2
		RETURNING `+todoColumns+`
	`, id, authorID, upd.Text, upd.Completed, upd.CompletedAt)
	return scanTodo(row)
}

func (r *TodoRepository) Delete(ctx context.Context, authorID, id string) (*entity.Todo, error) {
	row := r.pool.QueryRow(ctx, `
		DELETE FROM todos
		WHERE id = $1 AND author_id = $2
		RETURNING `+todoColumns,
		id, authorID)
	return scanTodo(row)
}

func scanTodo(row pgx.Row) (*entity.Todo, error) {
	t := &entity.Todo{}
	if err := row.Scan(&t.ID, &t.AuthorID, &t.Text, &t.Completed, &t.CompletedAt, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
