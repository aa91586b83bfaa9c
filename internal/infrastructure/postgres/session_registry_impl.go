package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasetya/tasklist-api/internal/domain/repository"
)

// SessionRegistry keeps the token allow-list as one row per issued token.
// Appends are plain INSERTs, so concurrent logins for the same user cannot
// lose each other's entries; ordering follows the bigserial id.
type SessionRegistry struct {
	pool *pgxpool.Pool
}

func NewSessionRegistry(pool *pgxpool.Pool) *SessionRegistry {
	return &SessionRegistry{pool: pool}
}

func (r *SessionRegistry) Add(ctx context.Context, userID, purpose, token string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (user_id, purpose, token)
		VALUES ($1, $2, $3)
	`, userID, purpose, token)
	return err
}

// Remove deletes the oldest matching entry. Removing a token that is not
// present is a no-op, never an error.
func (r *SessionRegistry) Remove(ctx context.Context, userID, token string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM sessions
		WHERE id = (
			SELECT id FROM sessions
			WHERE user_id = $1 AND token = $2
			ORDER BY id
			LIMIT 1
		)
	`, userID, token)
	return err
}

func (r *SessionRegistry) IsValid(ctx context.Context, userID, purpose, token string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM sessions
			WHERE user_id = $1 AND purpose = $2 AND token = $3
		)
	`, userID, purpose, token).Scan(&ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}

var _ repository.SessionRegistry = (*SessionRegistry)(nil)
