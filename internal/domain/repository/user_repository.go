package repository

import (
	"context"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
)

// UserRepository defines persistence for user accounts.
//
// Update deliberately never writes PasswordHash: re-saving a user whose
// password did not change must leave the stored hash untouched. Password
// changes go through UpdatePassword with an already-hashed value.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
