package repository

import "context"

// SessionRegistry is the server-side allow-list of issued tokens. A token is
// accepted only when it both verifies cryptographically and is present here;
// Remove therefore revokes it immediately.
//
// Add must be an independent append: concurrent logins for the same user may
// not lose entries. Remove drops the first matching entry and is a no-op when
// the token is absent.
type SessionRegistry interface {
	Add(ctx context.Context, userID, purpose, token string) error
	Remove(ctx context.Context, userID, token string) error
	IsValid(ctx context.Context, userID, purpose, token string) (bool, error)
}
