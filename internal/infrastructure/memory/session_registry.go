package memory

import (
	"context"
	"sync"

	"github.com/prasetya/tasklist-api/internal/domain/entity"
	"github.com/prasetya/tasklist-api/internal/domain/repository"
)

// SessionRegistry keeps sessions as an ordered slice per user, mirroring the
// insertion-ordered rows of the postgres registry.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string][]entity.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string][]entity.Session)}
}

func (r *SessionRegistry) Add(_ context.Context, userID, purpose, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[userID] = append(r.sessions[userID], entity.Session{
		UserID:  userID,
		Purpose: purpose,
		Token:   token,
	})
	return nil
}

func (r *SessionRegistry) Remove(_ context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.sessions[userID]
	for i, s := range list {
		if s.Token == token {
			r.sessions[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *SessionRegistry) IsValid(_ context.Context, userID, purpose, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions[userID] {
		if s.Purpose == purpose && s.Token == token {
			return true, nil
		}
	}
	return false, nil
}

// Count reports how many sessions a user currently holds. Test helper.
func (r *SessionRegistry) Count(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions[userID])
}

var _ repository.SessionRegistry = (*SessionRegistry)(nil)
