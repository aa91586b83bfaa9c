package application

import (
	"context"
	"time"
)

// EventPublisher is satisfied by helpers.RabbitPublisher. Services treat a
// nil publisher as "events disabled" and publish failures are logged, never
// surfaced to the request.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Event is a fire-and-forget activity record published on signups, logins,
// logouts and todo mutations.
type Event struct {
	Type   string    `json:"type"`
	UserID string    `json:"user_id"`
	TodoID string    `json:"todo_id,omitempty"`
	At     time.Time `json:"at"`
}

func newEvent(typ, userID, todoID string) Event {
	return Event{Type: typ, UserID: userID, TodoID: todoID, At: time.Now().UTC()}
}
