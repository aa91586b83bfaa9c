package entity

import "time"

// Todo is a single task item owned by exactly one user. AuthorID is stamped
// from the authenticated context at creation and never changes afterwards.
//
// CompletedAt is epoch milliseconds and mirrors Completed: it is non-nil
// exactly when Completed is true. Both fields are derived server-side on
// every update; clients cannot set them independently.
type Todo struct {
	ID          string
	AuthorID    string
	Text        string
	Completed   bool
	CompletedAt *int64
	CreatedAt   time.Time
}
