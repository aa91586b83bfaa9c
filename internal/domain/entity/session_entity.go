package entity

import "time"

// Session is one entry of the server-side token allow-list. A bearer token is
// only accepted while a matching (purpose, token) row exists for its subject;
// deleting the row revokes the token even though its signature stays valid.
type Session struct {
	ID        int64
	UserID    string
	Purpose   string
	Token     string
	CreatedAt time.Time
}

// PurposeAuth is the only token purpose issued today.
const PurposeAuth = "auth"
