package model

import "time"

const (
	TableName  = "session"
	EntityName = "session"
)

// Session mirrors the auth provider's session table, which uses quoted
// camelCase column names.
type Session struct {
	Token     string    `db:"token" json:"token"`
	UserID    string    `db:"userId" json:"user_id"`
	ExpiresAt time.Time `db:"expiresAt" json:"expires_at"`
}
