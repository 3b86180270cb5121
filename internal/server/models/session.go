package models

import "time"

// Session maps an opaque server-issued token to the authenticated identity.
// It is ephemeral state kept in a sessions.Store, never in the database.
type Session struct {
	Token   string    `json:"-"`
	UserID  int64     `json:"user_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	Expires time.Time `json:"expires"`
}
