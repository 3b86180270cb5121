// Package models contains the persisted row types shared by repositories
// and services.
package models

import "time"

// Role values assignable to a user. Registration always produces RoleUser;
// RoleAdmin accounts are created out of band (cmd/admin).
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a row of the users table. PasswordHash must never be serialized
// into a response; handlers only ever see PublicUser.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// PublicUser is the sanitized view of a User returned to clients.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public returns the sanitized view of u.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
