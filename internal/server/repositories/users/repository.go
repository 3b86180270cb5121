// Package users owns persistence of the users table. It is the only
// component that reads or writes user rows; the email-uniqueness invariant
// is enforced by the table's unique index and surfaced to callers as
// common.ErrAlreadyExists.
package users

import (
	"context"

	"github.com/esportshub/backend/internal/server/models"
)

type Repository interface {
	// Create inserts the user and fills in ID and CreatedAt. A duplicate
	// email yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// TouchLastLogin sets last_login to the current time.
	TouchLastLogin(ctx context.Context, id int64) error
}
