// Package forms persists submissions from the site's public forms:
// contact messages, newsletter signups, and tournament registrations.
package forms

import (
	"context"

	"github.com/esportshub/backend/internal/server/models"
)

type Repository interface {
	// SaveContactMessage inserts a contact form submission.
	SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error

	// SubscribeNewsletter records an email address. Repeat subscriptions
	// are a no-op, not an error.
	SubscribeNewsletter(ctx context.Context, email string) error

	// SaveTournamentRegistration inserts a tournament signup.
	SaveTournamentRegistration(ctx context.Context, reg *models.TournamentRegistration) error
}
