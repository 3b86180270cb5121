// Package sessions implements issuance and storage of server-side sessions.
// A session is an opaque random token mapped to the authenticated identity;
// the token travels to the client (as a cookie in the reference deployment)
// and everything else stays server-side in a Store.
package sessions

import (
	"context"
	"time"

	"github.com/esportshub/backend/internal/server/models"
	"github.com/esportshub/backend/internal/shared"
)

// tokenBytes is the number of random bytes behind a session token
// (the hex token string is twice as long).
const tokenBytes = 32

// Store is the pluggable session backend. MemoryStore serves tests and
// single-process deployments; RedisStore serves production.
type Store interface {
	// Save persists the session under its token until it expires.
	Save(ctx context.Context, session *models.Session) error

	// Get returns the session for token, or common.ErrNotFound when the
	// token is unknown or expired.
	Get(ctx context.Context, token string) (*models.Session, error)

	// Delete removes the session for token. Unknown tokens are a no-op.
	Delete(ctx context.Context, token string) error
}

// Issue creates a session for the user with a fresh random token and saves
// it in the store. The returned session carries the token to hand to the
// caller.
func Issue(ctx context.Context, store Store, user *models.User, ttl time.Duration) (*models.Session, error) {
	token, err := shared.MakeRandHexString(tokenBytes)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		Token:   token,
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
		Expires: time.Now().Add(ttl),
	}

	if err := store.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
