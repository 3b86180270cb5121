// Package services contains server-side business logic. This file implements
// UserService: account registration and login over the users repository,
// plus session issuance on success.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/esportshub/backend/internal/common"
	"github.com/esportshub/backend/internal/server/models"
	"github.com/esportshub/backend/internal/server/repositories/users"
	"github.com/esportshub/backend/internal/server/sessions"
)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 8

// emailPattern accepts the usual local@domain.tld shape. It intentionally
// matches the client-side check shipped with the site so the two layers
// agree on what a well-formed address is.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserService handles registration and login:
// - Register: validate, hash, create the user, open a session
// - Login: verify credentials, touch last_login, open a session
//
// Validation always runs before any storage access. Password hashes never
// leave the service: callers receive models.PublicUser.
type UserService struct {
	repo       users.Repository
	store      sessions.Store
	sessionTTL time.Duration
}

// NewUserService constructs a UserService over the given repository and
// session store.
func NewUserService(repo users.Repository, store sessions.Store, sessionTTL time.Duration) *UserService {
	return &UserService{repo: repo, store: store, sessionTTL: sessionTTL}
}

// Register creates a new account and opens a session for it.
//
// Error returns: *common.ValidationError for malformed input,
// common.ErrAlreadyExists for a duplicate email (whether caught by the
// pre-check read or by the unique index during insert), storage errors
// otherwise.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.PublicUser, *models.Session, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if err := checkRequired([]requiredField{
		{"Name", name},
		{"Email", email},
		{"Password", req.Password},
		{"ConfirmPassword", req.ConfirmPassword},
	}); err != nil {
		return nil, nil, err
	}

	if !emailPattern.MatchString(email) {
		return nil, nil, common.NewValidationError("Invalid email format")
	}
	if len(req.Password) < minPasswordLen {
		return nil, nil, common.NewValidationError("Password must be at least 8 characters long")
	}
	if req.Password != req.ConfirmPassword {
		return nil, nil, common.NewValidationError("Passwords do not match")
	}

	// Pre-check for a friendlier conflict path. The unique index remains
	// the authoritative guard: a concurrent duplicate insert still comes
	// back as common.ErrAlreadyExists from Create.
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, nil, common.ErrAlreadyExists
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("password hash error: %w", common.ErrInternal)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	session, err := sessions.Issue(ctx, s.store, user, s.sessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("session error: %w: %v", common.ErrInternal, err)
	}

	return user.Public(), session, nil
}

// Login verifies the credentials and opens a session.
//
// An unknown email and a wrong password both return common.ErrUnauthorized,
// so callers cannot probe which addresses are registered.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*models.PublicUser, *models.Session, error) {
	email := normalizeEmail(req.Email)

	if email == "" || req.Password == "" {
		return nil, nil, common.NewValidationError("Email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, nil, common.NewValidationError("Invalid email format")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrUnauthorized
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, common.ErrUnauthorized
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, nil, err
	}

	session, err := sessions.Issue(ctx, s.store, user, s.sessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("session error: %w: %v", common.ErrInternal, err)
	}

	return user.Public(), session, nil
}

// CreateAdmin creates an account with the admin role. It applies the same
// field rules as Register but opens no session; cmd/admin is the only caller.
func (s *UserService) CreateAdmin(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if err := checkRequired([]requiredField{
		{"Name", name},
		{"Email", email},
		{"Password", password},
	}); err != nil {
		return nil, err
	}

	if !emailPattern.MatchString(email) {
		return nil, common.NewValidationError("Invalid email format")
	}
	if len(password) < minPasswordLen {
		return nil, common.NewValidationError("Password must be at least 8 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hash error: %w", common.ErrInternal)
	}

	user, err := s.repo.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

type requiredField struct {
	label string
	value string
}

// checkRequired reports the first blank field, in form order.
func checkRequired(fields []requiredField) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return common.NewValidationError(f.label + " is required")
		}
	}
	return nil
}

// normalizeEmail trims surrounding whitespace and lowercases the address.
// Uniqueness and lookups are therefore case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
