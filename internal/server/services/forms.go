package services

import (
	"context"
	"strings"

	"github.com/esportshub/backend/internal/common"
	"github.com/esportshub/backend/internal/server/models"
	"github.com/esportshub/backend/internal/server/repositories/forms"
)

// ContactRequest carries the contact form fields.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// TournamentRegisterRequest carries the tournament signup fields.
// Info is optional.
type TournamentRegisterRequest struct {
	TeamName   string `json:"teamName"`
	Captain    string `json:"captain"`
	Email      string `json:"email"`
	Experience string `json:"experience"`
	Info       string `json:"info"`
}

// FormsService handles the site's public form submissions.
type FormsService struct {
	repo forms.Repository
}

func NewFormsService(repo forms.Repository) *FormsService {
	return &FormsService{repo: repo}
}

func (s *FormsService) SubmitContact(ctx context.Context, req ContactRequest) error {
	if anyBlank(req.Name, req.Email, req.Subject, req.Message) {
		return common.NewValidationError("All fields are required")
	}

	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	return s.repo.SaveContactMessage(ctx, msg)
}

func (s *FormsService) SubscribeNewsletter(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return common.NewValidationError("Email is required")
	}
	return s.repo.SubscribeNewsletter(ctx, email)
}

func (s *FormsService) RegisterTournament(ctx context.Context, req TournamentRegisterRequest) error {
	if anyBlank(req.TeamName, req.Captain, req.Email, req.Experience) {
		return common.NewValidationError("All required fields must be filled")
	}

	reg := &models.TournamentRegistration{
		TeamName:   strings.TrimSpace(req.TeamName),
		Captain:    strings.TrimSpace(req.Captain),
		Email:      strings.TrimSpace(req.Email),
		Experience: strings.TrimSpace(req.Experience),
		Info:       strings.TrimSpace(req.Info),
	}
	return s.repo.SaveTournamentRegistration(ctx, reg)
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
