package services

import (
	"context"
	"errors"
	"testing"

	"github.com/esportshub/backend/internal/common"
	"github.com/esportshub/backend/internal/server/models"
)

type fakeFormsRepo struct {
	contact       *models.ContactMessage
	subscriptions []string
	registration  *models.TournamentRegistration
	err           error
}

func (f *fakeFormsRepo) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.contact = msg
	return nil
}

func (f *fakeFormsRepo) SubscribeNewsletter(ctx context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.subscriptions = append(f.subscriptions, email)
	return nil
}

func (f *fakeFormsRepo) SaveTournamentRegistration(ctx context.Context, reg *models.TournamentRegistration) error {
	if f.err != nil {
		return f.err
	}
	f.registration = reg
	return nil
}

func TestSubmitContact(t *testing.T) {
	repo := &fakeFormsRepo{}
	svc := NewFormsService(repo)

	err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:    " Jane ",
		Email:   " jane@example.com ",
		Subject: "Hi",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("SubmitContact error: %v", err)
	}
	if repo.contact == nil || repo.contact.Name != "Jane" || repo.contact.Email != "jane@example.com" {
		t.Fatalf("unexpected saved message: %+v", repo.contact)
	}
}

func TestSubmitContact_MissingField(t *testing.T) {
	repo := &fakeFormsRepo{}
	svc := NewFormsService(repo)

	err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:  "Jane",
		Email: "jane@example.com",
		// no subject or message
	})
	var verr *common.ValidationError
	if !errors.As(err, &verr) || verr.Error() != "All fields are required" {
		t.Fatalf("want required-fields error, got %v", err)
	}
	if repo.contact != nil {
		t.Fatal("nothing may be saved on validation failure")
	}
}

func TestSubscribeNewsletter(t *testing.T) {
	repo := &fakeFormsRepo{}
	svc := NewFormsService(repo)

	if err := svc.SubscribeNewsletter(context.Background(), " Jane@Example.COM "); err != nil {
		t.Fatalf("SubscribeNewsletter error: %v", err)
	}
	if len(repo.subscriptions) != 1 || repo.subscriptions[0] != "jane@example.com" {
		t.Fatalf("unexpected subscriptions: %v", repo.subscriptions)
	}
}

func TestSubscribeNewsletter_BlankEmail(t *testing.T) {
	repo := &fakeFormsRepo{}
	svc := NewFormsService(repo)

	err := svc.SubscribeNewsletter(context.Background(), "   ")
	var verr *common.ValidationError
	if !errors.As(err, &verr) || verr.Error() != "Email is required" {
		t.Fatalf("want required-email error, got %v", err)
	}
	if len(repo.subscriptions) != 0 {
		t.Fatal("nothing may be saved on validation failure")
	}
}

func TestRegisterTournament(t *testing.T) {
	repo := &fakeFormsRepo{}
	svc := NewFormsService(repo)

	err := svc.RegisterTournament(context.Background(), TournamentRegisterRequest{
		TeamName:   "Night Owls",
		Captain:    "Jane Doe",
		Email:      "jane@example.com",
		Experience: "intermediate",
	})
	if err != nil {
		t.Fatalf("RegisterTournament error: %v", err)
	}
	if repo.registration == nil || repo.registration.TeamName != "Night Owls" || repo.registration.Info != "" {
		t.Fatalf("unexpected saved registration: %+v", repo.registration)
	}
}

func TestRegisterTournament_MissingRequiredField(t *testing.T) {
	repo := &fakeFormsRepo{}
	svc := NewFormsService(repo)

	err := svc.RegisterTournament(context.Background(), TournamentRegisterRequest{
		TeamName: "Night Owls",
		Email:    "jane@example.com",
		// optional Info set, required Captain and Experience not
		Info: "extra",
	})
	var verr *common.ValidationError
	if !errors.As(err, &verr) || verr.Error() != "All required fields must be filled" {
		t.Fatalf("want required-fields error, got %v", err)
	}
	if repo.registration != nil {
		t.Fatal("nothing may be saved on validation failure")
	}
}

func TestForms_StorageErrorPropagates(t *testing.T) {
	repo := &fakeFormsRepo{err: common.ErrStorage}
	svc := NewFormsService(repo)
	ctx := context.Background()

	if err := svc.SubmitContact(ctx, ContactRequest{Name: "a", Email: "b", Subject: "c", Message: "d"}); !errors.Is(err, common.ErrStorage) {
		t.Fatalf("SubmitContact: want common.ErrStorage, got %v", err)
	}
	if err := svc.SubscribeNewsletter(ctx, "jane@example.com"); !errors.Is(err, common.ErrStorage) {
		t.Fatalf("SubscribeNewsletter: want common.ErrStorage, got %v", err)
	}
	req := TournamentRegisterRequest{TeamName: "a", Captain: "b", Email: "c", Experience: "d"}
	if err := svc.RegisterTournament(ctx, req); !errors.Is(err, common.ErrStorage) {
		t.Fatalf("RegisterTournament: want common.ErrStorage, got %v", err)
	}
}
