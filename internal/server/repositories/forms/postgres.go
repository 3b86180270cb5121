package forms

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/esportshub/backend/internal/common"
	"github.com/esportshub/backend/internal/dbx"
	"github.com/esportshub/backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	query :=
		`INSERT INTO contact_messages (name, email, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	if err := r.db.QueryRowContext(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message).Scan(&msg.ID); err != nil {
		return fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}

	return nil
}

func (r *PostgresRepository) SubscribeNewsletter(ctx context.Context, email string) error {
	// Repeat subscriptions are absorbed by the unique index.
	query :=
		`INSERT INTO newsletter_subscribers (email)
		 VALUES ($1)
		 ON CONFLICT (email) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}

	return nil
}

func (r *PostgresRepository) SaveTournamentRegistration(ctx context.Context, reg *models.TournamentRegistration) error {
	query :=
		`INSERT INTO tournament_registrations (team_name, captain, email, experience, additional_info)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	info := sql.NullString{String: reg.Info, Valid: reg.Info != ""}
	if err := r.db.QueryRowContext(ctx, query,
		reg.TeamName, reg.Captain, reg.Email, reg.Experience, info).Scan(&reg.ID); err != nil {
		return fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}

	return nil
}
