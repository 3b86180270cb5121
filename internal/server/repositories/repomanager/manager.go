package repomanager

import (
	"context"
	"database/sql"

	"github.com/esportshub/backend/internal/dbx"
	"github.com/esportshub/backend/internal/server/repositories/content"
	"github.com/esportshub/backend/internal/server/repositories/forms"
	"github.com/esportshub/backend/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Content(db dbx.DBTX) content.Repository
	Forms(db dbx.DBTX) forms.Repository
}
