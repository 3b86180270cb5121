// Package content provides read access to the site content tables
// (news, tournaments, teams, players). The tables are written out of band;
// this service only lists them.
package content

import (
	"context"

	"github.com/esportshub/backend/internal/server/models"
)

type Repository interface {
	// News returns the latest articles, newest first, capped at limit.
	News(ctx context.Context, limit int) ([]models.NewsArticle, error)

	// Tournaments returns all tournaments ordered by date ascending.
	Tournaments(ctx context.Context) ([]models.Tournament, error)

	// Teams returns all teams ordered by wins descending.
	Teams(ctx context.Context) ([]models.Team, error)

	// Players returns all players ordered by rank ascending.
	Players(ctx context.Context) ([]models.Player, error)
}
