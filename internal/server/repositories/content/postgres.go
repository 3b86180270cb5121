package content

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/esportshub/backend/internal/common"
	"github.com/esportshub/backend/internal/dbx"
	"github.com/esportshub/backend/internal/server/models"
)

// dateLayout is the wire format for date columns, matching the site's JSON.
const dateLayout = "2006-01-02"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) News(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	query :=
		`SELECT id, title, category, content, date, author, image FROM news
		 ORDER BY date DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var news []models.NewsArticle
	for rows.Next() {
		var a models.NewsArticle
		var date time.Time
		var author, image sql.NullString
		if err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Content, &date, &author, &image); err != nil {
			return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
		}
		a.Date = date.Format(dateLayout)
		a.Author = author.String
		a.Image = image.String
		news = append(news, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}

	return news, nil
}

func (r *PostgresRepository) Tournaments(ctx context.Context) ([]models.Tournament, error) {
	query :=
		`SELECT id, name, game, date, prize, status, location FROM tournaments
		 ORDER BY date ASC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var tournaments []models.Tournament
	for rows.Next() {
		var t models.Tournament
		var date time.Time
		var location sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &t.Game, &date, &t.Prize, &t.Status, &location); err != nil {
			return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
		}
		t.Date = date.Format(dateLayout)
		t.Location = location.String
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}

	return tournaments, nil
}

func (r *PostgresRepository) Teams(ctx context.Context) ([]models.Team, error) {
	query :=
		`SELECT id, name, game, region, tier, wins, losses FROM teams
		 ORDER BY wins DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var tm models.Team
		if err := rows.Scan(&tm.ID, &tm.Name, &tm.Game, &tm.Region, &tm.Tier, &tm.Wins, &tm.Losses); err != nil {
			return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
		}
		teams = append(teams, tm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}

	return teams, nil
}

func (r *PostgresRepository) Players(ctx context.Context) ([]models.Player, error) {
	query :=
		`SELECT id, name, team_id, game, rank, kda, win_rate FROM players
		 ORDER BY rank ASC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		var teamID sql.NullInt64
		var rank sql.NullInt64
		var kda, winRate sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Name, &teamID, &p.Game, &rank, &kda, &winRate); err != nil {
			return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
		}
		p.TeamID = teamID.Int64
		p.Rank = int(rank.Int64)
		p.KDA = kda.Float64
		p.WinRate = winRate.Float64
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w: %v", common.ErrStorage, err)
	}

	return players, nil
}
