package content

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/esportshub/backend/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestNews_OrderedAndLimited(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*title,\s*category,\s*content,\s*date,\s*author,\s*image\s+FROM\s+news\s+ORDER\s+BY\s+date\s+DESC\s+LIMIT\s+\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "title", "category", "content", "date", "author", "image"}).
		AddRow(int64(1), "Championship Finals This Weekend", "Tournament", "Big final.",
			time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), "Sarah Johnson", "assets/images/tournaments/tournament-poster.png").
		AddRow(int64(2), "New Rising Star", "Players", "Prodigy.",
			time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC), nil, nil)
	mock.ExpectQuery(q).WithArgs(10).WillReturnRows(rows)

	news, err := repo.News(context.Background(), 10)
	if err != nil {
		t.Fatalf("News error: %v", err)
	}
	if len(news) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(news))
	}
	if news[0].Date != "2024-12-15" {
		t.Fatalf("unexpected date format: %q", news[0].Date)
	}
	if news[1].Author != "" || news[1].Image != "" {
		t.Fatalf("NULL author/image must map to empty strings: %+v", news[1])
	}
}

func TestNews_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*title,\s*category`

	mock.ExpectQuery(q).WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "content", "date", "author", "image"}))

	news, err := repo.News(context.Background(), 10)
	if err != nil {
		t.Fatalf("News error: %v", err)
	}
	if len(news) != 0 {
		t.Fatalf("expected no rows, got %d", len(news))
	}
}

func TestTournaments_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*game,\s*date`

	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

	_, err := repo.Tournaments(context.Background())
	if !errors.Is(err, common.ErrStorage) {
		t.Fatalf("want common.ErrStorage, got %v", err)
	}
}

func TestTeams_Scan(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*game,\s*region,\s*tier,\s*wins,\s*losses\s+FROM\s+teams\s+ORDER\s+BY\s+wins\s+DESC\s*$`

	rows := sqlmock.NewRows([]string{"id", "name", "game", "region", "tier", "wins", "losses"}).
		AddRow(int64(1), "Team Thunder", "League of Legends", "Europe", "Tier 1", 45, 12)
	mock.ExpectQuery(q).WillReturnRows(rows)

	teams, err := repo.Teams(context.Background())
	if err != nil {
		t.Fatalf("Teams error: %v", err)
	}
	if len(teams) != 1 || teams[0].Wins != 45 {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}

func TestPlayers_NullableColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*team_id,\s*game,\s*rank,\s*kda,\s*win_rate\s+FROM\s+players\s+ORDER\s+BY\s+rank\s+ASC\s*$`

	rows := sqlmock.NewRows([]string{"id", "name", "team_id", "game", "rank", "kda", "win_rate"}).
		AddRow(int64(1), "Alex Lightning Chen", int64(1), "League of Legends", 1, 8.2, 78.0).
		AddRow(int64(2), "Free Agent", nil, "Dota 2", nil, nil, nil)
	mock.ExpectQuery(q).WillReturnRows(rows)

	players, err := repo.Players(context.Background())
	if err != nil {
		t.Fatalf("Players error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[1].TeamID != 0 || players[1].Rank != 0 {
		t.Fatalf("NULL columns must map to zero values: %+v", players[1])
	}
}
