package services

import (
	"context"

	"github.com/esportshub/backend/internal/server/models"
	"github.com/esportshub/backend/internal/server/repositories/content"
)

// newsLimit caps the news feed, matching the site's front page.
const newsLimit = 10

// ContentService lists site content. Empty tables fall back to built-in
// fixtures so a fresh deployment still renders a populated site.
type ContentService struct {
	repo content.Repository
}

func NewContentService(repo content.Repository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) News(ctx context.Context) ([]models.NewsArticle, error) {
	news, err := s.repo.News(ctx, newsLimit)
	if err != nil {
		return nil, err
	}
	if len(news) == 0 {
		return defaultNews(), nil
	}
	return news, nil
}

func (s *ContentService) Tournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.repo.Tournaments(ctx)
	if err != nil {
		return nil, err
	}
	if len(tournaments) == 0 {
		return defaultTournaments(), nil
	}
	return tournaments, nil
}

func (s *ContentService) Teams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.repo.Teams(ctx)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return defaultTeams(), nil
	}
	return teams, nil
}

func (s *ContentService) Players(ctx context.Context) ([]models.Player, error) {
	players, err := s.repo.Players(ctx)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return defaultPlayers(), nil
	}
	return players, nil
}

// Fallback fixtures shown until real content lands in the database.

func defaultNews() []models.NewsArticle {
	return []models.NewsArticle{
		{
			ID:       1,
			Title:    "Championship Finals This Weekend",
			Category: "Tournament",
			Content:  "The biggest eSports championship of the year is happening this weekend with a prize pool of $1M.",
			Date:     "2024-12-15",
			Author:   "Sarah Johnson",
			Image:    "assets/images/tournaments/tournament-poster.png",
		},
		{
			ID:       2,
			Title:    "New Rising Star in Competitive Gaming",
			Category: "Players",
			Content:  "Meet the 18-year-old prodigy who's taking the competitive scene by storm.",
			Date:     "2024-12-14",
			Author:   "Mike Rodriguez",
			Image:    "assets/images/players/player1.jpg",
		},
	}
}

func defaultTournaments() []models.Tournament {
	return []models.Tournament{
		{
			ID:       1,
			Name:     "World Championship 2024",
			Game:     "League of Legends",
			Date:     "2024-12-20",
			Prize:    1500000,
			Status:   "upcoming",
			Location: "Los Angeles, CA",
		},
		{
			ID:       2,
			Name:     "Dota 2 Major Championship",
			Game:     "Dota 2",
			Date:     "2025-02-10",
			Prize:    1200000,
			Status:   "upcoming",
			Location: "Stockholm, Sweden",
		},
	}
}

func defaultTeams() []models.Team {
	return []models.Team{
		{
			ID:     1,
			Name:   "Team Thunder",
			Game:   "League of Legends",
			Region: "Europe",
			Tier:   "Tier 1",
			Wins:   45,
			Losses: 12,
		},
	}
}

func defaultPlayers() []models.Player {
	return []models.Player{
		{
			ID:      1,
			Name:    "Alex Lightning Chen",
			TeamID:  1,
			Game:    "League of Legends",
			Rank:    1,
			KDA:     8.2,
			WinRate: 78,
		},
	}
}
