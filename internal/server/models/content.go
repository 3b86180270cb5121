package models

// NewsArticle is a row of the news table.
type NewsArticle struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Image    string `json:"image"`
}

// Tournament is a row of the tournaments table.
type Tournament struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Game     string `json:"game"`
	Date     string `json:"date"`
	Prize    int64  `json:"prize"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// Team is a row of the teams table.
type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Game   string `json:"game"`
	Region string `json:"region"`
	Tier   string `json:"tier"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Player is a row of the players table.
type Player struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	TeamID  int64   `json:"team_id"`
	Game    string  `json:"game"`
	Rank    int     `json:"rank"`
	KDA     float64 `json:"kda"`
	WinRate float64 `json:"win_rate"`
}
