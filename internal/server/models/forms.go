package models

// ContactMessage is a row of the contact_messages table.
type ContactMessage struct {
	ID      int64
	Name    string
	Email   string
	Subject string
	Message string
}

// TournamentRegistration is a row of the tournament_registrations table.
// Info is optional free-form text.
type TournamentRegistration struct {
	ID         int64
	TeamName   string
	Captain    string
	Email      string
	Experience string
	Info       string
}
