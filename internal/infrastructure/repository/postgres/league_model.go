package postgres

import "time"

type leagueTableModel struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	InviteCode     string    `db:"invite_code"`
	Status         string    `db:"status"`
	CurrentWeek    int       `db:"current_week"`
	CommissionerID string    `db:"commissioner_id"`
	IsPublic       bool      `db:"is_public"`
	CreatedAt      time.Time `db:"created_at"`
}

type membershipTableModel struct {
	ID       string    `db:"id"`
	LeagueID string    `db:"league_id"`
	UserID   string    `db:"user_id"`
	TeamName string    `db:"team_name"`
	JoinedAt time.Time `db:"joined_at"`
}
