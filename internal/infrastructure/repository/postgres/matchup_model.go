package postgres

import "database/sql"

type matchupTableModel struct {
	ID           string         `db:"id"`
	LeagueID     string         `db:"league_id"`
	Week         int            `db:"week"`
	TeamAUserID  string         `db:"team_a_user_id"`
	TeamBUserID  string         `db:"team_b_user_id"`
	ScoreA       float64        `db:"score_a"`
	ScoreB       float64        `db:"score_b"`
	WinnerUserID sql.NullString `db:"winner_user_id"`
	IsComplete   bool           `db:"is_complete"`
}
