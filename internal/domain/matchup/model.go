package matchup

import "fmt"

// Matchup is one head-to-head pairing for a league week. WinnerUserID and
// the score fields are only meaningful once IsComplete is set; standings
// ignore incomplete matchups entirely.
type Matchup struct {
	ID           string
	LeagueID     string
	Week         int
	TeamAUserID  string
	TeamBUserID  string
	ScoreA       float64
	ScoreB       float64
	WinnerUserID string
	IsComplete   bool
}

func (m Matchup) Validate() error {
	if m.LeagueID == "" {
		return fmt.Errorf("matchup league id is required")
	}
	if m.Week <= 0 {
		return fmt.Errorf("matchup week must be positive, got %d", m.Week)
	}
	if m.TeamAUserID == "" || m.TeamBUserID == "" {
		return fmt.Errorf("matchup requires both team user ids")
	}
	if m.TeamAUserID == m.TeamBUserID {
		return fmt.Errorf("matchup cannot pair a user against themselves")
	}

	return nil
}
