package matchup

import "context"

type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Matchup, error)
	ListByLeagueWeek(ctx context.Context, leagueID string, week int) ([]Matchup, error)
}
