package scoring

import "context"

// Repository persists weekly scores. Upsert replaces any existing row with
// the same (league, user, stock, week) key so a scoring run is idempotent.
type Repository interface {
	Upsert(ctx context.Context, score WeeklyScore) (WeeklyScore, error)
	ListByLeagueWeek(ctx context.Context, leagueID string, week int) ([]WeeklyScore, error)
	ListByLeague(ctx context.Context, leagueID string) ([]WeeklyScore, error)
	ListByUser(ctx context.Context, leagueID, userID string) ([]WeeklyScore, error)
}
