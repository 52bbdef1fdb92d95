package memory

import (
	"context"
	"sync"

	"github.com/tickerdraft/tickerdraft/internal/domain/matchup"
)

type MatchupRepository struct {
	mu               sync.RWMutex
	matchupsByLeague map[string][]matchup.Matchup
}

func NewMatchupRepository(matchups []matchup.Matchup) *MatchupRepository {
	matchupsByLeague := make(map[string][]matchup.Matchup)
	for _, item := range matchups {
		matchupsByLeague[item.LeagueID] = append(matchupsByLeague[item.LeagueID], item)
	}

	return &MatchupRepository{matchupsByLeague: matchupsByLeague}
}

func (r *MatchupRepository) ListByLeague(_ context.Context, leagueID string) ([]matchup.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.matchupsByLeague[leagueID]
	out := make([]matchup.Matchup, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *MatchupRepository) ListByLeagueWeek(_ context.Context, leagueID string, week int) ([]matchup.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchup.Matchup, 0, 2)
	for _, item := range r.matchupsByLeague[leagueID] {
		if item.Week == week {
			out = append(out, item)
		}
	}

	return out, nil
}
