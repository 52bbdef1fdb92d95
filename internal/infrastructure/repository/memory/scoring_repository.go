package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tickerdraft/tickerdraft/internal/domain/scoring"
	"github.com/tickerdraft/tickerdraft/internal/platform/id"
)

type ScoringRepository struct {
	mu    sync.RWMutex
	items map[string]scoring.WeeklyScore
	ids   id.Generator
}

func NewScoringRepository(ids id.Generator) *ScoringRepository {
	return &ScoringRepository{
		items: make(map[string]scoring.WeeklyScore),
		ids:   ids,
	}
}

func (r *ScoringRepository) Upsert(_ context.Context, score scoring.WeeklyScore) (scoring.WeeklyScore, error) {
	if err := score.Validate(); err != nil {
		return scoring.WeeklyScore{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := weeklyScoreKey(score)
	if existing, ok := r.items[key]; ok {
		score.ID = existing.ID
	} else {
		newID, err := r.ids.NewID()
		if err != nil {
			return scoring.WeeklyScore{}, fmt.Errorf("generate weekly score id: %w", err)
		}
		score.ID = newID
	}

	r.items[key] = score
	return score, nil
}

func (r *ScoringRepository) ListByLeagueWeek(_ context.Context, leagueID string, week int) ([]scoring.WeeklyScore, error) {
	return r.filterScores(func(s scoring.WeeklyScore) bool {
		return s.LeagueID == leagueID && s.Week == week
	}), nil
}

func (r *ScoringRepository) ListByLeague(_ context.Context, leagueID string) ([]scoring.WeeklyScore, error) {
	return r.filterScores(func(s scoring.WeeklyScore) bool { return s.LeagueID == leagueID }), nil
}

func (r *ScoringRepository) ListByUser(_ context.Context, leagueID, userID string) ([]scoring.WeeklyScore, error) {
	return r.filterScores(func(s scoring.WeeklyScore) bool {
		return s.LeagueID == leagueID && s.UserID == userID
	}), nil
}

func (r *ScoringRepository) filterScores(keep func(scoring.WeeklyScore) bool) []scoring.WeeklyScore {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.WeeklyScore, 0, len(r.items))
	for _, s := range r.items {
		if keep(s) {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].StockID < out[j].StockID
	})
	return out
}

func weeklyScoreKey(s scoring.WeeklyScore) string {
	return fmt.Sprintf("%s|%s|%s|%d", s.LeagueID, s.UserID, s.StockID, s.Week)
}
