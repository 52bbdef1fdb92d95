package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/matchup"
	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	"github.com/tickerdraft/tickerdraft/internal/domain/scoring"
	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

type stubStockRepository struct {
	stocks []stock.Stock
	err    error
}

func (s *stubStockRepository) List(_ context.Context, filter stock.ListFilter) ([]stock.Stock, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]stock.Stock, 0, len(s.stocks))
	for _, st := range s.stocks {
		if filter.Sector != "" && st.Sector != filter.Sector {
			continue
		}
		if filter.CapClass != "" && st.CapClass != filter.CapClass {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *stubStockRepository) GetByID(_ context.Context, stockID string) (stock.Stock, bool, error) {
	if s.err != nil {
		return stock.Stock{}, false, s.err
	}
	for _, st := range s.stocks {
		if st.ID == stockID {
			return st, true, nil
		}
	}
	return stock.Stock{}, false, nil
}

func (s *stubStockRepository) ListByIDs(_ context.Context, stockIDs []string) ([]stock.Stock, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := make(map[string]struct{}, len(stockIDs))
	for _, id := range stockIDs {
		wanted[id] = struct{}{}
	}
	out := make([]stock.Stock, 0, len(stockIDs))
	for _, st := range s.stocks {
		if _, ok := wanted[st.ID]; ok {
			out = append(out, st)
		}
	}
	return out, nil
}

type stubLeagueRepository struct {
	byID        map[string]league.League
	byInvite    map[string]league.League
	memberships []league.Membership
	err         error
}

func (s *stubLeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	if s.err != nil {
		return league.League{}, false, s.err
	}
	l, ok := s.byID[leagueID]
	return l, ok, nil
}

func (s *stubLeagueRepository) GetByInviteCode(_ context.Context, inviteCode string) (league.League, bool, error) {
	if s.err != nil {
		return league.League{}, false, s.err
	}
	l, ok := s.byInvite[inviteCode]
	return l, ok, nil
}

func (s *stubLeagueRepository) ListMemberships(_ context.Context, leagueID string) ([]league.Membership, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]league.Membership, 0, len(s.memberships))
	for _, m := range s.memberships {
		if m.LeagueID == leagueID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubLeagueRepository) GetMembership(_ context.Context, leagueID, userID string) (league.Membership, bool, error) {
	if s.err != nil {
		return league.Membership{}, false, s.err
	}
	for _, m := range s.memberships {
		if m.LeagueID == leagueID && m.UserID == userID {
			return m, true, nil
		}
	}
	return league.Membership{}, false, nil
}

func (s *stubLeagueRepository) ListMembershipsByUser(_ context.Context, userID string) ([]league.Membership, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]league.Membership, 0, len(s.memberships))
	for _, m := range s.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubRosterRepository struct {
	mu     sync.Mutex
	slots  []roster.Slot
	addErr error
	err    error
	nextID int
}

func (s *stubRosterRepository) Add(_ context.Context, slot roster.Slot) (roster.Slot, error) {
	if s.addErr != nil {
		return roster.Slot{}, s.addErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.slots {
		if existing.LeagueID == slot.LeagueID && existing.StockID == slot.StockID {
			return roster.Slot{}, roster.ErrStockAlreadyOwned
		}
	}
	s.nextID++
	slot.ID = fmt.Sprintf("slot-%d", s.nextID)
	s.slots = append(s.slots, slot)
	return slot, nil
}

func (s *stubRosterRepository) Remove(_ context.Context, leagueID, userID, stockID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, slot := range s.slots {
		if slot.LeagueID == leagueID && slot.UserID == userID && slot.StockID == stockID {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRosterRepository) ListByLeague(_ context.Context, leagueID string) ([]roster.Slot, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]roster.Slot, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.LeagueID == leagueID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (s *stubRosterRepository) ListByUser(_ context.Context, leagueID, userID string) ([]roster.Slot, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]roster.Slot, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.LeagueID == leagueID && slot.UserID == userID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (s *stubRosterRepository) ListAllActive(_ context.Context) ([]roster.Slot, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]roster.Slot, len(s.slots))
	copy(out, s.slots)
	return out, nil
}

type stubScoringRepository struct {
	mu          sync.Mutex
	rows        map[string]scoring.WeeklyScore
	upsertErr   error
	upsertDelay time.Duration
	err         error
	upserts     int
}

func scoreKey(sc scoring.WeeklyScore) string {
	return fmt.Sprintf("%s|%s|%s|%d", sc.LeagueID, sc.UserID, sc.StockID, sc.Week)
}

func (s *stubScoringRepository) Upsert(_ context.Context, score scoring.WeeklyScore) (scoring.WeeklyScore, error) {
	if s.upsertDelay > 0 {
		time.Sleep(s.upsertDelay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	if s.upsertErr != nil {
		return scoring.WeeklyScore{}, s.upsertErr
	}
	if s.rows == nil {
		s.rows = make(map[string]scoring.WeeklyScore)
	}
	key := scoreKey(score)
	if existing, ok := s.rows[key]; ok {
		score.ID = existing.ID
	} else {
		score.ID = fmt.Sprintf("score-%d", len(s.rows)+1)
	}
	s.rows[key] = score
	return score, nil
}

func (s *stubScoringRepository) ListByLeagueWeek(_ context.Context, leagueID string, week int) ([]scoring.WeeklyScore, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scoring.WeeklyScore, 0, len(s.rows))
	for _, sc := range s.rows {
		if sc.LeagueID == leagueID && sc.Week == week {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *stubScoringRepository) ListByLeague(_ context.Context, leagueID string) ([]scoring.WeeklyScore, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scoring.WeeklyScore, 0, len(s.rows))
	for _, sc := range s.rows {
		if sc.LeagueID == leagueID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *stubScoringRepository) ListByUser(_ context.Context, leagueID, userID string) ([]scoring.WeeklyScore, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scoring.WeeklyScore, 0, len(s.rows))
	for _, sc := range s.rows {
		if sc.LeagueID == leagueID && sc.UserID == userID {
			out = append(out, sc)
		}
	}
	return out, nil
}

type stubMatchupRepository struct {
	matchups []matchup.Matchup
	err      error
}

func (s *stubMatchupRepository) ListByLeague(_ context.Context, leagueID string) ([]matchup.Matchup, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]matchup.Matchup, 0, len(s.matchups))
	for _, m := range s.matchups {
		if m.LeagueID == leagueID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMatchupRepository) ListByLeagueWeek(_ context.Context, leagueID string, week int) ([]matchup.Matchup, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]matchup.Matchup, 0, len(s.matchups))
	for _, m := range s.matchups {
		if m.LeagueID == leagueID && m.Week == week {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubPriceProvider struct {
	mu     sync.Mutex
	quotes map[string]Quote
	errs   map[string]error
	calls  map[string]int
}

func (s *stubPriceProvider) FetchPrevDay(_ context.Context, ticker string) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[ticker]++
	if err, ok := s.errs[ticker]; ok {
		return Quote{}, err
	}
	q, ok := s.quotes[ticker]
	if !ok {
		return Quote{}, fmt.Errorf("%w: no data for %s", ErrNotFound, ticker)
	}
	return q, nil
}

func (s *stubPriceProvider) callCount(ticker string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[ticker]
}
