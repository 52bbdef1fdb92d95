package usecase

import (
	"context"
	"fmt"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	"github.com/tickerdraft/tickerdraft/internal/domain/standings"
	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

// DashboardService assembles the caller's per-league summary. Rank and
// totals come from the same standings fold the league table uses.
type DashboardService struct {
	leagueRepo league.Repository
	rosterRepo roster.Repository
	stockRepo  stock.Repository
	standings  *StandingsService
}

func NewDashboardService(
	leagueRepo league.Repository,
	rosterRepo roster.Repository,
	stockRepo stock.Repository,
	standingsSvc *StandingsService,
) *DashboardService {
	return &DashboardService{
		leagueRepo: leagueRepo,
		rosterRepo: rosterRepo,
		stockRepo:  stockRepo,
		standings:  standingsSvc,
	}
}

type DashboardLeague struct {
	League   league.League
	Team     league.Membership
	Standing standings.Row
	Roster   []DashboardHolding
}

type DashboardHolding struct {
	Slot  roster.Slot
	Stock stock.Stock
}

type Dashboard struct {
	UserID  string
	Leagues []DashboardLeague
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetDashboard")
	defer span.End()

	if userID == "" {
		return Dashboard{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	memberships, err := s.leagueRepo.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list memberships: %w", err)
	}

	out := Dashboard{
		UserID:  userID,
		Leagues: make([]DashboardLeague, 0, len(memberships)),
	}
	for _, membership := range memberships {
		entry, err := s.buildLeagueEntry(ctx, membership)
		if err != nil {
			return Dashboard{}, err
		}
		out.Leagues = append(out.Leagues, entry)
	}

	return out, nil
}

func (s *DashboardService) buildLeagueEntry(ctx context.Context, membership league.Membership) (DashboardLeague, error) {
	l, found, err := s.leagueRepo.GetByID(ctx, membership.LeagueID)
	if err != nil {
		return DashboardLeague{}, fmt.Errorf("load league %s: %w", membership.LeagueID, err)
	}
	if !found {
		return DashboardLeague{}, fmt.Errorf("%w: league %s", ErrNotFound, membership.LeagueID)
	}

	table, err := s.standings.GetLeagueStandings(ctx, membership.LeagueID)
	if err != nil {
		return DashboardLeague{}, err
	}
	var row standings.Row
	for _, r := range table {
		if r.UserID == membership.UserID {
			row = r
			break
		}
	}

	holdings, err := s.loadHoldings(ctx, membership)
	if err != nil {
		return DashboardLeague{}, err
	}

	return DashboardLeague{
		League:   l,
		Team:     membership,
		Standing: row,
		Roster:   holdings,
	}, nil
}

func (s *DashboardService) loadHoldings(ctx context.Context, membership league.Membership) ([]DashboardHolding, error) {
	slots, err := s.rosterRepo.ListByUser(ctx, membership.LeagueID, membership.UserID)
	if err != nil {
		return nil, fmt.Errorf("list roster slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.StockID)
	}
	stocks, err := s.stockRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load roster stocks: %w", err)
	}
	byID := make(map[string]stock.Stock, len(stocks))
	for _, st := range stocks {
		byID[st.ID] = st
	}

	holdings := make([]DashboardHolding, 0, len(slots))
	for _, slot := range slots {
		holdings = append(holdings, DashboardHolding{
			Slot:  slot,
			Stock: byID[slot.StockID],
		})
	}

	return holdings, nil
}
