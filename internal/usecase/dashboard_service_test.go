package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	"github.com/tickerdraft/tickerdraft/internal/domain/scoring"
	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepository{
		byID: map[string]league.League{
			"lg-1": {ID: "lg-1", Name: "Main Street Money", CurrentWeek: 2},
		},
		memberships: []league.Membership{
			{ID: "m-1", LeagueID: "lg-1", UserID: "user-a", TeamName: "Bull Run"},
			{ID: "m-2", LeagueID: "lg-1", UserID: "user-b", TeamName: "Bear Cave"},
		},
	}
	rosterRepo := &stubRosterRepository{
		slots: []roster.Slot{
			{ID: "slot-1", LeagueID: "lg-1", UserID: "user-a", StockID: "stk-aapl"},
		},
	}
	stockRepo := &stubStockRepository{
		stocks: []stock.Stock{
			{ID: "stk-aapl", Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology", CapClass: stock.CapLarge},
		},
	}
	scoringRepo := &stubScoringRepository{}
	ctx := context.Background()
	for _, sc := range []scoring.WeeklyScore{
		{LeagueID: "lg-1", UserID: "user-a", StockID: "stk-aapl", Week: 1, Points: 25},
		{LeagueID: "lg-1", UserID: "user-b", StockID: "stk-tsla", Week: 1, Points: 40},
	} {
		if _, err := scoringRepo.Upsert(ctx, sc); err != nil {
			t.Fatalf("seed score: %v", err)
		}
	}

	standingsSvc := NewStandingsService(leagueRepo, scoringRepo, &stubMatchupRepository{})
	service := NewDashboardService(leagueRepo, rosterRepo, stockRepo, standingsSvc)

	got, err := service.GetDashboard(ctx, "user-a")
	if err != nil {
		t.Fatalf("GetDashboard error: %v", err)
	}
	if len(got.Leagues) != 1 {
		t.Fatalf("expected 1 league entry, got %d", len(got.Leagues))
	}

	entry := got.Leagues[0]
	if entry.League.ID != "lg-1" || entry.Team.TeamName != "Bull Run" {
		t.Fatalf("unexpected league entry: %+v", entry)
	}
	if entry.Standing.Rank != 2 || entry.Standing.TotalPoints != 25 {
		t.Fatalf("unexpected standing: %+v", entry.Standing)
	}
	if len(entry.Roster) != 1 || entry.Roster[0].Stock.Ticker != "AAPL" {
		t.Fatalf("unexpected roster: %+v", entry.Roster)
	}
}

func TestDashboardService_GetDashboard_NoMemberships(t *testing.T) {
	t.Parallel()

	service := NewDashboardService(&stubLeagueRepository{}, &stubRosterRepository{}, &stubStockRepository{}, NewStandingsService(&stubLeagueRepository{}, &stubScoringRepository{}, &stubMatchupRepository{}))

	got, err := service.GetDashboard(context.Background(), "user-z")
	if err != nil {
		t.Fatalf("GetDashboard error: %v", err)
	}
	if len(got.Leagues) != 0 {
		t.Fatalf("expected empty dashboard, got %+v", got)
	}
}

func TestDashboardService_GetDashboard_RequiresUser(t *testing.T) {
	t.Parallel()

	service := NewDashboardService(&stubLeagueRepository{}, &stubRosterRepository{}, &stubStockRepository{}, nil)

	if _, err := service.GetDashboard(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
