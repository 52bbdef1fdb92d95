package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
)

func rosterFixtureLeague() *stubLeagueRepository {
	return &stubLeagueRepository{
		byID: map[string]league.League{
			"lg-1": {ID: "lg-1", Name: "Main Street Money"},
		},
		memberships: []league.Membership{
			{ID: "m-1", LeagueID: "lg-1", UserID: "user-a", TeamName: "Bull Run"},
			{ID: "m-2", LeagueID: "lg-1", UserID: "user-b", TeamName: "Bear Cave"},
		},
	}
}

func TestRosterService_AddStock(t *testing.T) {
	t.Parallel()

	rosterRepo := &stubRosterRepository{}
	service := NewRosterService(rosterFixtureLeague(), rosterRepo)

	slot, err := service.AddStock(context.Background(), "lg-1", "user-a", "stk-aapl")
	if err != nil {
		t.Fatalf("AddStock error: %v", err)
	}
	if slot.ID == "" || slot.StockID != "stk-aapl" {
		t.Fatalf("unexpected slot: %+v", slot)
	}
}

func TestRosterService_AddStock_DuplicateHolderIsConflict(t *testing.T) {
	t.Parallel()

	rosterRepo := &stubRosterRepository{
		slots: []roster.Slot{
			{ID: "slot-1", LeagueID: "lg-1", UserID: "user-a", StockID: "stk-aapl"},
		},
	}
	service := NewRosterService(rosterFixtureLeague(), rosterRepo)

	_, err := service.AddStock(context.Background(), "lg-1", "user-b", "stk-aapl")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestRosterService_AddStock_NonMemberRejected(t *testing.T) {
	t.Parallel()

	service := NewRosterService(rosterFixtureLeague(), &stubRosterRepository{})

	_, err := service.AddStock(context.Background(), "lg-1", "user-z", "stk-aapl")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRosterService_DropStock(t *testing.T) {
	t.Parallel()

	rosterRepo := &stubRosterRepository{
		slots: []roster.Slot{
			{ID: "slot-1", LeagueID: "lg-1", UserID: "user-a", StockID: "stk-aapl"},
		},
	}
	service := NewRosterService(rosterFixtureLeague(), rosterRepo)

	ctx := context.Background()
	if err := service.DropStock(ctx, "lg-1", "user-a", "stk-aapl"); err != nil {
		t.Fatalf("DropStock error: %v", err)
	}

	slots, err := service.GetRoster(ctx, "lg-1", "user-a")
	if err != nil {
		t.Fatalf("GetRoster error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty roster, got %+v", slots)
	}
}

func TestRosterService_DropStock_MissingSlot(t *testing.T) {
	t.Parallel()

	service := NewRosterService(rosterFixtureLeague(), &stubRosterRepository{})

	err := service.DropStock(context.Background(), "lg-1", "user-a", "stk-aapl")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
