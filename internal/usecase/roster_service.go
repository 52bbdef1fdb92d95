package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
)

// RosterService handles draft picks and waiver moves. Two managers racing
// for the same free agent is expected contention, so the duplicate-holder
// case maps to ErrConflict rather than a generic failure.
type RosterService struct {
	leagueRepo league.Repository
	rosterRepo roster.Repository
}

func NewRosterService(leagueRepo league.Repository, rosterRepo roster.Repository) *RosterService {
	return &RosterService{
		leagueRepo: leagueRepo,
		rosterRepo: rosterRepo,
	}
}

func (s *RosterService) GetRoster(ctx context.Context, leagueID, userID string) ([]roster.Slot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetRoster")
	defer span.End()

	if err := s.requireMembership(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	slots, err := s.rosterRepo.ListByUser(ctx, leagueID, userID)
	if err != nil {
		return nil, fmt.Errorf("list roster slots: %w", err)
	}

	return slots, nil
}

func (s *RosterService) AddStock(ctx context.Context, leagueID, userID, stockID string) (roster.Slot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AddStock")
	defer span.End()

	if stockID == "" {
		return roster.Slot{}, fmt.Errorf("%w: stock id is required", ErrInvalidInput)
	}
	if err := s.requireMembership(ctx, leagueID, userID); err != nil {
		return roster.Slot{}, err
	}

	slot, err := s.rosterRepo.Add(ctx, roster.Slot{
		LeagueID: leagueID,
		UserID:   userID,
		StockID:  stockID,
	})
	if err != nil {
		if errors.Is(err, roster.ErrStockAlreadyOwned) {
			return roster.Slot{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return roster.Slot{}, fmt.Errorf("add roster slot: %w", err)
	}

	return slot, nil
}

func (s *RosterService) DropStock(ctx context.Context, leagueID, userID, stockID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.DropStock")
	defer span.End()

	if stockID == "" {
		return fmt.Errorf("%w: stock id is required", ErrInvalidInput)
	}
	if err := s.requireMembership(ctx, leagueID, userID); err != nil {
		return err
	}

	removed, err := s.rosterRepo.Remove(ctx, leagueID, userID, stockID)
	if err != nil {
		return fmt.Errorf("remove roster slot: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: stock %s is not on the roster", ErrNotFound, stockID)
	}

	return nil
}

func (s *RosterService) requireMembership(ctx context.Context, leagueID, userID string) error {
	if leagueID == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	_, found, err := s.leagueRepo.GetMembership(ctx, leagueID, userID)
	if err != nil {
		return fmt.Errorf("load membership: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: user is not a member of league %s", ErrUnauthorized, leagueID)
	}

	return nil
}
