package usecase

import (
	"context"
	"fmt"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/matchup"
)

// LeagueService serves league reads: details, membership, and the weekly
// matchup schedule.
type LeagueService struct {
	leagueRepo  league.Repository
	matchupRepo matchup.Repository
}

func NewLeagueService(leagueRepo league.Repository, matchupRepo matchup.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo:  leagueRepo,
		matchupRepo: matchupRepo,
	}
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, found, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("load league: %w", err)
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	return l, nil
}

func (s *LeagueService) GetLeagueByInviteCode(ctx context.Context, inviteCode string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeagueByInviteCode")
	defer span.End()

	if inviteCode == "" {
		return league.League{}, fmt.Errorf("%w: invite code is required", ErrInvalidInput)
	}

	l, found, err := s.leagueRepo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return league.League{}, fmt.Errorf("load league by invite code: %w", err)
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: no league for invite code", ErrNotFound)
	}

	return l, nil
}

func (s *LeagueService) ListMembers(ctx context.Context, leagueID string) ([]league.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListMembers")
	defer span.End()

	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	members, err := s.leagueRepo.ListMemberships(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	return members, nil
}

// ListMatchups returns the schedule for the given week. Week zero means the
// league's current week; a league still drafting (current week zero) returns
// the full schedule.
func (s *LeagueService) ListMatchups(ctx context.Context, leagueID string, week int) ([]matchup.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListMatchups")
	defer span.End()

	if week < 0 {
		return nil, fmt.Errorf("%w: week cannot be negative", ErrInvalidInput)
	}

	l, err := s.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if week == 0 {
		week = l.CurrentWeek
	}

	if week == 0 {
		matchups, err := s.matchupRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("list matchups: %w", err)
		}
		return matchups, nil
	}

	matchups, err := s.matchupRepo.ListByLeagueWeek(ctx, leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("list matchups for week %d: %w", week, err)
	}

	return matchups, nil
}
