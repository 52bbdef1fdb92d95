package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	"github.com/tickerdraft/tickerdraft/internal/domain/matchup"
	"github.com/tickerdraft/tickerdraft/internal/domain/scoring"
	"github.com/tickerdraft/tickerdraft/internal/domain/standings"
)

// StandingsService folds weekly scores and matchup history into the ranked
// league table. The fold itself is pure; the dashboard reuses it instead of
// keeping a second copy of the math.
type StandingsService struct {
	leagueRepo  league.Repository
	scoringRepo scoring.Repository
	matchupRepo matchup.Repository
}

func NewStandingsService(
	leagueRepo league.Repository,
	scoringRepo scoring.Repository,
	matchupRepo matchup.Repository,
) *StandingsService {
	return &StandingsService{
		leagueRepo:  leagueRepo,
		scoringRepo: scoringRepo,
		matchupRepo: matchupRepo,
	}
}

func (s *StandingsService) GetLeagueStandings(ctx context.Context, leagueID string) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetLeagueStandings")
	defer span.End()

	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	_, found, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load league: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	members, err := s.leagueRepo.ListMemberships(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	scores, err := s.scoringRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list weekly scores: %w", err)
	}
	matchups, err := s.matchupRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}

	return computeStandings(members, scores, matchups), nil
}

// computeStandings builds the ranked table: totals to one decimal, wins and
// losses counted from completed matchups only, stable descending sort by
// total points with rank assigned 1-based afterwards. Ties keep membership
// order.
func computeStandings(members []league.Membership, scores []scoring.WeeklyScore, matchups []matchup.Matchup) []standings.Row {
	totals := make(map[string]float64, len(members))
	for _, sc := range scores {
		totals[sc.UserID] += sc.Points
	}

	wins := make(map[string]int, len(members))
	losses := make(map[string]int, len(members))
	for _, m := range matchups {
		if !m.IsComplete || m.WinnerUserID == "" {
			continue
		}
		// A winner that is not one of the two teams is bad data; count
		// nothing rather than a win without a matching loss.
		switch m.WinnerUserID {
		case m.TeamAUserID:
			wins[m.TeamAUserID]++
			losses[m.TeamBUserID]++
		case m.TeamBUserID:
			wins[m.TeamBUserID]++
			losses[m.TeamAUserID]++
		}
	}

	rows := make([]standings.Row, 0, len(members))
	for _, member := range members {
		rows = append(rows, standings.Row{
			UserID:      member.UserID,
			TeamName:    member.TeamName,
			TotalPoints: round1(totals[member.UserID]),
			Wins:        wins[member.UserID],
			Losses:      losses[member.UserID],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}
