package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
	qb "github.com/tickerdraft/tickerdraft/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.getLeague(ctx, qb.Eq("id", leagueID))
}

func (r *LeagueRepository) GetByInviteCode(ctx context.Context, inviteCode string) (league.League, bool, error) {
	return r.getLeague(ctx, qb.Eq("invite_code", inviteCode))
}

func (r *LeagueRepository) getLeague(ctx context.Context, cond qb.Condition) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").Where(cond).ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	return mapLeagueRow(row), true, nil
}

func (r *LeagueRepository) ListMemberships(ctx context.Context, leagueID string) ([]league.Membership, error) {
	return r.listMemberships(ctx, qb.Eq("league_id", leagueID))
}

func (r *LeagueRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]league.Membership, error) {
	return r.listMemberships(ctx, qb.Eq("user_id", userID))
}

func (r *LeagueRepository) listMemberships(ctx context.Context, cond qb.Condition) ([]league.Membership, error) {
	query, args, err := qb.Select("*").From("league_members").
		Where(cond).
		OrderBy("joined_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list memberships query: %w", err)
	}

	var rows []membershipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	out := make([]league.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMembershipRow(row))
	}
	return out, nil
}

func (r *LeagueRepository) GetMembership(ctx context.Context, leagueID, userID string) (league.Membership, bool, error) {
	query, args, err := qb.Select("*").From("league_members").
		Where(qb.Eq("league_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return league.Membership{}, false, fmt.Errorf("build get membership query: %w", err)
	}

	var row membershipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Membership{}, false, nil
		}
		return league.Membership{}, false, fmt.Errorf("get membership: %w", err)
	}

	return mapMembershipRow(row), true, nil
}

func mapLeagueRow(row leagueTableModel) league.League {
	return league.League{
		ID:             row.ID,
		Name:           row.Name,
		InviteCode:     row.InviteCode,
		Status:         league.Status(row.Status),
		CurrentWeek:    row.CurrentWeek,
		CommissionerID: row.CommissionerID,
		IsPublic:       row.IsPublic,
		CreatedAt:      row.CreatedAt,
	}
}

func mapMembershipRow(row membershipTableModel) league.Membership {
	return league.Membership{
		ID:       row.ID,
		LeagueID: row.LeagueID,
		UserID:   row.UserID,
		TeamName: row.TeamName,
		JoinedAt: row.JoinedAt,
	}
}
