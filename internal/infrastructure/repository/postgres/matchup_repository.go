package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tickerdraft/tickerdraft/internal/domain/matchup"
	qb "github.com/tickerdraft/tickerdraft/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) ListByLeague(ctx context.Context, leagueID string) ([]matchup.Matchup, error) {
	return r.listMatchups(ctx, qb.Eq("league_id", leagueID))
}

func (r *MatchupRepository) ListByLeagueWeek(ctx context.Context, leagueID string, week int) ([]matchup.Matchup, error) {
	return r.listMatchups(ctx, qb.Eq("league_id", leagueID), qb.Eq("week", week))
}

func (r *MatchupRepository) listMatchups(ctx context.Context, conditions ...qb.Condition) ([]matchup.Matchup, error) {
	query, args, err := qb.Select("*").
		From("matchups").
		Where(conditions...).
		OrderBy("week", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matchups query: %w", err)
	}

	var rows []matchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}

	out := make([]matchup.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMatchupRow(row))
	}
	return out, nil
}

func mapMatchupRow(row matchupTableModel) matchup.Matchup {
	m := matchup.Matchup{
		ID:          row.ID,
		LeagueID:    row.LeagueID,
		Week:        row.Week,
		TeamAUserID: row.TeamAUserID,
		TeamBUserID: row.TeamBUserID,
		ScoreA:      row.ScoreA,
		ScoreB:      row.ScoreB,
		IsComplete:  row.IsComplete,
	}
	if row.WinnerUserID.Valid {
		m.WinnerUserID = row.WinnerUserID.String
	}
	return m
}
