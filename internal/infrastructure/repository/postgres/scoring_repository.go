package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tickerdraft/tickerdraft/internal/domain/scoring"
	qb "github.com/tickerdraft/tickerdraft/internal/platform/querybuilder"
)

const weeklyScoreUpsertSuffix = `ON CONFLICT (league_id, user_id, stock_id, week) DO UPDATE SET
	price_open = EXCLUDED.price_open,
	price_close = EXCLUDED.price_close,
	pct_change = EXCLUDED.pct_change,
	points = EXCLUDED.points,
	scored_at = EXCLUDED.scored_at
RETURNING id`

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

// Upsert writes one weekly score row, replacing any previous row for the
// same (league, user, stock, week). Re-running a scoring pass converges.
func (r *ScoringRepository) Upsert(ctx context.Context, score scoring.WeeklyScore) (scoring.WeeklyScore, error) {
	if err := score.Validate(); err != nil {
		return scoring.WeeklyScore{}, err
	}

	insertModel := weeklyScoreInsertModel{
		LeagueID:   score.LeagueID,
		UserID:     score.UserID,
		StockID:    score.StockID,
		Week:       score.Week,
		PriceOpen:  score.PriceOpen,
		PriceClose: score.PriceClose,
		PctChange:  score.PctChange,
		Points:     score.Points,
		ScoredAt:   score.ScoredAt,
	}
	query, args, err := qb.InsertModel("weekly_scores", insertModel, weeklyScoreUpsertSuffix)
	if err != nil {
		return scoring.WeeklyScore{}, fmt.Errorf("build upsert weekly score query: %w", err)
	}

	var id string
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return scoring.WeeklyScore{}, fmt.Errorf("upsert weekly score: %w", err)
	}

	score.ID = id
	return score, nil
}

func (r *ScoringRepository) ListByLeagueWeek(ctx context.Context, leagueID string, week int) ([]scoring.WeeklyScore, error) {
	return r.listScores(ctx, qb.Eq("league_id", leagueID), qb.Eq("week", week))
}

func (r *ScoringRepository) ListByLeague(ctx context.Context, leagueID string) ([]scoring.WeeklyScore, error) {
	return r.listScores(ctx, qb.Eq("league_id", leagueID))
}

func (r *ScoringRepository) ListByUser(ctx context.Context, leagueID, userID string) ([]scoring.WeeklyScore, error) {
	return r.listScores(ctx, qb.Eq("league_id", leagueID), qb.Eq("user_id", userID))
}

func (r *ScoringRepository) listScores(ctx context.Context, conditions ...qb.Condition) ([]scoring.WeeklyScore, error) {
	query, args, err := qb.Select("*").
		From("weekly_scores").
		Where(conditions...).
		OrderBy("week", "user_id", "stock_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list weekly scores query: %w", err)
	}

	var rows []weeklyScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list weekly scores: %w", err)
	}

	out := make([]scoring.WeeklyScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapWeeklyScoreRow(row))
	}
	return out, nil
}

func mapWeeklyScoreRow(row weeklyScoreTableModel) scoring.WeeklyScore {
	return scoring.WeeklyScore{
		ID:         row.ID,
		LeagueID:   row.LeagueID,
		UserID:     row.UserID,
		StockID:    row.StockID,
		Week:       row.Week,
		PriceOpen:  row.PriceOpen,
		PriceClose: row.PriceClose,
		PctChange:  row.PctChange,
		Points:     row.Points,
		ScoredAt:   row.ScoredAt,
	}
}
