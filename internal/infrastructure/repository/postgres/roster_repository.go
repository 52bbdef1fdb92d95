package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	qb "github.com/tickerdraft/tickerdraft/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Add inserts a slot. The unique index on (league_id, stock_id) is the
// arbiter for two managers racing for the same stock.
func (r *RosterRepository) Add(ctx context.Context, slot roster.Slot) (roster.Slot, error) {
	if err := slot.Validate(); err != nil {
		return roster.Slot{}, err
	}

	insertModel := rosterSlotInsertModel{
		LeagueID: slot.LeagueID,
		UserID:   slot.UserID,
		StockID:  slot.StockID,
	}
	query, args, err := qb.InsertModel("roster_slots", insertModel, "RETURNING id, added_at")
	if err != nil {
		return roster.Slot{}, fmt.Errorf("build insert roster slot query: %w", err)
	}

	var returned struct {
		ID      string    `db:"id"`
		AddedAt time.Time `db:"added_at"`
	}
	if err := r.db.GetContext(ctx, &returned, query, args...); err != nil {
		if isUniqueViolation(err) {
			return roster.Slot{}, roster.ErrStockAlreadyOwned
		}
		return roster.Slot{}, fmt.Errorf("insert roster slot: %w", err)
	}

	slot.ID = returned.ID
	slot.AddedAt = returned.AddedAt
	return slot, nil
}

func (r *RosterRepository) Remove(ctx context.Context, leagueID, userID, stockID string) (bool, error) {
	query, args, err := qb.DeleteFrom("roster_slots").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("user_id", userID),
			qb.Eq("stock_id", stockID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete roster slot query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete roster slot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete roster slot rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *RosterRepository) ListByLeague(ctx context.Context, leagueID string) ([]roster.Slot, error) {
	return r.listSlots(ctx, qb.Eq("league_id", leagueID))
}

func (r *RosterRepository) ListByUser(ctx context.Context, leagueID, userID string) ([]roster.Slot, error) {
	return r.listSlots(ctx, qb.Eq("league_id", leagueID), qb.Eq("user_id", userID))
}

func (r *RosterRepository) ListAllActive(ctx context.Context) ([]roster.Slot, error) {
	return r.listSlots(ctx)
}

func (r *RosterRepository) listSlots(ctx context.Context, conditions ...qb.Condition) ([]roster.Slot, error) {
	builder := qb.Select("*").From("roster_slots").OrderBy("added_at", "id")
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster slots query: %w", err)
	}

	var rows []rosterSlotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list roster slots: %w", err)
	}

	out := make([]roster.Slot, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Slot{
			ID:       row.ID,
			LeagueID: row.LeagueID,
			UserID:   row.UserID,
			StockID:  row.StockID,
			AddedAt:  row.AddedAt,
		})
	}
	return out, nil
}
