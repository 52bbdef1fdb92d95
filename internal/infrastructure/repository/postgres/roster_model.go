package postgres

import "time"

type rosterSlotTableModel struct {
	ID       string    `db:"id"`
	LeagueID string    `db:"league_id"`
	UserID   string    `db:"user_id"`
	StockID  string    `db:"stock_id"`
	AddedAt  time.Time `db:"added_at"`
}

type rosterSlotInsertModel struct {
	LeagueID string `db:"league_id"`
	UserID   string `db:"user_id"`
	StockID  string `db:"stock_id"`
}
