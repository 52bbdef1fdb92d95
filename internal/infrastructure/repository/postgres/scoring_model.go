package postgres

import "time"

type weeklyScoreTableModel struct {
	ID         string    `db:"id"`
	LeagueID   string    `db:"league_id"`
	UserID     string    `db:"user_id"`
	StockID    string    `db:"stock_id"`
	Week       int       `db:"week"`
	PriceOpen  float64   `db:"price_open"`
	PriceClose float64   `db:"price_close"`
	PctChange  float64   `db:"pct_change"`
	Points     float64   `db:"points"`
	ScoredAt   time.Time `db:"scored_at"`
}

type weeklyScoreInsertModel struct {
	LeagueID   string    `db:"league_id"`
	UserID     string    `db:"user_id"`
	StockID    string    `db:"stock_id"`
	Week       int       `db:"week"`
	PriceOpen  float64   `db:"price_open"`
	PriceClose float64   `db:"price_close"`
	PctChange  float64   `db:"pct_change"`
	Points     float64   `db:"points"`
	ScoredAt   time.Time `db:"scored_at"`
}
