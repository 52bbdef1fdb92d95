package scoring

import (
	"fmt"
	"time"
)

// WeeklyScore is the points a single stock earned for a user in one league
// week. The tuple (league, user, stock, week) is unique; re-scoring a week
// overwrites the existing row instead of appending a new one.
type WeeklyScore struct {
	ID         string
	LeagueID   string
	UserID     string
	StockID    string
	Week       int
	PriceOpen  float64
	PriceClose float64
	PctChange  float64
	Points     float64
	ScoredAt   time.Time
}

func (w WeeklyScore) Validate() error {
	if w.LeagueID == "" {
		return fmt.Errorf("weekly score league id is required")
	}
	if w.UserID == "" {
		return fmt.Errorf("weekly score user id is required")
	}
	if w.StockID == "" {
		return fmt.Errorf("weekly score stock id is required")
	}
	if w.Week <= 0 {
		return fmt.Errorf("weekly score week must be positive, got %d", w.Week)
	}

	return nil
}
