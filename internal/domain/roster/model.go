package roster

import (
	"errors"
	"fmt"
	"time"
)

// ErrStockAlreadyOwned marks the expected contention case of two managers
// racing for the same free agent. Callers surface it as a conflict, not a
// system fault.
var ErrStockAlreadyOwned = errors.New("stock is already owned in this league")

// Slot is one (league, user, stock) holding. A stock may be held by at most
// one user within a league; the store enforces the uniqueness.
type Slot struct {
	ID       string
	LeagueID string
	UserID   string
	StockID  string
	AddedAt  time.Time
}

func (s Slot) Validate() error {
	if s.LeagueID == "" {
		return fmt.Errorf("roster slot league id is required")
	}
	if s.UserID == "" {
		return fmt.Errorf("roster slot user id is required")
	}
	if s.StockID == "" {
		return fmt.Errorf("roster slot stock id is required")
	}

	return nil
}
