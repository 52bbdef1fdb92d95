// Package standings holds the computed league table. Rows are derived from
// weekly scores and completed matchups and never stored directly.
package standings

// Row is one league member's standing. Rank is 1-based and assigned after
// sorting by total points descending; ties keep membership order.
type Row struct {
	Rank        int
	UserID      string
	TeamName    string
	TotalPoints float64
	Wins        int
	Losses      int
}
