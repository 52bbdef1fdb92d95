package postgres

import "time"

type stockTableModel struct {
	ID        string    `db:"id"`
	Ticker    string    `db:"ticker"`
	Name      string    `db:"name"`
	Sector    string    `db:"sector"`
	CapClass  string    `db:"cap_class"`
	CreatedAt time.Time `db:"created_at"`
}
