package league

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusDrafting  Status = "drafting"
	StatusActive    Status = "active"
	StatusComplete  Status = "complete"
	StatusOffseason Status = "offseason"
)

// League is one competitive group of managers.
type League struct {
	ID             string
	Name           string
	InviteCode     string
	Status         Status
	CurrentWeek    int
	CommissionerID string
	IsPublic       bool
	CreatedAt      time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.InviteCode == "" {
		return fmt.Errorf("league invite code is required")
	}
	if l.CurrentWeek < 0 {
		return fmt.Errorf("league current week cannot be negative")
	}

	return nil
}

// Membership joins a user to a league. One membership per (league, user);
// the store enforces that uniqueness.
type Membership struct {
	ID       string
	LeagueID string
	UserID   string
	TeamName string
	JoinedAt time.Time
}
