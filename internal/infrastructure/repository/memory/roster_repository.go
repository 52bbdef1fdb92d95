package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tickerdraft/tickerdraft/internal/domain/roster"
	"github.com/tickerdraft/tickerdraft/internal/platform/id"
)

type RosterRepository struct {
	mu    sync.RWMutex
	slots []roster.Slot
	ids   id.Generator
}

func NewRosterRepository(slots []roster.Slot, ids id.Generator) *RosterRepository {
	return &RosterRepository{
		slots: append([]roster.Slot(nil), slots...),
		ids:   ids,
	}
}

func (r *RosterRepository) Add(_ context.Context, slot roster.Slot) (roster.Slot, error) {
	if err := slot.Validate(); err != nil {
		return roster.Slot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.slots {
		if existing.LeagueID == slot.LeagueID && existing.StockID == slot.StockID {
			return roster.Slot{}, roster.ErrStockAlreadyOwned
		}
	}

	newID, err := r.ids.NewID()
	if err != nil {
		return roster.Slot{}, fmt.Errorf("generate roster slot id: %w", err)
	}

	slot.ID = newID
	if slot.AddedAt.IsZero() {
		slot.AddedAt = time.Now().UTC()
	}
	r.slots = append(r.slots, slot)
	return slot, nil
}

func (r *RosterRepository) Remove(_ context.Context, leagueID, userID, stockID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, slot := range r.slots {
		if slot.LeagueID == leagueID && slot.UserID == userID && slot.StockID == stockID {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

func (r *RosterRepository) ListByLeague(_ context.Context, leagueID string) ([]roster.Slot, error) {
	return r.filterSlots(func(s roster.Slot) bool { return s.LeagueID == leagueID }), nil
}

func (r *RosterRepository) ListByUser(_ context.Context, leagueID, userID string) ([]roster.Slot, error) {
	return r.filterSlots(func(s roster.Slot) bool { return s.LeagueID == leagueID && s.UserID == userID }), nil
}

func (r *RosterRepository) ListAllActive(_ context.Context) ([]roster.Slot, error) {
	return r.filterSlots(func(roster.Slot) bool { return true }), nil
}

func (r *RosterRepository) filterSlots(keep func(roster.Slot) bool) []roster.Slot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Slot, 0, len(r.slots))
	for _, slot := range r.slots {
		if keep(slot) {
			out = append(out, slot)
		}
	}

	return out
}
