package memory

import (
	"context"
	"sync"

	"github.com/tickerdraft/tickerdraft/internal/domain/league"
)

type LeagueRepository struct {
	mu           sync.RWMutex
	items        map[string]league.League
	byInviteCode map[string]string
	memberships  []league.Membership
}

func NewLeagueRepository(leagues []league.League, memberships []league.Membership) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	byInviteCode := make(map[string]string, len(leagues))
	for _, l := range leagues {
		items[l.ID] = l
		byInviteCode[l.InviteCode] = l.ID
	}

	return &LeagueRepository{
		items:        items,
		byInviteCode: byInviteCode,
		memberships:  append([]league.Membership(nil), memberships...),
	}
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) GetByInviteCode(_ context.Context, inviteCode string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leagueID, ok := r.byInviteCode[inviteCode]
	if !ok {
		return league.League{}, false, nil
	}

	return r.items[leagueID], true, nil
}

// ListMemberships preserves seed order, which doubles as join order.
func (r *LeagueRepository) ListMemberships(_ context.Context, leagueID string) ([]league.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Membership, 0, 4)
	for _, m := range r.memberships {
		if m.LeagueID == leagueID {
			out = append(out, m)
		}
	}

	return out, nil
}

func (r *LeagueRepository) GetMembership(_ context.Context, leagueID, userID string) (league.Membership, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.memberships {
		if m.LeagueID == leagueID && m.UserID == userID {
			return m, true, nil
		}
	}

	return league.Membership{}, false, nil
}

func (r *LeagueRepository) ListMembershipsByUser(_ context.Context, userID string) ([]league.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Membership, 0, 4)
	for _, m := range r.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}

	return out, nil
}
