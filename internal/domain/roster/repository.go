package roster

import "context"

// Repository stores roster slots. Add must fail with ErrStockAlreadyOwned
// when the stock is already held by another user in the same league.
type Repository interface {
	Add(ctx context.Context, slot Slot) (Slot, error)
	Remove(ctx context.Context, leagueID, userID, stockID string) (bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Slot, error)
	ListByUser(ctx context.Context, leagueID, userID string) ([]Slot, error)
	ListAllActive(ctx context.Context) ([]Slot, error)
}
