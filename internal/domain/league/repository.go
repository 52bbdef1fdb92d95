package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (League, bool, error)
	ListMemberships(ctx context.Context, leagueID string) ([]Membership, error)
	GetMembership(ctx context.Context, leagueID, userID string) (Membership, bool, error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]Membership, error)
}
