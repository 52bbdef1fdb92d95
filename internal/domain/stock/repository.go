package stock

import "context"

// Repository describes stock reference-data reads needed by use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Stock, error)
	GetByID(ctx context.Context, stockID string) (Stock, bool, error)
	ListByIDs(ctx context.Context, stockIDs []string) ([]Stock, error)
}

type ListFilter struct {
	Sector   string
	CapClass CapClass
}
