package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

type StockRepository struct {
	mu    sync.RWMutex
	items map[string]stock.Stock
}

func NewStockRepository(stocks []stock.Stock) *StockRepository {
	items := make(map[string]stock.Stock, len(stocks))
	for _, s := range stocks {
		items[s.ID] = s
	}

	return &StockRepository{items: items}
}

func (r *StockRepository) List(_ context.Context, filter stock.ListFilter) ([]stock.Stock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stock.Stock, 0, len(r.items))
	for _, s := range r.items {
		if filter.Sector != "" && !strings.EqualFold(s.Sector, filter.Sector) {
			continue
		}
		if filter.CapClass != "" && s.CapClass != filter.CapClass {
			continue
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out, nil
}

func (r *StockRepository) GetByID(_ context.Context, stockID string) (stock.Stock, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[stockID]
	if !ok {
		return stock.Stock{}, false, nil
	}

	return s, true, nil
}

func (r *StockRepository) ListByIDs(_ context.Context, stockIDs []string) ([]stock.Stock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stock.Stock, 0, len(stockIDs))
	seen := make(map[string]struct{}, len(stockIDs))
	for _, stockID := range stockIDs {
		if _, dup := seen[stockID]; dup {
			continue
		}
		seen[stockID] = struct{}{}
		if s, ok := r.items[stockID]; ok {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out, nil
}
