package usecase

import (
	"context"
	"fmt"

	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

type StockService struct {
	stockRepo stock.Repository
}

func NewStockService(stockRepo stock.Repository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

func (s *StockService) ListStocks(ctx context.Context, filter stock.ListFilter) ([]stock.Stock, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StockService.ListStocks")
	defer span.End()

	if filter.CapClass != "" && !filter.CapClass.Valid() {
		return nil, fmt.Errorf("%w: unknown cap class %q", ErrInvalidInput, filter.CapClass)
	}

	stocks, err := s.stockRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}

	return stocks, nil
}

func (s *StockService) GetStock(ctx context.Context, stockID string) (stock.Stock, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StockService.GetStock")
	defer span.End()

	if stockID == "" {
		return stock.Stock{}, fmt.Errorf("%w: stock id is required", ErrInvalidInput)
	}

	st, found, err := s.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return stock.Stock{}, fmt.Errorf("load stock: %w", err)
	}
	if !found {
		return stock.Stock{}, fmt.Errorf("%w: stock %s", ErrNotFound, stockID)
	}

	return st, nil
}
