package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

func newStockService() *StockService {
	return NewStockService(&stubStockRepository{
		stocks: []stock.Stock{
			{ID: "stk-aapl", Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology", CapClass: stock.CapLarge},
			{ID: "stk-sofi", Ticker: "SOFI", Name: "SoFi Technologies", Sector: "Financials", CapClass: stock.CapSmall},
		},
	})
}

func TestStockService_GetStock(t *testing.T) {
	t.Parallel()

	st, err := newStockService().GetStock(context.Background(), "stk-aapl")
	if err != nil {
		t.Fatalf("GetStock error: %v", err)
	}
	if st.Ticker != "AAPL" {
		t.Fatalf("unexpected stock %+v", st)
	}
}

func TestStockService_GetStock_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newStockService().GetStock(context.Background(), "stk-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStockService_GetStock_EmptyIDIsInvalid(t *testing.T) {
	t.Parallel()

	_, err := newStockService().GetStock(context.Background(), "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStockService_ListStocks_RejectsUnknownCapClass(t *testing.T) {
	t.Parallel()

	_, err := newStockService().ListStocks(context.Background(), stock.ListFilter{CapClass: "mega"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
