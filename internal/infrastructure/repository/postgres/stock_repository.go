package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
	qb "github.com/tickerdraft/tickerdraft/internal/platform/querybuilder"
)

type StockRepository struct {
	db *sqlx.DB
}

func NewStockRepository(db *sqlx.DB) *StockRepository {
	return &StockRepository{db: db}
}

func (r *StockRepository) List(ctx context.Context, filter stock.ListFilter) ([]stock.Stock, error) {
	builder := qb.Select("*").From("stocks").OrderBy("ticker")
	if filter.Sector != "" {
		builder = builder.Where(qb.Expr("LOWER(sector) = LOWER(?)", filter.Sector))
	}
	if filter.CapClass != "" {
		builder = builder.Where(qb.Eq("cap_class", string(filter.CapClass)))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stocks query: %w", err)
	}

	var rows []stockTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}

	out := make([]stock.Stock, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapStockRow(row))
	}
	return out, nil
}

func (r *StockRepository) GetByID(ctx context.Context, stockID string) (stock.Stock, bool, error) {
	query, args, err := qb.Select("*").From("stocks").
		Where(qb.Eq("id", stockID)).
		ToSQL()
	if err != nil {
		return stock.Stock{}, false, fmt.Errorf("build get stock by id query: %w", err)
	}

	var row stockTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stock.Stock{}, false, nil
		}
		return stock.Stock{}, false, fmt.Errorf("get stock by id: %w", err)
	}

	return mapStockRow(row), true, nil
}

func (r *StockRepository) ListByIDs(ctx context.Context, stockIDs []string) ([]stock.Stock, error) {
	if len(stockIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(stockIDs))
	for _, id := range stockIDs {
		ids = append(ids, id)
	}
	query, args, err := qb.Select("*").From("stocks").
		Where(qb.In("id", ids)).
		OrderBy("ticker").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stocks by ids query: %w", err)
	}

	var rows []stockTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stocks by ids: %w", err)
	}

	out := make([]stock.Stock, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapStockRow(row))
	}
	return out, nil
}

func mapStockRow(row stockTableModel) stock.Stock {
	return stock.Stock{
		ID:       row.ID,
		Ticker:   row.Ticker,
		Name:     row.Name,
		Sector:   row.Sector,
		CapClass: stock.CapClass(row.CapClass),
	}
}
