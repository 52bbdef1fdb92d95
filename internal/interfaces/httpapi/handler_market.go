package httpapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/tickerdraft/tickerdraft/internal/domain/stock"
)

func (h *Handler) ListStocks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStocks")
	defer span.End()

	filter := stock.ListFilter{
		Sector:   strings.TrimSpace(r.URL.Query().Get("sector")),
		CapClass: stock.CapClass(strings.TrimSpace(r.URL.Query().Get("capClass"))),
	}

	stocks, err := h.stockService.ListStocks(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list stocks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]stockDTO, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, stockToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStock")
	defer span.End()

	stockID := r.PathValue("stockID")
	st, err := h.stockService.GetStock(ctx, stockID)
	if err != nil {
		h.logger.WarnContext(ctx, "get stock failed", "stock_id", stockID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stockToDTO(st))
}

// GetDailyPrices returns previous-day quotes keyed by ticker. Tickers the
// market has no data for are simply absent from the map.
func (h *Handler) GetDailyPrices(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDailyPrices")
	defer span.End()

	tickers := splitTickers(r.URL.Query().Get("tickers"))
	quotes, err := h.quoteService.GetDailyQuotes(ctx, tickers)
	if err != nil {
		h.logger.WarnContext(ctx, "get daily prices failed", "tickers", tickers, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make(map[string]quoteDTO, len(quotes))
	for ticker, q := range quotes {
		items[ticker] = quoteToDTO(q)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func splitTickers(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	sort.Strings(out)
	return out
}
