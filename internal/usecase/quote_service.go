package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/tickerdraft/tickerdraft/internal/platform/cache"
)

const defaultQuoteWorkers = 4

// QuoteService normalizes daily quotes from the upstream price provider.
// It fans out one fetch per ticker with a bounded worker pool and caches
// normalized quotes so repeated reads within the TTL skip the provider.
type QuoteService struct {
	provider PriceProvider
	store    *cache.Store
	workers  int
}

func NewQuoteService(provider PriceProvider, store *cache.Store, workers int) *QuoteService {
	if workers <= 0 {
		workers = defaultQuoteWorkers
	}
	return &QuoteService{
		provider: provider,
		store:    store,
		workers:  workers,
	}
}

// GetDailyQuotes fetches the previous trading day's quote for each requested
// ticker. Tickers are deduplicated and upper-cased before the fan-out. A
// ticker the provider does not know is absent from the result, never an
// error; any other provider failure aborts the whole call.
func (s *QuoteService) GetDailyQuotes(ctx context.Context, tickers []string) (map[string]Quote, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QuoteService.GetDailyQuotes")
	defer span.End()

	wanted := normalizeTickers(tickers)
	if len(wanted) == 0 {
		return nil, fmt.Errorf("%w: at least one ticker is required", ErrInvalidInput)
	}

	quotes := make(map[string]Quote, len(wanted))
	remaining := make([]string, 0, len(wanted))
	for _, ticker := range wanted {
		if q, ok := s.cachedQuote(ctx, ticker); ok {
			quotes[ticker] = q
			continue
		}
		remaining = append(remaining, ticker)
	}
	if len(remaining) == 0 {
		return quotes, nil
	}

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(s.workers).WithContext(ctx).WithCancelOnError()
	for _, ticker := range remaining {
		p.Go(func(ctx context.Context) error {
			raw, err := s.provider.FetchPrevDay(ctx, ticker)
			if err != nil {
				// Unknown and timed-out tickers are absent from the
				// result, not a failed run.
				if errors.Is(err, ErrNotFound) || isTimeout(err) {
					return nil
				}
				return fmt.Errorf("fetch quote for %s: %w", ticker, err)
			}

			q := normalizeQuote(ticker, raw)
			mu.Lock()
			quotes[ticker] = q
			mu.Unlock()
			s.storeQuote(ctx, ticker, q)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	return quotes, nil
}

func (s *QuoteService) cachedQuote(ctx context.Context, ticker string) (Quote, bool) {
	if s.store == nil {
		return Quote{}, false
	}
	v, ok := s.store.Get(ctx, quoteCacheKey(ticker))
	if !ok {
		return Quote{}, false
	}
	q, ok := v.(Quote)
	return q, ok
}

func (s *QuoteService) storeQuote(ctx context.Context, ticker string, q Quote) {
	if s.store == nil {
		return
	}
	s.store.Set(ctx, quoteCacheKey(ticker), q)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func quoteCacheKey(ticker string) string {
	return "quote:prevday:" + ticker
}

// normalizeTickers upper-cases, trims, dedupes, and sorts the requested set
// so fan-out order and cache keys are deterministic.
func normalizeTickers(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// normalizeQuote keeps the provider's raw prices (they feed scoring and are
// persisted as-is) and derives change and changePct from them, rounded to
// two decimals.
func normalizeQuote(ticker string, raw Quote) Quote {
	q := Quote{
		Ticker: ticker,
		Open:   raw.Open,
		High:   raw.High,
		Low:    raw.Low,
		Close:  raw.Close,
		Volume: raw.Volume,
		Change: round2(raw.Close - raw.Open),
	}
	if raw.Open != 0 {
		q.ChangePct = round2((raw.Close - raw.Open) / raw.Open * 100)
	}
	return q
}
