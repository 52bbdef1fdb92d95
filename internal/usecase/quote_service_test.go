package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tickerdraft/tickerdraft/internal/platform/cache"
)

func TestQuoteService_GetDailyQuotes_NormalizesAndComputesChange(t *testing.T) {
	t.Parallel()

	provider := &stubPriceProvider{
		quotes: map[string]Quote{
			"AAPL": {Open: 100, High: 106.333, Low: 99.999, Close: 105, Volume: 1000},
		},
	}
	service := NewQuoteService(provider, nil, 2)

	got, err := service.GetDailyQuotes(context.Background(), []string{"aapl"})
	if err != nil {
		t.Fatalf("GetDailyQuotes error: %v", err)
	}

	q, ok := got["AAPL"]
	if !ok {
		t.Fatalf("expected AAPL in result, got %+v", got)
	}
	if q.Open != 100 || q.Close != 105 {
		t.Fatalf("unexpected prices: %+v", q)
	}
	if q.High != 106.333 || q.Low != 99.999 {
		t.Fatalf("expected raw high/low, got %+v", q)
	}
	if q.Change != 5 {
		t.Fatalf("expected change 5, got %v", q.Change)
	}
	if q.ChangePct != 5 {
		t.Fatalf("expected changePct 5, got %v", q.ChangePct)
	}
}

func TestQuoteService_GetDailyQuotes_SubDollarPricesStayRaw(t *testing.T) {
	t.Parallel()

	provider := &stubPriceProvider{
		quotes: map[string]Quote{
			"PENY": {Open: 0.004, Close: 0.0045, Volume: 500},
		},
	}
	service := NewQuoteService(provider, nil, 2)

	got, err := service.GetDailyQuotes(context.Background(), []string{"PENY"})
	if err != nil {
		t.Fatalf("GetDailyQuotes error: %v", err)
	}

	q, ok := got["PENY"]
	if !ok {
		t.Fatalf("expected PENY in result, got %+v", got)
	}
	if q.Open != 0.004 || q.Close != 0.0045 {
		t.Fatalf("expected raw sub-dollar prices, got %+v", q)
	}
	if q.ChangePct != 12.5 {
		t.Fatalf("expected changePct 12.5 from raw prices, got %v", q.ChangePct)
	}
	if q.Change != 0 {
		t.Fatalf("expected change rounded to 0, got %v", q.Change)
	}
}

func TestQuoteService_GetDailyQuotes_DedupesTickers(t *testing.T) {
	t.Parallel()

	provider := &stubPriceProvider{
		quotes: map[string]Quote{
			"TSLA": {Open: 50, Close: 45},
		},
	}
	service := NewQuoteService(provider, nil, 2)

	got, err := service.GetDailyQuotes(context.Background(), []string{"TSLA", "tsla", " TSLA "})
	if err != nil {
		t.Fatalf("GetDailyQuotes error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(got))
	}
	if provider.callCount("TSLA") != 1 {
		t.Fatalf("expected 1 provider call, got %d", provider.callCount("TSLA"))
	}
	if got["TSLA"].ChangePct != -10 {
		t.Fatalf("expected changePct -10, got %v", got["TSLA"].ChangePct)
	}
}

func TestQuoteService_GetDailyQuotes_MissingTickerIsAbsentNotError(t *testing.T) {
	t.Parallel()

	provider := &stubPriceProvider{
		quotes: map[string]Quote{
			"AAPL": {Open: 100, Close: 105},
		},
	}
	service := NewQuoteService(provider, nil, 2)

	got, err := service.GetDailyQuotes(context.Background(), []string{"AAPL", "NOPE"})
	if err != nil {
		t.Fatalf("GetDailyQuotes error: %v", err)
	}
	if _, ok := got["NOPE"]; ok {
		t.Fatalf("expected NOPE to be absent, got %+v", got)
	}
	if _, ok := got["AAPL"]; !ok {
		t.Fatalf("expected AAPL to be present, got %+v", got)
	}
}

func TestQuoteService_GetDailyQuotes_TimeoutTreatedAsMissing(t *testing.T) {
	t.Parallel()

	provider := &stubPriceProvider{
		quotes: map[string]Quote{
			"AAPL": {Open: 100, Close: 101},
		},
		errs: map[string]error{
			"SLOW": context.DeadlineExceeded,
		},
	}
	service := NewQuoteService(provider, nil, 2)

	got, err := service.GetDailyQuotes(context.Background(), []string{"AAPL", "SLOW"})
	if err != nil {
		t.Fatalf("GetDailyQuotes error: %v", err)
	}
	if _, ok := got["SLOW"]; ok {
		t.Fatalf("expected SLOW to be absent, got %+v", got)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(got))
	}
}

func TestQuoteService_GetDailyQuotes_ProviderFailureAborts(t *testing.T) {
	t.Parallel()

	provider := &stubPriceProvider{
		quotes: map[string]Quote{
			"AAPL": {Open: 100, Close: 101},
		},
		errs: map[string]error{
			"BOOM": errors.New("upstream rate limited"),
		},
	}
	service := NewQuoteService(provider, nil, 2)

	_, err := service.GetDailyQuotes(context.Background(), []string{"AAPL", "BOOM"})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestQuoteService_GetDailyQuotes_EmptyInputIsInvalid(t *testing.T) {
	t.Parallel()

	service := NewQuoteService(&stubPriceProvider{}, nil, 2)

	_, err := service.GetDailyQuotes(context.Background(), []string{" ", ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestQuoteService_GetDailyQuotes_SecondReadHitsCache(t *testing.T) {
	t.Parallel()

	provider := &stubPriceProvider{
		quotes: map[string]Quote{
			"AAPL": {Open: 100, Close: 105},
		},
	}
	service := NewQuoteService(provider, cache.NewStore(time.Minute), 2)

	ctx := context.Background()
	if _, err := service.GetDailyQuotes(ctx, []string{"AAPL"}); err != nil {
		t.Fatalf("first read error: %v", err)
	}
	got, err := service.GetDailyQuotes(ctx, []string{"AAPL"})
	if err != nil {
		t.Fatalf("second read error: %v", err)
	}
	if provider.callCount("AAPL") != 1 {
		t.Fatalf("expected cached second read, provider called %d times", provider.callCount("AAPL"))
	}
	if got["AAPL"].ChangePct != 5 {
		t.Fatalf("unexpected cached quote: %+v", got["AAPL"])
	}
}
