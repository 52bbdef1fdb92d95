package usecase

import "context"

// Quote is a normalized daily quote for one ticker. Prices stay raw; the
// derived Change and ChangePct are rounded to two decimals.
type Quote struct {
	Ticker    string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Change    float64
	ChangePct float64
}

// PriceProvider fetches the previous trading day's quote for a ticker.
// A ticker the provider has no data for returns ErrNotFound (possibly
// wrapped); transport and rate-limit failures return other errors.
type PriceProvider interface {
	FetchPrevDay(ctx context.Context, ticker string) (Quote, error)
}
