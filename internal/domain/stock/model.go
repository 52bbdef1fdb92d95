package stock

import "fmt"

// CapClass buckets stocks by market capitalization.
type CapClass string

const (
	CapLarge CapClass = "large"
	CapMid   CapClass = "mid"
	CapSmall CapClass = "small"
)

func (c CapClass) Valid() bool {
	switch c {
	case CapLarge, CapMid, CapSmall:
		return true
	}
	return false
}

// Stock is reference data for a tradable ticker. Rows are seeded externally
// and never mutated by this service.
type Stock struct {
	ID       string
	Ticker   string
	Name     string
	Sector   string
	CapClass CapClass
}

func (s Stock) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("stock id is required")
	}
	if s.Ticker == "" {
		return fmt.Errorf("stock ticker is required")
	}
	if s.Name == "" {
		return fmt.Errorf("stock name is required")
	}

	return nil
}
