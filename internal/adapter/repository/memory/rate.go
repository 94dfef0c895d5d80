package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// Rates holds the single process-wide AUD to USD exchange rate. Last
// write wins; no history is kept.
type Rates struct {
	mu   sync.RWMutex
	rate decimal.Decimal
}

// NewRates creates a rate source with an initial rate.
func NewRates(rate decimal.Decimal) *Rates {
	return &Rates{rate: rate}
}

// Get returns the current rate.
func (r *Rates) Get(ctx context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.rate, nil
}

// Set replaces the rate. Any value is accepted, zero and negatives
// included.
func (r *Rates) Set(ctx context.Context, rate decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rate = rate

	return nil
}
