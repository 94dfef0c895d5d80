package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateUseCase reads and updates the exchange rate.
type RateUseCase struct {
	rates RateSource
}

// NewRateUseCase creates a new RateUseCase.
func NewRateUseCase(rates RateSource) *RateUseCase {
	return &RateUseCase{rates: rates}
}

// Get returns the current AUD to USD rate.
func (uc *RateUseCase) Get(ctx context.Context) (decimal.Decimal, error) {
	return uc.rates.Get(ctx)
}

// Set replaces the rate and returns the stored value. The baseline
// contract accepts any value, including non-positive ones; bounds
// remain the administrator's concern.
func (uc *RateUseCase) Set(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error) {
	if err := uc.rates.Set(ctx, rate); err != nil {
		return decimal.Zero, err
	}

	return uc.rates.Get(ctx)
}
