package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is one of the two currencies the ledger holds accounts in.
type Currency string

const (
	CurrencyAUD Currency = "AUD"
	CurrencyUSD Currency = "USD"
)

// Currencies lists every supported currency.
var Currencies = []Currency{CurrencyAUD, CurrencyUSD}

// IsValid checks if the currency is supported.
func (c Currency) IsValid() bool {
	return c == CurrencyAUD || c == CurrencyUSD
}

// ParseCurrency parses a currency code, case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}

	return c, nil
}

// Convert converts amount between currencies at the given rate.
// The rate means 1 AUD = rate USD: AUD to USD multiplies, USD to AUD
// divides. Same-currency conversion is a distinctness violation and is
// never treated as a multiply-by-one.
func Convert(amount decimal.Decimal, from, to Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return decimal.Zero, ErrSameCurrency
	}

	if from == CurrencyAUD && to == CurrencyUSD {
		return amount.Mul(rate), nil
	}

	// The rate store accepts any value, so the divide leg must refuse
	// zero itself rather than panic.
	if rate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: cannot divide by a zero rate", ErrInvalidRate)
	}

	return amount.Div(rate), nil
}
