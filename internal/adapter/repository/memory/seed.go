package memory

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
)

// DefaultRate is the AUD to USD rate the process starts with.
func DefaultRate() decimal.Decimal {
	return decimal.RequireFromString("0.68")
}

// SeedUsers returns the fixed roster created at process start.
func SeedUsers() []*domain.User {
	return []*domain.User{
		{
			ID:   "1",
			Name: "Alice",
			Accounts: []domain.Account{
				{Currency: domain.CurrencyAUD, Balance: decimal.NewFromInt(1000)},
				{Currency: domain.CurrencyUSD, Balance: decimal.NewFromInt(500)},
			},
		},
		{
			ID:   "2",
			Name: "Bob",
			Accounts: []domain.Account{
				{Currency: domain.CurrencyAUD, Balance: decimal.NewFromInt(2000)},
				{Currency: domain.CurrencyUSD, Balance: decimal.NewFromInt(1000)},
			},
		},
	}
}
