package domain

import "github.com/shopspring/decimal"

// Account is a single-currency balance owned by one user. A user holds
// at most one account per currency.
type Account struct {
	Currency Currency        `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// CanDebit checks if the account holds at least amount.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
