package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest is a request to move funds between two of a user's
// currency accounts. Identity and target currency may be absent at
// submission and are resolved interactively.
type TransferRequest struct {
	UserID    string
	UserName  string
	From      Currency
	To        Currency // empty means unresolved
	Amount    decimal.Decimal
	Condition *RateCondition
}

// Validate validates the fields that must be present at submission.
// Identity and target currency are allowed to be absent here.
func (r *TransferRequest) Validate() error {
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !r.From.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, r.From)
	}

	if r.To != "" && !r.To.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, r.To)
	}

	if r.Condition != nil {
		return r.Condition.Validate()
	}

	return nil
}

// TransferOutcome is what the ledger store reports after an atomic
// commit: the realized converted amount, the rate it was converted at,
// and the owner's full post-transfer account list.
type TransferOutcome struct {
	Credited decimal.Decimal `json:"credited"`
	Rate     decimal.Decimal `json:"rate"`
	Balances []Account       `json:"balances"`
	Message  string          `json:"message"`
}

// TransferResult is the orchestrator's report for a committed transfer.
type TransferResult struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name"`
	From      Currency        `json:"from"`
	To        Currency        `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Credited  decimal.Decimal `json:"credited"`
	Rate      decimal.Decimal `json:"rate"`
	Balances  []Account       `json:"balances"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"created_at"`
}
