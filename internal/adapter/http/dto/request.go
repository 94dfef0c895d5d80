package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/usecase"
)

// RateConditionRequest is the optional rate gate on a transfer.
type RateConditionRequest struct {
	Operator string          `json:"operator"`
	Value    decimal.Decimal `json:"value"`
}

// CreateTransferRequest represents a request to move money between a
// user's currency accounts.
type CreateTransferRequest struct {
	UserID    string                `json:"user_id,omitempty"`
	UserName  string                `json:"user_name,omitempty"`
	From      string                `json:"from_currency"`
	To        string                `json:"to_currency,omitempty"`
	Amount    decimal.Decimal       `json:"amount"`
	Condition *RateConditionRequest `json:"condition,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		UserID:    r.UserID,
		UserName:  r.UserName,
		From:      domain.Currency(r.From),
		To:        domain.Currency(r.To),
		Amount:    r.Amount,
		Condition: r.Condition.toDomain(),
	}
}

// CheckEligibilityRequest asks whether a transfer out of one account
// could proceed, without naming a destination.
type CheckEligibilityRequest struct {
	UserID    string                `json:"user_id,omitempty"`
	From      string                `json:"from_currency"`
	Amount    decimal.Decimal       `json:"amount"`
	Condition *RateConditionRequest `json:"condition,omitempty"`
}

// ToCondition returns the domain rate condition, nil when absent.
func (r *CheckEligibilityRequest) ToCondition() *domain.RateCondition {
	return r.Condition.toDomain()
}

// SetRateRequest replaces the exchange rate.
type SetRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// LoginRequest identifies a user for token issuance.
type LoginRequest struct {
	UserID string `json:"user_id"`
}

func (r *RateConditionRequest) toDomain() *domain.RateCondition {
	if r == nil {
		return nil
	}

	return &domain.RateCondition{
		Operator: domain.RateOperator(r.Operator),
		Value:    r.Value,
	}
}
