package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
)

// UserRepository defines read access to the user roster.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RateSource holds the single mutable AUD to USD exchange rate.
type RateSource interface {
	Get(ctx context.Context) (decimal.Decimal, error)
	Set(ctx context.Context, rate decimal.Decimal) error
}

// TransferStore applies the atomic two-account balance mutation: debit
// the source, credit the converted amount to the destination, with no
// observable intermediate state. Implementations re-verify balance
// sufficiency immediately before mutating.
type TransferStore interface {
	Apply(ctx context.Context, userID string, from, to domain.Currency, amount, rate decimal.Decimal) (*domain.TransferOutcome, error)
}

// Elicitor issues a synchronous choice request for a missing parameter
// and blocks until an answer or cancellation arrives.
type Elicitor interface {
	Elicit(ctx context.Context, req domain.ChoiceRequest) (domain.ChoiceResponse, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
