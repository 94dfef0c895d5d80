package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
)

// Evaluator decides whether a transfer may proceed. Checks run in a
// fixed order and the first failing reason wins. Every rejection
// carries a user-facing explanation.
type Evaluator struct {
	rates RateSource
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(rates RateSource) *Evaluator {
	return &Evaluator{rates: rates}
}

// Evaluate runs the full precondition chain: currency distinctness,
// source and destination account existence, balance sufficiency, then
// the optional rate gate. Balance and rate are shared mutable state,
// so the result is only good for the moment it was computed.
func (e *Evaluator) Evaluate(ctx context.Context, user *domain.User, from, to domain.Currency, amount decimal.Decimal, cond *domain.RateCondition) error {
	if from == to {
		return domain.ErrSameCurrency
	}

	fromAccount, ok := user.Account(from)
	if !ok {
		return fmt.Errorf("%w: %s has no %s account", domain.ErrAccountNotFound, user.Name, from)
	}

	if _, ok := user.Account(to); !ok {
		return fmt.Errorf("%w: %s has no %s account", domain.ErrAccountNotFound, user.Name, to)
	}

	if !fromAccount.CanDebit(amount) {
		return fmt.Errorf("%w: current balance %s %s, requested %s %s",
			domain.ErrInsufficientFunds, fromAccount.Balance, from, amount, from)
	}

	return e.checkRateGate(ctx, cond)
}

// CheckSource verifies the source-side preconditions only: account
// existence, balance sufficiency, and the optional rate gate. Used for
// the eligibility probe and for the check that runs before any
// elicitation round, when the target currency may still be unknown.
func (e *Evaluator) CheckSource(ctx context.Context, user *domain.User, from domain.Currency, amount decimal.Decimal, cond *domain.RateCondition) error {
	fromAccount, ok := user.Account(from)
	if !ok {
		return fmt.Errorf("%w: %s has no %s account", domain.ErrAccountNotFound, user.Name, from)
	}

	if !fromAccount.CanDebit(amount) {
		return fmt.Errorf("%w: current balance %s %s, requested %s %s",
			domain.ErrInsufficientFunds, fromAccount.Balance, from, amount, from)
	}

	return e.checkRateGate(ctx, cond)
}

func (e *Evaluator) checkRateGate(ctx context.Context, cond *domain.RateCondition) error {
	if cond == nil {
		return nil
	}

	current, err := e.rates.Get(ctx)
	if err != nil {
		return err
	}

	if !cond.Met(current) {
		return fmt.Errorf("%w: current rate %s, condition: %s",
			domain.ErrRateConditionNotMet, current, cond)
	}

	return nil
}
