package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
)

// TransferUseCase orchestrates a transfer end to end: identify the
// user, resolve missing fields, evaluate preconditions, commit the
// atomic mutation, report.
type TransferUseCase struct {
	users    UserRepository
	rates    RateSource
	store    TransferStore
	resolver *Resolver
	eval     *Evaluator
	idGen    IDGenerator
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	users UserRepository,
	rates RateSource,
	store TransferStore,
	resolver *Resolver,
	eval *Evaluator,
	idGen IDGenerator,
) *TransferUseCase {
	return &TransferUseCase{
		users:    users,
		rates:    rates,
		store:    store,
		resolver: resolver,
		eval:     eval,
		idGen:    idGen,
	}
}

// TransferInput represents input for executing a transfer.
type TransferInput struct {
	// BoundUserID is the authenticated caller's identity. When set,
	// identity is taken directly and never elicited.
	BoundUserID string
	UserID      string
	UserName    string
	From        domain.Currency
	To          domain.Currency // empty means resolve interactively
	Amount      decimal.Decimal
	Condition   *domain.RateCondition
}

// Transfer executes a transfer. Rejections surface as domain sentinel
// errors wrapped with a user-facing explanation; callers render them
// without crashing.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.TransferResult, error) {
	req := domain.TransferRequest{
		UserID:    input.UserID,
		UserName:  input.UserName,
		From:      input.From,
		To:        input.To,
		Amount:    input.Amount,
		Condition: input.Condition,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.identify(ctx, input)
	if err != nil {
		return nil, err
	}

	// Source-side check before any elicitation round: a transfer that
	// cannot fund itself never prompts for a target currency.
	if err := uc.eval.CheckSource(ctx, user, input.From, input.Amount, nil); err != nil {
		return nil, err
	}

	to := input.To
	if to == "" {
		to, err = uc.resolver.ResolveTargetCurrency(ctx, user, input.From, input.Amount)
		if err != nil {
			return nil, err
		}
	}

	// Balances and the rate may have moved during the round trip.
	// Re-read the user and run the full chain again.
	user, err = uc.users.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.eval.Evaluate(ctx, user, input.From, to, input.Amount, input.Condition); err != nil {
		return nil, err
	}

	rate, err := uc.rates.Get(ctx)
	if err != nil {
		return nil, err
	}

	outcome, err := uc.store.Apply(ctx, user.ID, input.From, to, input.Amount, rate)
	if err != nil {
		return nil, err
	}

	return &domain.TransferResult{
		ID:        uc.idGen.Generate(),
		UserID:    user.ID,
		UserName:  user.Name,
		From:      input.From,
		To:        to,
		Amount:    input.Amount,
		Credited:  outcome.Credited,
		Rate:      outcome.Rate,
		Balances:  outcome.Balances,
		Message:   outcome.Message,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (uc *TransferUseCase) identify(ctx context.Context, input TransferInput) (*domain.User, error) {
	if input.BoundUserID != "" {
		return uc.users.GetByID(ctx, input.BoundUserID)
	}

	return uc.resolver.ResolveUser(ctx, input.UserID, input.UserName)
}

// CheckEligibility probes the transfer preconditions without mutating
// anything. Returns the source account on success.
func (uc *TransferUseCase) CheckEligibility(ctx context.Context, userID string, from domain.Currency, amount decimal.Decimal, cond *domain.RateCondition) (*domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.eval.CheckSource(ctx, user, from, amount, cond); err != nil {
		return nil, err
	}

	acc, _ := user.Account(from)

	return acc, nil
}
