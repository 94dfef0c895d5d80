package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
)

// Resolver fills in missing transfer parameters through elicitation.
// One round per missing field; cancellation is terminal for the
// transfer attempt.
type Resolver struct {
	users    UserRepository
	elicitor Elicitor
}

// NewResolver creates a new Resolver.
func NewResolver(users UserRepository, elicitor Elicitor) *Resolver {
	return &Resolver{users: users, elicitor: elicitor}
}

// ResolveUser resolves the transfer's identity: an explicit ID wins,
// then a case-insensitive exact name match, then an elicited choice
// over the full roster.
func (r *Resolver) ResolveUser(ctx context.Context, id, name string) (*domain.User, error) {
	if id != "" {
		return r.users.GetByID(ctx, id)
	}

	if name != "" {
		users, err := r.users.List(ctx)
		if err != nil {
			return nil, err
		}

		for _, u := range users {
			if u.MatchesName(name) {
				return u, nil
			}
		}

		return nil, fmt.Errorf("%w: %q", domain.ErrIdentityNotFound, name)
	}

	return r.elicitUser(ctx)
}

func (r *Resolver) elicitUser(ctx context.Context) (*domain.User, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, domain.ErrIdentityNotFound
	}

	options := make([]domain.ChoiceOption, len(users))
	for i, u := range users {
		options[i] = domain.ChoiceOption{
			Value: u.ID,
			Label: fmt.Sprintf("%s (ID: %s)", u.Name, u.ID),
		}
	}

	req := domain.ChoiceRequest{
		Field:   "user_id",
		Message: "Please select the user for this transfer:",
		Options: options,
	}

	resp, err := r.elicitor.Elicit(ctx, req)
	if err != nil {
		return nil, err
	}

	if !resp.Accepted(&req) {
		return nil, fmt.Errorf("%w: no user selected", domain.ErrResolutionCancelled)
	}

	return r.users.GetByID(ctx, resp.Value)
}

// ResolveTargetCurrency elicits the destination currency from the
// user's other accounts. An empty choice set fails immediately,
// without prompting.
func (r *Resolver) ResolveTargetCurrency(ctx context.Context, user *domain.User, from domain.Currency, amount decimal.Decimal) (domain.Currency, error) {
	alts := user.AlternativeCurrencies(from)
	if len(alts) == 0 {
		return "", domain.ErrNoAlternativeAccount
	}

	options := make([]domain.ChoiceOption, len(alts))
	for i, c := range alts {
		label := string(c)
		if acc, ok := user.Account(c); ok {
			label = fmt.Sprintf("%s (Balance: %s)", c, acc.Balance)
		}

		options[i] = domain.ChoiceOption{Value: string(c), Label: label}
	}

	req := domain.ChoiceRequest{
		Field:   "to_currency",
		Message: fmt.Sprintf("Transfer %s %s to which currency account?", amount, from),
		Options: options,
	}

	resp, err := r.elicitor.Elicit(ctx, req)
	if err != nil {
		return "", err
	}

	if !resp.Accepted(&req) {
		return "", fmt.Errorf("%w: no target currency selected", domain.ErrResolutionCancelled)
	}

	return domain.Currency(resp.Value), nil
}
