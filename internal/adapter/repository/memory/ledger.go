// Package memory holds the process-lifetime ledger state: the seeded
// user roster and the exchange rate. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
)

// Store is the in-memory ledger. All mutation goes through Apply under
// a single write lock, so concurrent transfers against the same account
// serialize at the commit boundary.
type Store struct {
	mu    sync.RWMutex
	users []*domain.User
	index map[string]*domain.User
}

// NewStore creates a Store seeded with deep copies of the given users.
func NewStore(users ...*domain.User) *Store {
	s := &Store{index: make(map[string]*domain.User, len(users))}
	for _, u := range users {
		c := u.Clone()
		s.users = append(s.users, c)
		s.index[c.ID] = c
	}

	return s
}

// List returns the full roster. Callers get copies and cannot mutate
// ledger state through them.
func (s *Store) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}

	return out, nil
}

// GetByID returns one user by ID.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", domain.ErrIdentityNotFound, id)
	}

	return u.Clone(), nil
}

// Apply debits the source account and credits the converted amount to
// the destination as one atomic step; no observer sees one leg without
// the other. Balance sufficiency is re-verified against live state
// immediately before mutating, guarding against staleness between the
// caller's check and this commit.
func (s *Store) Apply(ctx context.Context, userID string, from, to domain.Currency, amount, rate decimal.Decimal) (*domain.TransferOutcome, error) {
	if from == to {
		return nil, domain.ErrSameCurrency
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.index[userID]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", domain.ErrIdentityNotFound, userID)
	}

	fromAcc, ok := u.Account(from)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s account", domain.ErrAccountNotFound, u.Name, from)
	}

	toAcc, ok := u.Account(to)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s account", domain.ErrAccountNotFound, u.Name, to)
	}

	if !fromAcc.CanDebit(amount) {
		return nil, fmt.Errorf("%w: current balance %s %s, requested %s %s",
			domain.ErrInsufficientFunds, fromAcc.Balance, from, amount, from)
	}

	credited, err := domain.Convert(amount, from, to, rate)
	if err != nil {
		return nil, err
	}

	fromAcc.Balance = fromAcc.Balance.Sub(amount)
	toAcc.Balance = toAcc.Balance.Add(credited)

	balances := make([]domain.Account, len(u.Accounts))
	copy(balances, u.Accounts)

	return &domain.TransferOutcome{
		Credited: credited,
		Rate:     rate,
		Balances: balances,
		Message:  fmt.Sprintf("Transferred %s %s to %s %s", amount, from, credited, to),
	}, nil
}
