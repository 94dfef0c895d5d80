package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/usecase"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users []*domain.User

	ListFunc    func(ctx context.Context) ([]*domain.User, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.User, error)
}

func NewMockUserRepository(users ...*domain.User) *MockUserRepository {
	return &MockUserRepository{users: users}
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.User, len(m.users))
	for i, u := range m.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: id %q", domain.ErrIdentityNotFound, id)
}

// SetBalance overwrites a user's balance in one currency. Test helper
// for simulating concurrent balance movement between check and commit.
func (m *MockUserRepository) SetBalance(userID string, currency domain.Currency, balance decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID != userID {
			continue
		}
		if acc, ok := u.Account(currency); ok {
			acc.Balance = balance
		}
	}
}

// MockRateSource is a mock implementation of RateSource.
type MockRateSource struct {
	mu   sync.RWMutex
	rate decimal.Decimal

	GetFunc func(ctx context.Context) (decimal.Decimal, error)
	SetFunc func(ctx context.Context, rate decimal.Decimal) error
}

func NewMockRateSource(rate decimal.Decimal) *MockRateSource {
	return &MockRateSource{rate: rate}
}

func (m *MockRateSource) Get(ctx context.Context) (decimal.Decimal, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rate, nil
}

func (m *MockRateSource) Set(ctx context.Context, rate decimal.Decimal) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, rate)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rate = rate
	return nil
}

// MockTransferStore is a mock implementation of TransferStore.
type MockTransferStore struct {
	ApplyFunc func(ctx context.Context, userID string, from, to domain.Currency, amount, rate decimal.Decimal) (*domain.TransferOutcome, error)

	mu    sync.Mutex
	Calls int
}

func NewMockTransferStore() *MockTransferStore {
	return &MockTransferStore{}
}

func (m *MockTransferStore) Apply(ctx context.Context, userID string, from, to domain.Currency, amount, rate decimal.Decimal) (*domain.TransferOutcome, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, userID, from, to, amount, rate)
	}

	credited, err := domain.Convert(amount, from, to, rate)
	if err != nil {
		return nil, err
	}

	return &domain.TransferOutcome{
		Credited: credited,
		Rate:     rate,
		Message:  fmt.Sprintf("Transferred %s %s to %s %s", amount, from, credited, to),
	}, nil
}

// MockElicitor is a mock implementation of Elicitor. Without an
// override it declines every request.
type MockElicitor struct {
	ElicitFunc func(ctx context.Context, req domain.ChoiceRequest) (domain.ChoiceResponse, error)

	mu       sync.Mutex
	Requests []domain.ChoiceRequest
}

func NewMockElicitor() *MockElicitor {
	return &MockElicitor{}
}

func (m *MockElicitor) Elicit(ctx context.Context, req domain.ChoiceRequest) (domain.ChoiceResponse, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.ElicitFunc != nil {
		return m.ElicitFunc(ctx, req)
	}
	return domain.ChoiceResponse{Action: domain.ChoiceDecline}, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu sync.Mutex
	n  int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("id-%d", m.n)
}

var _ usecase.UserRepository = (*MockUserRepository)(nil)
var _ usecase.RateSource = (*MockRateSource)(nil)
var _ usecase.TransferStore = (*MockTransferStore)(nil)
var _ usecase.Elicitor = (*MockElicitor)(nil)
var _ usecase.IDGenerator = (*MockIDGenerator)(nil)
