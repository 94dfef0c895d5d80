//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	decimal "github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"

	domain "github.com/iho/fxbank/internal/domain"
)

// GomockUserRepository is a mock of UserRepository interface.
type GomockUserRepository struct {
	ctrl     *gomock.Controller
	recorder *GomockUserRepositoryMockRecorder
	isgomock struct{}
}

// GomockUserRepositoryMockRecorder is the mock recorder for GomockUserRepository.
type GomockUserRepositoryMockRecorder struct {
	mock *GomockUserRepository
}

// NewGomockUserRepository creates a new mock instance.
func NewGomockUserRepository(ctrl *gomock.Controller) *GomockUserRepository {
	mock := &GomockUserRepository{ctrl: ctrl}
	mock.recorder = &GomockUserRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *GomockUserRepository) EXPECT() *GomockUserRepositoryMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *GomockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *GomockUserRepositoryMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*GomockUserRepository)(nil).List), ctx)
}

// GetByID mocks base method.
func (m *GomockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *GomockUserRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*GomockUserRepository)(nil).GetByID), ctx, id)
}

// GomockRateSource is a mock of RateSource interface.
type GomockRateSource struct {
	ctrl     *gomock.Controller
	recorder *GomockRateSourceMockRecorder
	isgomock struct{}
}

// GomockRateSourceMockRecorder is the mock recorder for GomockRateSource.
type GomockRateSourceMockRecorder struct {
	mock *GomockRateSource
}

// NewGomockRateSource creates a new mock instance.
func NewGomockRateSource(ctrl *gomock.Controller) *GomockRateSource {
	mock := &GomockRateSource{ctrl: ctrl}
	mock.recorder = &GomockRateSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *GomockRateSource) EXPECT() *GomockRateSourceMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *GomockRateSource) Get(ctx context.Context) (decimal.Decimal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx)
	ret0, _ := ret[0].(decimal.Decimal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *GomockRateSourceMockRecorder) Get(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*GomockRateSource)(nil).Get), ctx)
}

// Set mocks base method.
func (m *GomockRateSource) Set(ctx context.Context, rate decimal.Decimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, rate)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *GomockRateSourceMockRecorder) Set(ctx, rate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*GomockRateSource)(nil).Set), ctx, rate)
}

// GomockTransferStore is a mock of TransferStore interface.
type GomockTransferStore struct {
	ctrl     *gomock.Controller
	recorder *GomockTransferStoreMockRecorder
	isgomock struct{}
}

// GomockTransferStoreMockRecorder is the mock recorder for GomockTransferStore.
type GomockTransferStoreMockRecorder struct {
	mock *GomockTransferStore
}

// NewGomockTransferStore creates a new mock instance.
func NewGomockTransferStore(ctrl *gomock.Controller) *GomockTransferStore {
	mock := &GomockTransferStore{ctrl: ctrl}
	mock.recorder = &GomockTransferStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *GomockTransferStore) EXPECT() *GomockTransferStoreMockRecorder {
	return m.recorder
}

// Apply mocks base method.
func (m *GomockTransferStore) Apply(ctx context.Context, userID string, from, to domain.Currency, amount, rate decimal.Decimal) (*domain.TransferOutcome, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Apply", ctx, userID, from, to, amount, rate)
	ret0, _ := ret[0].(*domain.TransferOutcome)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Apply indicates an expected call of Apply.
func (mr *GomockTransferStoreMockRecorder) Apply(ctx, userID, from, to, amount, rate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Apply", reflect.TypeOf((*GomockTransferStore)(nil).Apply), ctx, userID, from, to, amount, rate)
}
