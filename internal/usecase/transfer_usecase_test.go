package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/usecase"
	"github.com/iho/fxbank/internal/usecase/mocks"
)

type transferFixture struct {
	users    *mocks.MockUserRepository
	rates    *mocks.MockRateSource
	store    *mocks.MockTransferStore
	elicitor *mocks.MockElicitor
	uc       *usecase.TransferUseCase
}

func newTransferFixture(users ...*domain.User) *transferFixture {
	f := &transferFixture{
		users:    mocks.NewMockUserRepository(users...),
		rates:    mocks.NewMockRateSource(decimal.RequireFromString("0.68")),
		store:    mocks.NewMockTransferStore(),
		elicitor: mocks.NewMockElicitor(),
	}

	eval := usecase.NewEvaluator(f.rates)
	resolver := usecase.NewResolver(f.users, f.elicitor)
	f.uc = usecase.NewTransferUseCase(f.users, f.rates, f.store, resolver, eval, mocks.NewMockIDGenerator())

	return f
}

func TestTransferUseCase_Transfer(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.TransferInput
		errorType error
	}{
		{
			name: "successful cross-currency transfer",
			input: usecase.TransferInput{
				UserID: "1",
				From:   domain.CurrencyAUD,
				To:     domain.CurrencyUSD,
				Amount: decimal.NewFromInt(100),
			},
		},
		{
			name: "insufficient funds",
			input: usecase.TransferInput{
				UserID: "1",
				From:   domain.CurrencyAUD,
				To:     domain.CurrencyUSD,
				Amount: decimal.NewFromInt(2000),
			},
			errorType: domain.ErrInsufficientFunds,
		},
		{
			name: "same currency",
			input: usecase.TransferInput{
				UserID: "1",
				From:   domain.CurrencyAUD,
				To:     domain.CurrencyAUD,
				Amount: decimal.NewFromInt(100),
			},
			errorType: domain.ErrSameCurrency,
		},
		{
			name: "rate condition below not met at 0.68",
			input: usecase.TransferInput{
				UserID:    "1",
				From:      domain.CurrencyAUD,
				To:        domain.CurrencyUSD,
				Amount:    decimal.NewFromInt(100),
				Condition: &domain.RateCondition{Operator: domain.RateBelow, Value: decimal.RequireFromString("0.60")},
			},
			errorType: domain.ErrRateConditionNotMet,
		},
		{
			name: "zero amount",
			input: usecase.TransferInput{
				UserID: "1",
				From:   domain.CurrencyAUD,
				To:     domain.CurrencyUSD,
				Amount: decimal.Zero,
			},
			errorType: domain.ErrInvalidAmount,
		},
		{
			name: "unknown user",
			input: usecase.TransferInput{
				UserID: "42",
				From:   domain.CurrencyAUD,
				To:     domain.CurrencyUSD,
				Amount: decimal.NewFromInt(100),
			},
			errorType: domain.ErrIdentityNotFound,
		},
		{
			name: "unknown user name",
			input: usecase.TransferInput{
				UserName: "Mallory",
				From:     domain.CurrencyAUD,
				To:       domain.CurrencyUSD,
				Amount:   decimal.NewFromInt(100),
			},
			errorType: domain.ErrIdentityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferFixture(alice(), bob())

			result, err := f.uc.Transfer(context.Background(), tt.input)

			if tt.errorType != nil {
				if !errors.Is(err, tt.errorType) {
					t.Fatalf("expected %v, got %v", tt.errorType, err)
				}
				if f.store.Calls != 0 {
					t.Error("rejected transfer must not reach the store")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !result.Credited.Equal(decimal.RequireFromString("68")) {
				t.Errorf("expected credited 68, got %s", result.Credited)
			}

			if result.ID == "" {
				t.Error("expected a result ID")
			}
		})
	}
}

func TestTransferUseCase_Transfer_ElicitsTargetCurrency(t *testing.T) {
	f := newTransferFixture(alice())
	f.elicitor.ElicitFunc = func(ctx context.Context, req domain.ChoiceRequest) (domain.ChoiceResponse, error) {
		return domain.ChoiceResponse{Action: domain.ChoiceAccept, Value: "USD"}, nil
	}

	result, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
		UserID: "1",
		From:   domain.CurrencyAUD,
		Amount: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.To != domain.CurrencyUSD {
		t.Errorf("expected USD, got %s", result.To)
	}

	if len(f.elicitor.Requests) != 1 {
		t.Errorf("expected one elicitation round, got %d", len(f.elicitor.Requests))
	}
}

func TestTransferUseCase_Transfer_CancelledElicitation(t *testing.T) {
	f := newTransferFixture(alice())

	_, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
		UserID: "1",
		From:   domain.CurrencyAUD,
		Amount: decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrResolutionCancelled) {
		t.Fatalf("expected ErrResolutionCancelled, got %v", err)
	}

	if f.store.Calls != 0 {
		t.Error("cancelled transfer must not mutate")
	}
}

func TestTransferUseCase_Transfer_NoAlternativeAccount(t *testing.T) {
	carol := &domain.User{
		ID:       "3",
		Name:     "Carol",
		Accounts: []domain.Account{{Currency: domain.CurrencyAUD, Balance: decimal.NewFromInt(100)}},
	}
	f := newTransferFixture(carol)

	_, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
		UserID: "3",
		From:   domain.CurrencyAUD,
		Amount: decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrNoAlternativeAccount) {
		t.Fatalf("expected ErrNoAlternativeAccount, got %v", err)
	}

	if len(f.elicitor.Requests) != 0 {
		t.Error("empty choice set must not prompt")
	}
}

func TestTransferUseCase_Transfer_InsufficientBeforeElicitation(t *testing.T) {
	f := newTransferFixture(alice())

	_, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
		UserID: "1",
		From:   domain.CurrencyAUD,
		Amount: decimal.NewFromInt(5000),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if len(f.elicitor.Requests) != 0 {
		t.Error("underfunded transfer must not prompt for a target")
	}
}

func TestTransferUseCase_Transfer_RevalidatesAfterRoundTrip(t *testing.T) {
	f := newTransferFixture(alice())
	f.elicitor.ElicitFunc = func(ctx context.Context, req domain.ChoiceRequest) (domain.ChoiceResponse, error) {
		// Balance drops while the transfer is suspended on the choice.
		f.users.SetBalance("1", domain.CurrencyAUD, decimal.NewFromInt(50))
		return domain.ChoiceResponse{Action: domain.ChoiceAccept, Value: "USD"}, nil
	}

	_, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
		UserID: "1",
		From:   domain.CurrencyAUD,
		Amount: decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds after re-check, got %v", err)
	}

	if f.store.Calls != 0 {
		t.Error("stale transfer must not reach the store")
	}
}

func TestTransferUseCase_Transfer_BoundIdentitySkipsElicitation(t *testing.T) {
	f := newTransferFixture(alice(), bob())

	result, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
		BoundUserID: "2",
		From:        domain.CurrencyUSD,
		To:          domain.CurrencyAUD,
		Amount:      decimal.NewFromInt(68),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.UserName != "Bob" {
		t.Errorf("expected Bob, got %s", result.UserName)
	}

	if !result.Credited.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected credited 100, got %s", result.Credited)
	}

	if len(f.elicitor.Requests) != 0 {
		t.Error("bound identity must not elicit")
	}
}

func TestTransferUseCase_CheckEligibility(t *testing.T) {
	f := newTransferFixture(alice())
	ctx := context.Background()

	acc, err := f.uc.CheckEligibility(ctx, "1", domain.CurrencyAUD, decimal.NewFromInt(100), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !acc.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected balance 1000, got %s", acc.Balance)
	}

	_, err = f.uc.CheckEligibility(ctx, "1", domain.CurrencyAUD, decimal.NewFromInt(2000), nil)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}

	_, err = f.uc.CheckEligibility(ctx, "1", domain.CurrencyAUD, decimal.NewFromInt(100),
		&domain.RateCondition{Operator: domain.RateBelow, Value: decimal.RequireFromString("0.60")})
	if !errors.Is(err, domain.ErrRateConditionNotMet) {
		t.Errorf("expected ErrRateConditionNotMet, got %v", err)
	}

	if f.store.Calls != 0 {
		t.Error("eligibility probe must not mutate")
	}
}
