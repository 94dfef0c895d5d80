package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransferRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		request     TransferRequest
		expectError error
	}{
		{
			name:    "valid with unresolved target",
			request: TransferRequest{From: CurrencyAUD, Amount: decimal.NewFromInt(100)},
		},
		{
			name:    "valid with target and condition",
			request: TransferRequest{From: CurrencyAUD, To: CurrencyUSD, Amount: decimal.NewFromInt(100), Condition: &RateCondition{Operator: RateBelow, Value: decimal.NewFromInt(1)}},
		},
		{
			name:        "zero amount",
			request:     TransferRequest{From: CurrencyAUD, Amount: decimal.Zero},
			expectError: ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			request:     TransferRequest{From: CurrencyAUD, Amount: decimal.NewFromInt(-5)},
			expectError: ErrInvalidAmount,
		},
		{
			name:        "unknown source currency",
			request:     TransferRequest{From: "EUR", Amount: decimal.NewFromInt(100)},
			expectError: ErrInvalidCurrency,
		},
		{
			name:        "unknown target currency",
			request:     TransferRequest{From: CurrencyAUD, To: "EUR", Amount: decimal.NewFromInt(100)},
			expectError: ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()

			if tt.expectError == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.expectError) {
				t.Errorf("expected %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestChoiceResponse_Accepted(t *testing.T) {
	req := &ChoiceRequest{
		Field:   "to_currency",
		Options: []ChoiceOption{{Value: "USD", Label: "USD (Balance: 500)"}},
	}

	tests := []struct {
		name     string
		response ChoiceResponse
		want     bool
	}{
		{name: "accept with in-set value", response: ChoiceResponse{Action: ChoiceAccept, Value: "USD"}, want: true},
		{name: "accept with out-of-set value", response: ChoiceResponse{Action: ChoiceAccept, Value: "EUR"}, want: false},
		{name: "accept with missing value", response: ChoiceResponse{Action: ChoiceAccept}, want: false},
		{name: "decline", response: ChoiceResponse{Action: ChoiceDecline, Value: "USD"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.response.Accepted(req); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
