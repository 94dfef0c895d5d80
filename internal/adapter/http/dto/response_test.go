package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
)

func TestUserFromDomain(t *testing.T) {
	u := &domain.User{
		ID:   "1",
		Name: "Alice",
		Accounts: []domain.Account{
			{Currency: domain.CurrencyAUD, Balance: decimal.NewFromInt(1000)},
			{Currency: domain.CurrencyUSD, Balance: decimal.NewFromInt(500)},
		},
	}

	resp := UserFromDomain(u)
	if resp.ID != "1" || resp.Name != "Alice" || len(resp.Accounts) != 2 {
		t.Fatalf("unexpected user response: %+v", resp)
	}

	if resp.Accounts[0].Currency != "AUD" || !resp.Accounts[0].Balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected account response: %+v", resp.Accounts[0])
	}

	list := UsersFromDomain([]*domain.User{u})
	if len(list) != 1 || list[0].ID != u.ID {
		t.Fatalf("UsersFromDomain returned %+v", list)
	}
}

func TestRateFromDomain(t *testing.T) {
	resp := RateFromDomain(decimal.RequireFromString("0.68"))

	if resp.Base != "AUD" || resp.Quote != "USD" {
		t.Fatalf("unexpected pair: %+v", resp)
	}

	if !resp.Rate.Equal(decimal.RequireFromString("0.68")) {
		t.Fatalf("unexpected rate: %s", resp.Rate)
	}
}

func TestTransferFromDomain(t *testing.T) {
	now := time.Now().UTC()
	result := &domain.TransferResult{
		ID:       "tx-1",
		UserID:   "1",
		UserName: "Alice",
		From:     domain.CurrencyAUD,
		To:       domain.CurrencyUSD,
		Amount:   decimal.NewFromInt(100),
		Credited: decimal.NewFromInt(68),
		Rate:     decimal.RequireFromString("0.68"),
		Balances: []domain.Account{
			{Currency: domain.CurrencyAUD, Balance: decimal.NewFromInt(900)},
		},
		Message:   "Transferred 100 AUD to 68 USD",
		CreatedAt: now,
	}

	resp := TransferFromDomain(result)
	if resp.ID != "tx-1" || resp.From != "AUD" || resp.To != "USD" {
		t.Fatalf("unexpected transfer response: %+v", resp)
	}

	if !resp.Credited.Equal(decimal.NewFromInt(68)) || resp.Message != result.Message {
		t.Fatalf("unexpected outcome fields: %+v", resp)
	}

	if len(resp.Balances) != 1 || resp.Balances[0].Currency != "AUD" {
		t.Fatalf("unexpected balances: %+v", resp.Balances)
	}
}
