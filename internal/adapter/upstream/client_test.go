package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/adapter/http/middleware"
	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/usecase"
)

var (
	_ usecase.UserRepository = (*Client)(nil)
	_ usecase.RateSource     = (*Client)(nil)
	_ usecase.TransferStore  = (*Client)(nil)
)

func TestClient_GetByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}

		json.NewEncoder(w).Encode(dto.UserResponse{
			ID:   "1",
			Name: "Alice",
			Accounts: []dto.AccountResponse{
				{Currency: "AUD", Balance: decimal.NewFromInt(1000)},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	user, err := client.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Name != "Alice" || len(user.Accounts) != 1 || user.Accounts[0].Currency != domain.CurrencyAUD {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestClient_GetByID_MapsErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{
			Error:   "failed to get user",
			Code:    "identity_not_found",
			Message: `user not found: id "42"`,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetByID(context.Background(), "42")
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestClient_Get_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		json.NewEncoder(w).Encode(dto.RateResponse{Base: "AUD", Quote: "USD", Rate: decimal.RequireFromString("0.68")})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithMaxRetries(5), WithRetryInterval(time.Millisecond))

	rate, err := client.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rate.Equal(decimal.RequireFromString("0.68")) {
		t.Fatalf("expected 0.68, got %s", rate)
	}

	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestClient_Get_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithMaxRetries(2), WithRetryInterval(time.Millisecond))

	_, err := client.Get(context.Background())
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}

	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts (1 + 2 retries), got %d", calls.Load())
	}
}

func TestClient_Apply(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/transfer/" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req dto.CreateTransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		if req.UserID != "1" || req.From != "AUD" || req.To != "USD" {
			t.Fatalf("unexpected request body: %+v", req)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.TransferResponse{
			Credited: decimal.NewFromInt(68),
			Rate:     decimal.RequireFromString("0.68"),
			Message:  "Transferred 100 AUD to 68 USD",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	outcome, err := client.Apply(context.Background(), "1",
		domain.CurrencyAUD, domain.CurrencyUSD,
		decimal.NewFromInt(100), decimal.RequireFromString("0.68"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !outcome.Credited.Equal(decimal.NewFromInt(68)) {
		t.Fatalf("expected credited 68, got %s", outcome.Credited)
	}
}

func TestClient_Apply_SendsIdempotencyKey(t *testing.T) {
	keys := make(chan string, 2)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys <- r.Header.Get(middleware.IdempotencyKeyHeader)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.TransferResponse{Credited: decimal.NewFromInt(68)})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	for i := 0; i < 2; i++ {
		if _, err := client.Apply(context.Background(), "1",
			domain.CurrencyAUD, domain.CurrencyUSD,
			decimal.NewFromInt(100), decimal.RequireFromString("0.68")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	first, second := <-keys, <-keys
	if first == "" || second == "" {
		t.Fatalf("expected idempotency keys on every mutation, got %q and %q", first, second)
	}

	// Separate attempts are separate transfers and must not share a key.
	if first == second {
		t.Fatalf("expected distinct keys per attempt, both were %q", first)
	}
}

func TestClient_Apply_DoesNotRetry(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithMaxRetries(5), WithRetryInterval(time.Millisecond))

	_, err := client.Apply(context.Background(), "1",
		domain.CurrencyAUD, domain.CurrencyUSD,
		decimal.NewFromInt(100), decimal.RequireFromString("0.68"))
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}

	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt for mutations, got %d", calls.Load())
	}
}

func TestClient_Apply_MapsDomainRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(dto.ErrorResponse{
			Error:   "failed to execute transfer",
			Code:    "insufficient_funds",
			Message: "insufficient funds: current balance 1000 AUD, requested 2000 AUD",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Apply(context.Background(), "1",
		domain.CurrencyAUD, domain.CurrencyUSD,
		decimal.NewFromInt(2000), decimal.RequireFromString("0.68"))
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}
