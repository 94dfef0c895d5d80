// Package upstream implements the bank collaborator contracts over the
// REST API, so the agent process can run the same orchestration against
// a remote fxbank server.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/adapter/http/middleware"
	"github.com/iho/fxbank/internal/domain"
)

// Client talks to a remote fxbank server. GET requests are retried
// with exponential backoff; mutations are sent once and protected by
// idempotency keys instead.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	maxRetries    uint64
	retryInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithMaxRetries caps GET retry attempts.
func WithMaxRetries(n uint64) Option {
	return func(cl *Client) { cl.maxRetries = n }
}

// WithRetryInterval sets the initial backoff interval.
func WithRetryInterval(d time.Duration) Option {
	return func(cl *Client) { cl.retryInterval = d }
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		maxRetries:    3,
		retryInterval: 500 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// List returns the full roster.
func (c *Client) List(ctx context.Context) ([]*domain.User, error) {
	var users []*dto.UserResponse
	if err := c.getJSON(ctx, "/api/v1/users/", &users); err != nil {
		return nil, err
	}

	out := make([]*domain.User, len(users))
	for i, u := range users {
		out[i] = userToDomain(u)
	}

	return out, nil
}

// GetByID returns one user by ID.
func (c *Client) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user dto.UserResponse
	if err := c.getJSON(ctx, "/api/v1/users/"+id, &user); err != nil {
		return nil, err
	}

	return userToDomain(&user), nil
}

// Get returns the current exchange rate.
func (c *Client) Get(ctx context.Context) (decimal.Decimal, error) {
	var rate dto.RateResponse
	if err := c.getJSON(ctx, "/api/v1/fx/", &rate); err != nil {
		return decimal.Zero, err
	}

	return rate.Rate, nil
}

// Set replaces the exchange rate.
func (c *Client) Set(ctx context.Context, rate decimal.Decimal) error {
	body, err := json.Marshal(dto.SetRateRequest{Rate: rate})
	if err != nil {
		return err
	}

	var out dto.RateResponse

	return c.do(ctx, http.MethodPut, "/api/v1/fx/", body, &out)
}

// Apply commits a transfer on the remote ledger. The rate argument is
// ignored: the server reads its own rate at commit time, which is the
// authoritative one. Each attempt carries a fresh idempotency key so a
// client retry of the same attempt can replay instead of double-spend.
func (c *Client) Apply(ctx context.Context, userID string, from, to domain.Currency, amount, rate decimal.Decimal) (*domain.TransferOutcome, error) {
	body, err := json.Marshal(dto.CreateTransferRequest{
		UserID: userID,
		From:   string(from),
		To:     string(to),
		Amount: amount,
	})
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set(middleware.IdempotencyKeyHeader, ulid.Make().String())

	var resp dto.TransferResponse
	if err := c.doWithHeaders(ctx, http.MethodPost, "/api/v1/transfer/", body, &resp, headers); err != nil {
		return nil, err
	}

	balances := make([]domain.Account, len(resp.Balances))
	for i, a := range resp.Balances {
		balances[i] = domain.Account{Currency: domain.Currency(a.Currency), Balance: a.Balance}
	}

	return &domain.TransferOutcome{
		Credited: resp.Credited,
		Rate:     resp.Rate,
		Balances: balances,
		Message:  resp.Message,
	}, nil
}

// getJSON performs a GET with retries on transient failures.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	op := func() error {
		err := c.do(ctx, http.MethodGet, path, nil, out)
		if err != nil && !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	base := backoff.NewExponentialBackOff()
	base.InitialInterval = c.retryInterval

	policy := backoff.WithContext(
		backoff.WithMaxRetries(base, c.maxRetries),
		ctx,
	)

	return backoff.Retry(op, policy)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	return c.doWithHeaders(ctx, method, path, body, out, nil)
}

func (c *Client) doWithHeaders(ctx context.Context, method, path string, body []byte, out any, headers http.Header) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.Body, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeAPIError turns a structured error body back into the domain
// sentinel it came from.
func decodeAPIError(r io.Reader, status int) error {
	var apiErr dto.ErrorResponse
	if err := json.NewDecoder(r).Decode(&apiErr); err != nil {
		return fmt.Errorf("upstream returned status %d", status)
	}

	sentinel, ok := sentinelByCode[apiErr.Code]
	if !ok {
		return fmt.Errorf("upstream returned status %d: %s", status, apiErr.Error)
	}

	if apiErr.Message != "" {
		return fmt.Errorf("%w: %s", sentinel, trimSentinelPrefix(apiErr.Message, sentinel))
	}

	return sentinel
}

var sentinelByCode = map[string]error{
	"identity_not_found":     domain.ErrIdentityNotFound,
	"account_not_found":      domain.ErrAccountNotFound,
	"insufficient_funds":     domain.ErrInsufficientFunds,
	"same_currency":          domain.ErrSameCurrency,
	"invalid_amount":         domain.ErrInvalidAmount,
	"invalid_currency":       domain.ErrInvalidCurrency,
	"invalid_condition":      domain.ErrInvalidCondition,
	"invalid_rate":           domain.ErrInvalidRate,
	"rate_condition_not_met": domain.ErrRateConditionNotMet,
	"no_alternative_account": domain.ErrNoAlternativeAccount,
	"resolution_cancelled":   domain.ErrResolutionCancelled,
	"unauthorized":           domain.ErrUnauthorized,
}

// trimSentinelPrefix keeps remote detail without repeating the sentinel
// text the wrap will add back.
func trimSentinelPrefix(message string, sentinel error) string {
	prefix := sentinel.Error() + ": "
	if strings.HasPrefix(message, prefix) {
		return message[len(prefix):]
	}

	return message
}

func userToDomain(u *dto.UserResponse) *domain.User {
	accounts := make([]domain.Account, len(u.Accounts))
	for i, a := range u.Accounts {
		accounts[i] = domain.Account{
			Currency: domain.Currency(a.Currency),
			Balance:  a.Balance,
		}
	}

	return &domain.User{ID: u.ID, Name: u.Name, Accounts: accounts}
}

func isRetryable(err error) bool {
	return errors.Is(err, domain.ErrUpstreamUnavailable)
}
