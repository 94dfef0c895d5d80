package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/domain"
)

// AccountResponse represents a currency account in API responses.
type AccountResponse struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Accounts []AccountResponse `json:"accounts"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	accounts := make([]AccountResponse, len(u.Accounts))
	for i, a := range u.Accounts {
		accounts[i] = AccountResponse{
			Currency: string(a.Currency),
			Balance:  a.Balance,
		}
	}

	return &UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Accounts: accounts,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// RateResponse represents the exchange rate in API responses.
type RateResponse struct {
	Base  string          `json:"base"`
	Quote string          `json:"quote"`
	Rate  decimal.Decimal `json:"rate"`
}

// RateFromDomain wraps a rate value with its fixed currency pair.
func RateFromDomain(rate decimal.Decimal) *RateResponse {
	return &RateResponse{
		Base:  string(domain.CurrencyAUD),
		Quote: string(domain.CurrencyUSD),
		Rate:  rate,
	}
}

// TransferResponse represents a committed transfer in API responses.
type TransferResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	UserName  string            `json:"user_name"`
	From      string            `json:"from_currency"`
	To        string            `json:"to_currency"`
	Amount    decimal.Decimal   `json:"amount"`
	Credited  decimal.Decimal   `json:"credited"`
	Rate      decimal.Decimal   `json:"rate"`
	Balances  []AccountResponse `json:"balances"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
}

// TransferFromDomain converts a domain transfer result to a response.
func TransferFromDomain(t *domain.TransferResult) *TransferResponse {
	balances := make([]AccountResponse, len(t.Balances))
	for i, a := range t.Balances {
		balances[i] = AccountResponse{
			Currency: string(a.Currency),
			Balance:  a.Balance,
		}
	}

	return &TransferResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		UserName:  t.UserName,
		From:      string(t.From),
		To:        string(t.To),
		Amount:    t.Amount,
		Credited:  t.Credited,
		Rate:      t.Rate,
		Balances:  balances,
		Message:   t.Message,
		CreatedAt: t.CreatedAt,
	}
}

// EligibilityResponse reports the outcome of an eligibility check.
type EligibilityResponse struct {
	Eligible bool            `json:"eligible"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Reason   string          `json:"reason,omitempty"`
}

// LoginResponse carries an issued token.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses. Code carries a
// stable machine-readable identifier so clients can map errors back to
// domain conditions without parsing messages.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
