package domain

import "errors"

var (
	// Identity errors
	ErrIdentityNotFound = errors.New("user not found")

	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Transfer errors
	ErrSameCurrency        = errors.New("source and target accounts must be different")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidCurrency     = errors.New("unsupported currency")
	ErrInvalidCondition    = errors.New("invalid rate condition")
	ErrInvalidRate         = errors.New("exchange rate unusable for conversion")
	ErrRateConditionNotMet = errors.New("rate condition not met")

	// Elicitation errors
	ErrNoAlternativeAccount = errors.New("no other currency accounts available for transfer")
	ErrResolutionCancelled  = errors.New("transfer cancelled")

	// Collaborator errors
	ErrUpstreamUnavailable = errors.New("upstream ledger call failed")
)

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
