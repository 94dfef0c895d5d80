package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, code, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Code:    code,
		Message: details,
	})
}

// writeDomainError maps a domain error to status and code and writes it.
func writeDomainError(w http.ResponseWriter, err error, message string) {
	status, code := mapDomainError(err)
	writeError(w, status, code, message, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes and stable
// error codes.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrIdentityNotFound):
		return http.StatusNotFound, "identity_not_found"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account_not_found"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "insufficient_funds"
	case errors.Is(err, domain.ErrSameCurrency):
		return http.StatusBadRequest, "same_currency"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, domain.ErrInvalidCurrency):
		return http.StatusBadRequest, "invalid_currency"
	case errors.Is(err, domain.ErrInvalidCondition):
		return http.StatusBadRequest, "invalid_condition"
	case errors.Is(err, domain.ErrInvalidRate):
		return http.StatusUnprocessableEntity, "invalid_rate"
	case errors.Is(err, domain.ErrRateConditionNotMet):
		return http.StatusUnprocessableEntity, "rate_condition_not_met"
	case errors.Is(err, domain.ErrNoAlternativeAccount):
		return http.StatusUnprocessableEntity, "no_alternative_account"
	case errors.Is(err, domain.ErrResolutionCancelled):
		return http.StatusConflict, "resolution_cancelled"
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "upstream_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
