package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/infrastructure/metrics"
	"github.com/iho/fxbank/internal/usecase"
)

// RateHandler handles exchange rate HTTP requests.
type RateHandler struct {
	rateUC  *usecase.RateUseCase
	metrics *metrics.Metrics
}

// NewRateHandler creates a new RateHandler. Metrics may be nil.
func NewRateHandler(rateUC *usecase.RateUseCase, m *metrics.Metrics) *RateHandler {
	return &RateHandler{rateUC: rateUC, metrics: m}
}

// Get returns the current AUD to USD rate.
func (h *RateHandler) Get(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rateUC.Get(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to get rate")
		return
	}

	writeJSON(w, http.StatusOK, dto.RateFromDomain(rate))
}

// Set replaces the rate and echoes the stored value.
func (h *RateHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req dto.SetRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", err.Error())
		return
	}

	rate, err := h.rateUC.Set(r.Context(), req.Rate)
	if err != nil {
		writeDomainError(w, err, "failed to set rate")
		return
	}

	if h.metrics != nil {
		h.metrics.RateUpdates.Inc()
		h.metrics.ExchangeRate.Set(rate.InexactFloat64())
	}

	writeJSON(w, http.StatusOK, dto.RateFromDomain(rate))
}
