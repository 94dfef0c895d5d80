package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/adapter/http/middleware"
	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/infrastructure/metrics"
	"github.com/iho/fxbank/internal/usecase"
)

// TransferHandler handles transfer HTTP requests. The HTTP surface is
// non-interactive: both currencies must be named up front, and missing
// parameter resolution belongs to the agent protocol.
type TransferHandler struct {
	transferUC *usecase.TransferUseCase
	metrics    *metrics.Metrics
}

// NewTransferHandler creates a new TransferHandler. Metrics may be nil.
func NewTransferHandler(transferUC *usecase.TransferUseCase, m *metrics.Metrics) *TransferHandler {
	return &TransferHandler{transferUC: transferUC, metrics: m}
}

// Create executes a transfer between two of a user's accounts.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", err.Error())
		return
	}

	if req.To == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "to_currency is required", "")
		return
	}

	input := req.ToUseCaseInput()
	if claims, ok := middleware.GetClaimsFromContext(r.Context()); ok {
		input.BoundUserID = claims.UserID
	}

	start := time.Now()
	result, err := h.transferUC.Transfer(r.Context(), input)
	if err != nil {
		if h.metrics != nil {
			_, code := mapDomainError(err)
			h.metrics.TransfersAborted.WithLabelValues(code).Inc()
		}
		writeDomainError(w, err, "failed to execute transfer")

		return
	}

	if h.metrics != nil {
		h.metrics.TransfersCommitted.Inc()
		h.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		h.metrics.TransferAmount.Observe(result.Amount.InexactFloat64())
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromDomain(result))
}

// Check probes transfer preconditions without moving money.
func (h *TransferHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckEligibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", err.Error())
		return
	}

	userID := req.UserID
	if claims, ok := middleware.GetClaimsFromContext(r.Context()); ok {
		userID = claims.UserID
	}

	acc, err := h.transferUC.CheckEligibility(r.Context(), userID, domain.Currency(req.From), req.Amount, req.ToCondition())
	if err != nil {
		status, code := mapDomainError(err)
		if status >= http.StatusInternalServerError {
			writeError(w, status, code, "failed to check eligibility", err.Error())
			return
		}

		// Precondition failures are a negative answer, not a transport
		// error.
		writeJSON(w, http.StatusOK, dto.EligibilityResponse{
			Eligible: false,
			Currency: req.From,
			Reason:   err.Error(),
		})

		return
	}

	writeJSON(w, http.StatusOK, dto.EligibilityResponse{
		Eligible: true,
		Currency: string(acc.Currency),
		Balance:  acc.Balance,
	})
}
