package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/infrastructure/auth"
	"github.com/iho/fxbank/internal/infrastructure/metrics"
	"github.com/iho/fxbank/internal/usecase"
)

// AuthHandler issues tokens for seeded users. There are no passwords;
// the roster is fixed and the token only binds an identity to later
// requests.
type AuthHandler struct {
	userUC     *usecase.UserUseCase
	jwtManager *auth.JWTManager
	metrics    *metrics.Metrics
}

// NewAuthHandler creates a new auth handler. Metrics may be nil.
func NewAuthHandler(userUC *usecase.UserUseCase, jwtManager *auth.JWTManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
		metrics:    m,
	}
}

// Login exchanges a known user ID for a JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Lookup(r.Context(), req.UserID, "")
	if err != nil {
		h.countAuth("failure")
		writeError(w, http.StatusUnauthorized, "unauthorized", "unknown user", "")

		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		h.countAuth("error")
		writeError(w, http.StatusInternalServerError, "internal", "failed to generate token", err.Error())

		return
	}

	h.countAuth("success")
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

func (h *AuthHandler) countAuth(status string) {
	if h.metrics != nil {
		h.metrics.AuthAttempts.WithLabelValues(status).Inc()
	}
}
