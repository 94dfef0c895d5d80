package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/adapter/http/middleware"
	"github.com/iho/fxbank/internal/usecase"
)

// UserHandler handles roster and balance HTTP requests.
type UserHandler struct {
	userUC *usecase.UserUseCase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// List returns every user with account balances.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUC.Roster(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to list users")
		return
	}

	writeJSON(w, http.StatusOK, dto.UsersFromDomain(users))
}

// Get retrieves a user by the ID path parameter. Name lookups go
// through Lookup.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing user ID", "")
		return
	}

	user, err := h.userUC.Lookup(r.Context(), id, "")
	if err != nil {
		writeDomainError(w, err, "failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Lookup resolves a user by id or name query parameters.
func (h *UserHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	name := r.URL.Query().Get("name")

	user, err := h.userUC.Lookup(r.Context(), id, name)
	if err != nil {
		writeDomainError(w, err, "failed to look up user")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Me returns the authenticated caller's user record.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required", "")
		return
	}

	user, err := h.userUC.Lookup(r.Context(), claims.UserID, "")
	if err != nil {
		writeDomainError(w, err, "failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
