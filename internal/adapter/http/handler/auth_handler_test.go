package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/adapter/repository/memory"
	"github.com/iho/fxbank/internal/infrastructure/auth"
	"github.com/iho/fxbank/internal/usecase"
)

func newAuthHandler() (*AuthHandler, *auth.JWTManager) {
	store := memory.NewStore(memory.SeedUsers()...)
	manager := auth.NewJWTManager("test-secret", time.Minute)

	return NewAuthHandler(usecase.NewUserUseCase(store), manager, nil), manager
}

func TestAuthHandler_Login(t *testing.T) {
	h, manager := newAuthHandler()

	body, _ := json.Marshal(dto.LoginRequest{UserID: "1"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	claims, err := manager.Verify(resp.Token)
	if err != nil {
		t.Fatalf("expected issued token to verify, got %v", err)
	}

	if claims.UserID != "1" || claims.Name != "Alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	h, _ := newAuthHandler()

	body, _ := json.Marshal(dto.LoginRequest{UserID: "42"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
