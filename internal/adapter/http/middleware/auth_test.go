package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/infrastructure/auth"
)

func issueToken(t *testing.T, manager *auth.JWTManager) string {
	t.Helper()

	token, err := manager.Generate(&domain.User{ID: "1", Name: "Alice"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return token
}

func TestAuthMiddleware(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Minute)

	handler := AuthMiddleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok || claims.UserID != "1" {
			t.Fatalf("expected claims in context, got %+v", claims)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, manager))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Minute)

	handler := AuthMiddleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"invalid token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestOptionalAuth_ContinuesWithoutToken(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Minute)
	called := false

	handler := OptionalAuth(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := GetClaimsFromContext(r.Context()); ok {
			t.Fatal("expected no claims without a token")
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/transfer", nil))

	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestOptionalAuth_ExtractsValidToken(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Minute)

	handler := OptionalAuth(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok || claims.Name != "Alice" {
			t.Fatalf("expected claims in context, got %+v", claims)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/transfer", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, manager))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
