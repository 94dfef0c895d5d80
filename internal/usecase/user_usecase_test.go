package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/usecase"
	"github.com/iho/fxbank/internal/usecase/mocks"
)

func TestUserUseCase_Roster(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(alice(), bob()))

	users, err := uc.Roster(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestUserUseCase_Lookup(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(alice(), bob()))
	ctx := context.Background()

	u, err := uc.Lookup(ctx, "1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Alice" {
		t.Errorf("expected Alice, got %s", u.Name)
	}

	u, err = uc.Lookup(ctx, "", "BOB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "2" {
		t.Errorf("expected user 2, got %s", u.ID)
	}

	if _, err := uc.Lookup(ctx, "", "nobody"); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Errorf("expected ErrIdentityNotFound, got %v", err)
	}

	if _, err := uc.Lookup(ctx, "", ""); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Errorf("expected ErrIdentityNotFound, got %v", err)
	}
}
