package usecase

import (
	"context"
	"fmt"

	"github.com/iho/fxbank/internal/domain"
)

// UserUseCase serves roster and balance lookups.
type UserUseCase struct {
	users UserRepository
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(users UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Roster lists every user with their accounts.
func (uc *UserUseCase) Roster(ctx context.Context) ([]*domain.User, error) {
	return uc.users.List(ctx)
}

// Lookup resolves a user by explicit ID or by case-insensitive exact
// name match.
func (uc *UserUseCase) Lookup(ctx context.Context, id, name string) (*domain.User, error) {
	if id != "" {
		return uc.users.GetByID(ctx, id)
	}

	if name == "" {
		return nil, domain.ErrIdentityNotFound
	}

	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.MatchesName(name) {
			return u, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrIdentityNotFound, name)
}
