package ports

import (
	"context"

	"github.com/devfolio/project-tracker/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns a signed token alongside it.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	// Login returns domain.ErrInvalidCredentials for an unknown email and
	// for a wrong password alike.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
