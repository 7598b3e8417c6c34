package ports

import (
	"context"

	"github.com/devfolio/project-tracker/internal/core/domain"
)

// UserRepository defines the interface for account persistence. Accounts are
// created once and never updated or deleted.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// email is already registered; no partial record is left behind.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
