package ports

import (
	"context"

	"github.com/devfolio/project-tracker/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project. OwnerID
// comes from the verified token, never from the request body.
type CreateProjectInput struct {
	OwnerID     string
	Title       string
	Description string
	GithubLink  string
	TechStack   []string
}

// ProjectService defines use-case operations for projects. All lookups are
// scoped to the calling owner.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context, ownerID string) ([]domain.Project, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Project, error)
	Update(ctx context.Context, id, ownerID string, update ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id, ownerID string) error
}
