package ports

import (
	"context"

	"github.com/devfolio/project-tracker/internal/core/domain"
)

// ProjectUpdate carries a partial update. Nil fields are left untouched;
// a non-nil empty GithubLink overwrites the stored value with "".
type ProjectUpdate struct {
	Title       *string
	Description *string
	GithubLink  *string
	TechStack   *[]string
}

// ProjectRepository defines persistence operations for projects. Every
// read, update, and delete filters by both record id and owner id; a
// record owned by someone else behaves exactly like a missing record
// (domain.ErrProjectNotFound).
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	// ListByOwner returns the owner's projects, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	FindByOwner(ctx context.Context, id, ownerID string) (*domain.Project, error)
	// UpdateByOwner applies only the fields present in update, always
	// refreshes updated_at, and returns the post-update document.
	UpdateByOwner(ctx context.Context, id, ownerID string, update ProjectUpdate) (*domain.Project, error)
	DeleteByOwner(ctx context.Context, id, ownerID string) error
}
