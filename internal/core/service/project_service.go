package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devfolio/project-tracker/internal/core/domain"
	"github.com/devfolio/project-tracker/internal/core/ports"
)

// ListCache abstracts the per-owner project list cache (Redis). It is
// strictly best-effort: cache failures are logged and never surfaced.
type ListCache interface {
	GetList(ctx context.Context, ownerID string) ([]domain.Project, bool, error)
	SetList(ctx context.Context, ownerID string, projects []domain.Project) error
	Invalidate(ctx context.Context, ownerID string) error
}

// ProjectService implements owner-scoped project CRUD.
type ProjectService struct {
	repo   ports.ProjectRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, cache ListCache, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, cache: cache, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		GithubLink:  input.GithubLink,
		TechStack:   input.TechStack,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create project")
		return nil, err
	}

	s.invalidate(ctx, input.OwnerID)
	s.logger.Info().Str("project_id", project.ID).Str("owner_id", project.OwnerID).Msg("project created")
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.GetList(ctx, ownerID)
		if err != nil {
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("project cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	projects, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, ownerID, projects); err != nil {
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("project cache write failed")
		}
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id, ownerID string) (*domain.Project, error) {
	return s.repo.FindByOwner(ctx, id, ownerID)
}

func (s *ProjectService) Update(ctx context.Context, id, ownerID string, update ports.ProjectUpdate) (*domain.Project, error) {
	project, err := s.repo.UpdateByOwner(ctx, id, ownerID, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.repo.DeleteByOwner(ctx, id, ownerID); err != nil {
		return err
	}

	s.invalidate(ctx, ownerID)
	s.logger.Info().Str("project_id", id).Str("owner_id", ownerID).Msg("project deleted")
	return nil
}

// invalidate drops the owner's cached list after any write.
func (s *ProjectService) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("project cache invalidation failed")
	}
}
