package handler

import (
	"github.com/devfolio/project-tracker/internal/core/domain"
	"github.com/devfolio/project-tracker/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProjectRequest, ownerID string) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		GithubLink:  req.GithubLink,
		TechStack:   []string(req.TechStack),
	}
}

// toUpdateInput translates the partial request into the update DTO. Title
// and description behave like the registration form: an explicitly empty
// value is treated as absent, since both are required to be non-empty.
// GithubLink keeps the absent/empty distinction.
func toUpdateInput(req updateProjectRequest) ports.ProjectUpdate {
	update := ports.ProjectUpdate{GithubLink: req.GithubLink}
	if req.Title != nil && *req.Title != "" {
		update.Title = req.Title
	}
	if req.Description != nil && *req.Description != "" {
		update.Description = req.Description
	}
	if req.TechStack != nil {
		stack := []string(*req.TechStack)
		update.TechStack = &stack
	}
	return update
}

// --- Domain → HTTP response ---

func toProjectResponse(p *domain.Project) projectResponse {
	stack := p.TechStack
	if stack == nil {
		stack = []string{}
	}
	return projectResponse{
		ID:          p.ID,
		UserID:      p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		GithubLink:  p.GithubLink,
		TechStack:   stack,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toProjectListResponse(projects []domain.Project) []projectResponse {
	out := make([]projectResponse, len(projects))
	for i := range projects {
		out[i] = toProjectResponse(&projects[i])
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
