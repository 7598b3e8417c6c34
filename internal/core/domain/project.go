package domain

import (
	"errors"
	"time"
)

// ErrProjectNotFound covers both "no such project" and "project owned by
// someone else". The two cases are deliberately indistinguishable so that
// responses never leak whether a foreign record exists.
var ErrProjectNotFound = errors.New("project not found")

// Project is the core aggregate root. OwnerID is set at creation and never
// changes; every repository operation filters by it.
type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GithubLink  string    `json:"githubLink"`
	TechStack   []string  `json:"techStack"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
