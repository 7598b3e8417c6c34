package handler

import (
	"encoding/json"
	"time"
)

// techStackField accepts either a JSON array of strings or a bare string.
// A bare string becomes a single entry; it is never split on commas.
type techStackField []string

func (t *techStackField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = techStackField{s}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*t = items
	return nil
}

type createProjectRequest struct {
	Title       string         `json:"title"       validate:"required"`
	Description string         `json:"description" validate:"required"`
	GithubLink  string         `json:"githubLink"`
	TechStack   techStackField `json:"techStack"   validate:"required,min=1,dive,required"`
}

// updateProjectRequest carries a partial update. Pointer fields distinguish
// "absent" from "explicitly empty": an omitted githubLink keeps the stored
// value, an explicit "" clears it.
type updateProjectRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	GithubLink  *string         `json:"githubLink"`
	TechStack   *techStackField `json:"techStack"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GithubLink  string    `json:"githubLink"`
	TechStack   []string  `json:"techStack"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}
