package projects

import "portfolio-app/internal/domain/projects"

// ---------- requests

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  *string  `json:"description"`
	Content      *string  `json:"content"`
	Status       *string  `json:"status" binding:"omitempty,oneof=draft published"`
	Featured     *bool    `json:"featured"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	ImageURL     *string  `json:"image_url"`
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Content      *string   `json:"content"`
	Status       *string   `json:"status" binding:"omitempty,oneof=draft published"`
	Featured     *bool     `json:"featured"`
	Technologies *[]string `json:"technologies"`
	GithubURL    *string   `json:"github_url"`
	LiveURL      *string   `json:"live_url"`
	ImageURL     *string   `json:"image_url"`
}

// MediaInput is one entry of the submitted media list. Entries with an
// ID refer to persisted rows; entries without one are new. The order of
// the submitted list is the desired final order.
type MediaInput struct {
	ID   *string            `json:"id"`
	Type projects.MediaType `json:"type" binding:"required,oneof=image video"`
	URL  string             `json:"url" binding:"required"`
}
