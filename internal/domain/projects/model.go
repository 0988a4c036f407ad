package projects

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

type Project struct {
	ID           string   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string   `gorm:"not null" json:"title"`
	Description  *string  `json:"description"`
	Content      *string  `json:"content"`
	Status       Status   `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Featured     bool     `gorm:"not null;default:false" json:"featured"`
	Technologies []string `gorm:"serializer:json;type:jsonb" json:"technologies"`
	GithubURL    *string  `json:"github_url"`
	LiveURL      *string  `json:"live_url"`
	ImageURL     *string  `json:"image_url"`

	// Only ever written by the increment_view_count database function.
	ViewCount uint `gorm:"not null;default:0" json:"view_count"`

	Media []ProjectMedia `gorm:"constraint:OnDelete:CASCADE;" json:"media,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
