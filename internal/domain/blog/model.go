package blog

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

type Post struct {
	ID            string   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string   `gorm:"not null" json:"title"`
	Slug          string   `gorm:"not null;uniqueIndex:idx_blog_posts_slug" json:"slug"`
	Excerpt       *string  `json:"excerpt"`
	Content       string   `gorm:"not null" json:"content"`
	CoverImageURL *string  `json:"cover_image_url"`
	Status        Status   `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Featured      bool     `gorm:"not null;default:false" json:"featured"`
	Tags          []string `gorm:"serializer:json;type:jsonb" json:"tags"`

	// Only ever written by the increment_blog_view_count database function.
	ViewCount uint `gorm:"not null;default:0" json:"view_count"`

	// Set the first time the post transitions to published, never
	// cleared by a later edit.
	PublishedAt *time.Time `json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "blog_posts"
}
