package gallery

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

type Item struct {
	ID           string   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string   `gorm:"not null" json:"title"`
	Description  *string  `json:"description"`
	ImageURL     string   `gorm:"not null" json:"image_url"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Category     *string  `json:"category"`
	Tags         []string `gorm:"serializer:json;type:jsonb" json:"tags"`
	Position     int      `gorm:"not null;default:0;index" json:"position"`
	Featured     bool     `gorm:"not null;default:false" json:"featured"`
	Status       Status   `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Item) TableName() string {
	return "gallery_items"
}
