package projects

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// ProjectMedia rows have no lifecycle of their own; they exist only as
// the ordered media list of one project. Position is dense and unique
// per project after every reconciliation.
type ProjectMedia struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID string    `gorm:"type:uuid;not null;index:idx_project_media_project_pos,priority:1" json:"project_id"`
	Type      MediaType `gorm:"type:varchar(10);not null" json:"type"`
	URL       string    `gorm:"not null" json:"url"`
	Position  int       `gorm:"not null;default:0;index:idx_project_media_project_pos,priority:2" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}

func (ProjectMedia) TableName() string {
	return "project_media"
}
