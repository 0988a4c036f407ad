package site

import "time"

// Settings is the site-wide configuration singleton. The boolean
// primary key is constrained to true so the table can never hold more
// than one row; writers update, never insert.
type Settings struct {
	ID                bool    `gorm:"primaryKey;default:true;check:id" json:"-"`
	ShowViewCounts    bool    `gorm:"not null;default:true" json:"show_view_counts"`
	ShowFeaturedFirst bool    `gorm:"not null;default:true" json:"show_featured_first"`
	EnableBlog        bool    `gorm:"not null;default:false" json:"enable_blog"`
	EnableGallery     bool    `gorm:"not null;default:false" json:"enable_gallery"`
	MetaTitle         *string `json:"meta_title"`
	MetaDescription   *string `json:"meta_description"`
	ResumeURL         *string `json:"resume_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Settings) TableName() string {
	return "site_settings"
}

type SocialLink struct {
	ID       string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Platform string  `gorm:"not null" json:"platform"`
	Label    *string `json:"label"`
	URL      string  `gorm:"not null" json:"url"`
	Position int     `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
