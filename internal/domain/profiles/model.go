package profiles

import "time"

// Profile is the public identity shown on the site. Shares its primary
// key with the auth user; created automatically on signup.
type Profile struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName    *string `json:"full_name"`
	AvatarURL   *string `json:"avatar_url"`
	Title       *string `json:"title"`
	Bio         *string `json:"bio"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`
	IsAdmin     bool    `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
