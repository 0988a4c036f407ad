package messages

import "time"

type Status string

const (
	StatusUnread   Status = "unread"
	StatusRead     Status = "read"
	StatusArchived Status = "archived"
)

// Valid reports whether s is one of the allowed message states.
func (s Status) Valid() bool {
	switch s {
	case StatusUnread, StatusRead, StatusArchived:
		return true
	}
	return false
}

// Message is an inbound contact-form submission. Created by anyone
// (including anonymous visitors), owned and managed by the recipient.
type Message struct {
	ID      string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID  string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name    string  `gorm:"not null" json:"name"`
	Email   string  `gorm:"not null" json:"email"`
	Subject *string `json:"subject"`
	Message string  `gorm:"not null" json:"message"`
	Status  Status  `gorm:"type:varchar(20);not null;default:'unread';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
