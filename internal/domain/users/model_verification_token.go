package users

import "time"

type VerificationToken struct {
	ID     uint   `gorm:"primaryKey"`
	UserID string `gorm:"type:uuid;not null;index"`
	Token  string `gorm:"not null;uniqueIndex"`

	// "email_verify" or "password_reset"
	Type      string    `gorm:"type:varchar(20);not null;default:'email_verify'"`
	ExpiresAt time.Time `gorm:"not null"`

	CreatedAt time.Time
}
