package models

import (
	"time"

	"github.com/google/uuid"
)

// Moderator lives in its own email namespace, separate from users.
// A moderator may optionally point back at a user account.
type Moderator struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       *uuid.UUID `gorm:"type:uuid"`
	User         *User      `gorm:"constraint:OnDelete:CASCADE"`
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	CreatedAt    time.Time
}
