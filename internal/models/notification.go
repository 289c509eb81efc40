package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification tells one moderator about one newly registered user.
// The read flag only ever goes from false to true.
type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ModeratorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Moderator   Moderator `gorm:"constraint:OnDelete:CASCADE"`
	NewUserID   uuid.UUID `gorm:"type:uuid;not null"`
	NewUser     User      `gorm:"foreignKey:NewUserID;constraint:OnDelete:CASCADE"`
	Message     string    `gorm:"not null"`
	IsRead      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// NotificationMessage is the templated text sent to every moderator when a
// user registers.
func NotificationMessage(user *User) string {
	return fmt.Sprintf("New %s generation user: %s %s",
		user.UserType, user.FirstName, user.LastName)
}
