package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FirstName       string    `gorm:"not null"`
	LastName        string    `gorm:"not null"`
	Email           string    `gorm:"uniqueIndex;not null"`
	PasswordHash    string    `gorm:"not null"`
	DateOfBirth     time.Time `gorm:"type:date;not null"`
	UserType        string    `gorm:"not null;default:young"`
	Bio             string
	CustomInterests string
	Interests       []Interest `gorm:"many2many:user_interests;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserInterest is the join row between users and the interest catalog.
// The composite primary key keeps each pair unique.
type UserInterest struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	InterestID uint      `gorm:"primaryKey"`
	CreatedAt  time.Time
}
