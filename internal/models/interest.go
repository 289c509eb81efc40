package models

import "time"

// Interest is an entry of the fixed cultural catalog, seeded at startup
// and read-only through the API.
type Interest struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
