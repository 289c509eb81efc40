package database

import (
	"fmt"
	"log"

	"github.com/bridgegap/bridgegap/internal/models"
)

// The fixed cultural-interest catalog. Entries are only ever added here;
// the API never creates or removes them.
var defaultInterests = []string{
	"Traditions",
	"History",
	"Literature",
	"Theater",
	"Cinema",
	"Crafts",
	"Painting",
	"Photography",
	"Music and songs",
	"Dances",
	"Family memory",
	"Regional heritage",
	"Language",
}

// SeedInterests upserts the catalog by name. Safe to run on every startup.
func (d *Database) SeedInterests() error {
	for _, name := range defaultInterests {
		var count int64
		if err := d.db.Model(&models.Interest{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to seed interest %q: %w", name, err)
		}
		if count > 0 {
			continue
		}
		if err := d.db.Create(&models.Interest{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed interest %q: %w", name, err)
		}
		log.Printf("Seeded interest: %s", name)
	}
	return nil
}
