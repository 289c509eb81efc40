package database

import (
	"errors"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bridgegap/bridgegap/internal/models"
)

func (d *Database) Connect() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	// Custom join table keeps the (user, interest) pair unique and timestamped.
	if err := db.SetupJoinTable(&models.User{}, "Interests", &models.UserInterest{}); err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Moderator{},
		&models.Interest{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	d.db = db

	return d.SeedInterests()
}
