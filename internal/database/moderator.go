package database

import "github.com/bridgegap/bridgegap/internal/models"

func (d *Database) CreateModerator(moderator *models.Moderator) error {
	if err := d.db.Create(moderator).Error; err != nil {
		return err
	}
	return nil
}

func (d *Database) FindModeratorByEmail(email string) (*models.Moderator, error) {
	moderator := models.Moderator{}
	if err := d.db.Where("email = ?", email).First(&moderator).Error; err != nil {
		return nil, err
	}
	return &moderator, nil
}
