package database

import "github.com/bridgegap/bridgegap/internal/models"

func (d *Database) ListInterests() ([]models.Interest, error) {
	var interests []models.Interest
	if err := d.db.Order("id").Find(&interests).Error; err != nil {
		return nil, err
	}
	return interests, nil
}
