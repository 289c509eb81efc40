package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bridgegap/bridgegap/internal/models"
)

// RegisterUser persists a new user, their interest associations and one
// notification per existing moderator in a single transaction; any
// failure rolls the whole registration back.
func (d *Database) RegisterUser(user *models.User, interestIDs []uint) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if err := insertUserInterests(tx, user.ID, interestIDs); err != nil {
			return err
		}

		var moderators []models.Moderator
		if err := tx.Find(&moderators).Error; err != nil {
			return err
		}

		message := models.NotificationMessage(user)
		for _, mod := range moderators {
			notification := models.Notification{
				ModeratorID: mod.ID,
				NewUserID:   user.ID,
				Message:     message,
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) GetUserWithInterests(id string) (*models.User, error) {
	user := models.User{}
	err := d.db.Preload("Interests", func(db *gorm.DB) *gorm.DB {
		return db.Order("interests.id")
	}).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile saves the mutated profile fields. When replaceInterests
// is set, the user's associations are replaced wholesale: delete all, then
// reinsert the requested set.
func (d *Database) UpdateUserProfile(user *models.User, interestIDs []uint, replaceInterests bool) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(user).Updates(map[string]interface{}{
			"first_name":       user.FirstName,
			"last_name":        user.LastName,
			"date_of_birth":    user.DateOfBirth,
			"bio":              user.Bio,
			"custom_interests": user.CustomInterests,
		}).Error
		if err != nil {
			return err
		}

		if !replaceInterests {
			return nil
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserInterest{}).Error; err != nil {
			return err
		}
		return insertUserInterests(tx, user.ID, interestIDs)
	})
}

func (d *Database) ListUsersWithInterests() ([]models.User, error) {
	var users []models.User
	err := d.db.Preload("Interests", func(db *gorm.DB) *gorm.DB {
		return db.Order("interests.id")
	}).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// insertUserInterests ignores duplicate pairs instead of failing on them.
func insertUserInterests(tx *gorm.DB, userID uuid.UUID, interestIDs []uint) error {
	for _, interestID := range interestIDs {
		row := models.UserInterest{UserID: userID, InterestID: interestID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
