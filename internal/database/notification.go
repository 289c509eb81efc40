package database

import "github.com/bridgegap/bridgegap/internal/models"

// ListModeratorNotifications returns a moderator's inbox, newest first,
// with the subject user joined in.
func (d *Database) ListModeratorNotifications(moderatorID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := d.db.Preload("NewUser").
		Where("moderator_id = ?", moderatorID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead sets the read flag. Marking an already-read
// notification is a no-op beyond re-asserting the flag.
func (d *Database) MarkNotificationRead(id string) (*models.Notification, error) {
	notification := models.Notification{}
	if err := d.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if !notification.IsRead {
		if err := d.db.Model(&notification).Update("is_read", true).Error; err != nil {
			return nil, err
		}
	}
	notification.IsRead = true

	return &notification, nil
}
