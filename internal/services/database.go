package services

import "github.com/bridgegap/bridgegap/internal/models"

// Store is the storage surface the HTTP handlers depend on. It is
// implemented by database.Database and mocked in handler tests.
type Store interface {
	RegisterUser(user *models.User, interestIDs []uint) error
	FindUserByEmail(email string) (*models.User, error)
	GetUserWithInterests(id string) (*models.User, error)
	UpdateUserProfile(user *models.User, interestIDs []uint, replaceInterests bool) error
	ListUsersWithInterests() ([]models.User, error)

	CreateModerator(moderator *models.Moderator) error
	FindModeratorByEmail(email string) (*models.Moderator, error)

	ListModeratorNotifications(moderatorID string) ([]models.Notification, error)
	MarkNotificationRead(id string) (*models.Notification, error)

	ListInterests() ([]models.Interest, error)
}
