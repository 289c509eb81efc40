package dto

import (
	"time"

	"github.com/bridgegap/bridgegap/internal/models"
)

type ModeratorResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewModeratorResponse(moderator *models.Moderator) ModeratorResponse {
	return ModeratorResponse{
		ID:        moderator.ID.String(),
		Email:     moderator.Email,
		CreatedAt: moderator.CreatedAt,
	}
}

// NotificationResponse is an inbox row with the subject user joined in.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

func NewNotificationResponse(notification *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
		UserID:    notification.NewUserID.String(),
		FirstName: notification.NewUser.FirstName,
		LastName:  notification.NewUser.LastName,
		Email:     notification.NewUser.Email,
	}
}

// UserSummary is a row of the moderator's full user list. Interests are
// flattened to names, as the console only displays them.
type UserSummary struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	UserType        string    `json:"user_type"`
	DateOfBirth     string    `json:"date_of_birth"`
	CustomInterests string    `json:"custom_interests"`
	Interests       []string  `json:"interests"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewUserSummary(user *models.User) UserSummary {
	names := make([]string, len(user.Interests))
	for i, interest := range user.Interests {
		names[i] = interest.Name
	}
	return UserSummary{
		ID:              user.ID.String(),
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		UserType:        user.UserType,
		DateOfBirth:     user.DateOfBirth.Format(dateLayout),
		CustomInterests: user.CustomInterests,
		Interests:       names,
		CreatedAt:       user.CreatedAt,
	}
}
