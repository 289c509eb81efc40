package dto

import (
	"time"

	"github.com/bridgegap/bridgegap/internal/models"
)

const dateLayout = "2006-01-02"

// UpdateProfileRequest uses pointers so absent fields stay untouched.
// A present-but-empty interests list clears all associations.
type UpdateProfileRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	DateOfBirth     *string `json:"dateOfBirth"`
	Bio             *string `json:"bio"`
	CustomInterests *string `json:"customInterests"`
	Interests       *[]uint `json:"interests"`
}

type InterestResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID              string             `json:"id"`
	FirstName       string             `json:"first_name"`
	LastName        string             `json:"last_name"`
	Email           string             `json:"email"`
	UserType        string             `json:"user_type"`
	DateOfBirth     string             `json:"date_of_birth"`
	Bio             string             `json:"bio"`
	CustomInterests string             `json:"custom_interests"`
	Interests       []InterestResponse `json:"interests"`
	CreatedAt       time.Time          `json:"created_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	interests := make([]InterestResponse, len(user.Interests))
	for i, interest := range user.Interests {
		interests[i] = InterestResponse{ID: interest.ID, Name: interest.Name}
	}
	return UserResponse{
		ID:              user.ID.String(),
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		UserType:        user.UserType,
		DateOfBirth:     user.DateOfBirth.Format(dateLayout),
		Bio:             user.Bio,
		CustomInterests: user.CustomInterests,
		Interests:       interests,
		CreatedAt:       user.CreatedAt,
	}
}

// UserInterestsResponse backs GET /api/user/:id/interests: catalog names
// plus the free-text custom interests.
type UserInterestsResponse struct {
	Interests       []string `json:"interests"`
	CustomInterests string   `json:"custom_interests"`
}
