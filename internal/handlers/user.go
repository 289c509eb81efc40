package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bridgegap/bridgegap/internal/handlers/dto"
	"github.com/bridgegap/bridgegap/internal/middleware"
	"github.com/bridgegap/bridgegap/internal/services"
)

type UserHandler struct {
	store services.Store
}

func NewUserHandler(store services.Store) *UserHandler {
	return &UserHandler{store: store}
}

// GetProfile returns a user with their joined interests.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.store.GetUserWithInterests(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("Error fetching user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile applies the fields present in the request. Only the profile
// owner may call it. When interests are present the associations are
// replaced wholesale. The generation bucket is never recomputed here: it is
// a cohort assigned once at registration.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")

	callerID := c.MustGet(middleware.SubjectIDKey).(uuid.UUID)
	if callerID.String() != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot update another user's profile"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUserWithInterests(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("Error fetching user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date of birth"})
			return
		}
		user.DateOfBirth = dob
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.CustomInterests != nil {
		user.CustomInterests = *req.CustomInterests
	}

	var interestIDs []uint
	replaceInterests := req.Interests != nil
	if replaceInterests {
		interestIDs = *req.Interests
	}

	if err := h.store.UpdateUserProfile(user, interestIDs, replaceInterests); err != nil {
		log.Printf("Error updating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	updated, err := h.store.GetUserWithInterests(id)
	if err != nil {
		log.Printf("Error reloading user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    dto.NewUserResponse(updated),
	})
}

// GetInterests returns the user's catalog interest names plus their
// free-text custom interests. An unknown user yields an empty set.
func (h *UserHandler) GetInterests(c *gin.Context) {
	user, err := h.store.GetUserWithInterests(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, dto.UserInterestsResponse{Interests: []string{}})
			return
		}
		log.Printf("Error fetching user interests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	names := make([]string, len(user.Interests))
	for i, interest := range user.Interests {
		names[i] = interest.Name
	}

	c.JSON(http.StatusOK, dto.UserInterestsResponse{
		Interests:       names,
		CustomInterests: user.CustomInterests,
	})
}
