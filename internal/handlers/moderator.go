package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bridgegap/bridgegap/internal/handlers/dto"
	"github.com/bridgegap/bridgegap/internal/middleware"
	"github.com/bridgegap/bridgegap/internal/services"
)

// ModeratorHandler backs the moderator console: the full user list,
// per-user detail and the per-moderator notification inbox.
type ModeratorHandler struct {
	store services.Store
}

func NewModeratorHandler(store services.Store) *ModeratorHandler {
	return &ModeratorHandler{store: store}
}

// ListUsers returns every user, newest first. Interests come back in the
// same query via preload, so the list does not degrade into one query per
// user as the directory grows.
func (h *ModeratorHandler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsersWithInterests()
	if err != nil {
		log.Printf("Error fetching all users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	summaries := make([]dto.UserSummary, len(users))
	for i := range users {
		summaries[i] = dto.NewUserSummary(&users[i])
	}

	c.JSON(http.StatusOK, summaries)
}

// GetUserDetail returns any user's full profile. Every moderator may view
// every user; that broad-trust model is deliberate for this domain.
func (h *ModeratorHandler) GetUserDetail(c *gin.Context) {
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

// ListNotifications returns the calling moderator's inbox, newest first.
func (h *ModeratorHandler) ListNotifications(c *gin.Context) {
	id := c.Param("id")

	callerID := c.MustGet(middleware.SubjectIDKey).(uuid.UUID)
	if callerID.String() != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot read another moderator's notifications"})
		return
	}

	notifications, err := h.store.ListModeratorNotifications(id)
	if err != nil {
		log.Printf("Error fetching notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	responses := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = dto.NewNotificationResponse(&notifications[i])
	}

	c.JSON(http.StatusOK, responses)
}

// MarkRead flips the read flag. Calling it on an already-read notification
// succeeds and changes nothing.
func (h *ModeratorHandler) MarkRead(c *gin.Context) {
	notification, err := h.store.MarkNotificationRead(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		log.Printf("Error updating notification: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           notification.ID,
		"moderator_id": notification.ModeratorID,
		"new_user_id":  notification.NewUserID,
		"message":      notification.Message,
		"is_read":      notification.IsRead,
		"created_at":   notification.CreatedAt,
	})
}
