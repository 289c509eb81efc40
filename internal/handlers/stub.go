package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FeatureUnavailable answers for product surfaces that exist in the UI but
// are not built yet. Fixed 503 with a fixed message.
func FeatureUnavailable(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": message})
	}
}
