package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/bridgegap/bridgegap/pkg/auth"
)

const (
	SubjectIDKey = "subjectID"
	RoleKey      = "role"
)

// AuthMiddleware validates the bearer token, rejects blacklisted tokens
// and stashes the subject id and role for the handlers.
func AuthMiddleware(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		exists, err := redisClient.Exists(context.Background(), "blacklist:"+token).Result()
		if err != nil || exists > 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is blacklisted"})
			c.Abort()
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		subjectID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid subject id"})
			c.Abort()
			return
		}

		c.Set(SubjectIDKey, subjectID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireModerator gates routes behind the moderator role claim. Must run
// after AuthMiddleware.
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) != auth.RoleModerator {
			c.JSON(http.StatusForbidden, gin.H{"error": "moderator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
