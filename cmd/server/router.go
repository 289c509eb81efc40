package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/bridgegap/bridgegap/internal/handlers"
	"github.com/bridgegap/bridgegap/internal/middleware"
	"github.com/bridgegap/bridgegap/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	modH *handlers.ModeratorHandler,
	interestH *handlers.InterestHandler,
) {
	api := r.Group("/api")
	{
		api.POST("/register", authH.Register)
		api.POST("/login", authH.Login)
		api.POST("/moderator/register", authH.ModeratorRegister)
		api.POST("/moderator/login", authH.ModeratorLogin)
		api.GET("/interests", interestH.List)

		// Feature stubs: surfaced in the UI, not built yet.
		api.GET("/chats", handlers.FeatureUnavailable("Chats feature is under development"))
		api.GET("/interactive", handlers.FeatureUnavailable("Interactive features are under development"))
		api.GET("/groups", handlers.FeatureUnavailable("Groups feature is under development"))
		api.GET("/private-messages", handlers.FeatureUnavailable("Private messages are under development"))
		api.GET("/games", handlers.FeatureUnavailable("Games feature is under development"))
	}

	authorized := api.Group("", middleware.AuthMiddleware(jwtMgr, rdb))
	{
		authorized.POST("/logout", authH.Logout)
		authorized.GET("/user/:id", userH.GetProfile)
		authorized.PUT("/user/:id", userH.UpdateProfile)
		authorized.GET("/user/:id/interests", userH.GetInterests)
	}

	moderator := authorized.Group("", middleware.RequireModerator())
	{
		moderator.GET("/moderator/:id/notifications", modH.ListNotifications)
		moderator.PUT("/notification/:id/read", modH.MarkRead)
		moderator.GET("/moderator/user/:id", modH.GetUserDetail)
		moderator.GET("/moderator/users", modH.ListUsers)
	}
}
