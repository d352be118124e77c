package auth

import (
	"go-esyleave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		group.POST("/logout", handler.Logout)
		group.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
