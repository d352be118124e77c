package summary

import (
	"go-esyleave/internal/middleware"
	"go-esyleave/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/summary")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/admin", middleware.RoleMiddleware(user.RoleAdmin), handler.Admin)
		group.GET("/employee/:id", handler.Employee)
	}
}
