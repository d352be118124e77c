package leave

import (
	"go-esyleave/internal/middleware"
	"go-esyleave/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", middleware.RoleMiddleware(user.RoleAdmin), handler.GetAll)
		leaves.GET("/employee/:id", handler.GetByEmployee)
		leaves.POST("", handler.Submit)
		leaves.POST("/:id/approve", middleware.RoleMiddleware(user.RoleAdmin), handler.Approve)
		leaves.POST("/:id/reject", middleware.RoleMiddleware(user.RoleAdmin), handler.Reject)
	}
}
