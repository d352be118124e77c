package app

import (
	"go-esyleave/internal/auth"
	"go-esyleave/internal/leave"
	"go-esyleave/internal/store"
	"go-esyleave/internal/summary"
	"go-esyleave/internal/user"

	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine, st *store.Store) {
	// --- Repositories ---
	userRepo := user.NewRepository(st)
	credRepo := user.NewCredentialRepository(st)
	leaveRepo := leave.NewRepository(st)
	sessionRepo := auth.NewSessionRepository(st)

	// --- Services ---
	userService := user.NewService(st, userRepo, credRepo)
	authService := auth.NewService(st, userRepo, credRepo, sessionRepo)
	leaveService := leave.NewService(st, leaveRepo, userRepo)
	summaryService := summary.NewService(st, leaveRepo, userRepo)

	// --- Handlers ---
	userHandler := user.NewHandler(userService)
	authHandler := auth.NewHandler(authService)
	leaveHandler := leave.NewHandler(leaveService)
	summaryHandler := summary.NewHandler(summaryService)

	// --- Routes ---
	api := router.Group("/api/v1")
	auth.RegisterRoutes(api, authHandler)
	user.RegisterRoutes(api, userHandler)
	leave.RegisterRoutes(api, leaveHandler)
	summary.RegisterRoutes(api, summaryHandler)
}
