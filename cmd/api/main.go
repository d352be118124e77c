package main

import (
	"go-esyleave/internal/app"
	"go-esyleave/internal/bootstrap"
	"go-esyleave/internal/config"
	"go-esyleave/internal/middleware"
	"go-esyleave/internal/shared/apperror"
	"go-esyleave/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var log *zap.Logger
	var closeLog func()
	if cfg.Log.File != "" {
		log, closeLog = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		})
	} else {
		log, closeLog = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer closeLog()
	zap.ReplaceGlobals(log)

	apperror.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logger.Middleware(log.Named("http")))

	if err := app.BuildApp(r, cfg); err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.HTTP.Port,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		},
		auditLogger,
	)
}
