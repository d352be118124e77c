package app

import (
	"context"
	"fmt"
	"go-esyleave/internal/config"
	"go-esyleave/internal/seed"
	"go-esyleave/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires the selected store backend, seeds the default fixtures and
// registers every module's routes on the router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	backend, err := buildBackend(cfg.Store)
	if err != nil {
		return err
	}

	st := store.New(backend)

	if err := seed.Run(context.Background(), st); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	registerModules(router, st)
	return nil
}

func buildBackend(cfg config.StoreConfig) (store.Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemoryBackend(), nil

	case config.BackendFile:
		return store.NewFileBackend(cfg.DataDir)

	case config.BackendRedis:
		rdb, err := store.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		zap.L().Info("Redis connection established", zap.String("addr", cfg.RedisAddr))
		return store.NewRedisBackend(rdb, cfg.RedisPrefix), nil

	case config.BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
		}
		db, err := store.ConnectGORMWithRetry(cfg.PostgresDSN, 5)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		zap.L().Info("Database connection established")
		backend := store.NewGormBackend(db)
		if err := backend.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate store schema: %w", err)
		}
		return backend, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
