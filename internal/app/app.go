package app

import (
	"go-leave/internal/config"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and mounts every module on router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app.api")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.IsProduction())
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, 5)
	if err != nil {
		return err
	}

	if err := registerModules(router, cfg, gormDB, redisClient); err != nil {
		return err
	}

	logger.Info("modules registered", zap.String("env", cfg.Env))
	return nil
}
