package app

import (
	"go-hrpms/internal/config"
	"go-hrpms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects postgres and redis and registers every module on
// router. The returned cleanup closes both connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	if rdb != nil {
		logger.Info("redis connection established")
	}

	RegisterModules(router, gormDB, rdb, cfg, logger)

	return func() {
		if rdb != nil {
			rdb.Close()
		}
		sqlDB.Close()
	}, nil
}
