package main

import (
	"time"

	"go-hrpms/internal/app"
	"go-hrpms/internal/bootstrap"
	"go-hrpms/internal/config"
	"go-hrpms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewZapAuditLogger(logger),
	)
	if err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
