package app

import (
	"go-hrpms/internal/auth"
	"go-hrpms/internal/config"
	"go-hrpms/internal/department"
	"go-hrpms/internal/employee"
	"go-hrpms/internal/insight"
	"go-hrpms/internal/messaging/kafka"
	"go-hrpms/internal/middleware"
	"go-hrpms/internal/position"
	"go-hrpms/internal/rating"
	"go-hrpms/internal/task"
	"go-hrpms/internal/workforce"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterModules wires every module under /api/v1. rdb may be nil, in
// which case nothing is cached.
func RegisterModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	insightRepo := insight.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	ratingRepo := rating.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	workforceRepo := workforce.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, cfg.JWTSecret, cfg.TokenTTL, logger)
	departmentService := department.NewService(departmentRepo, rdb, logger)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, outboxRepo, rdb, logger)
	insightService := insight.NewService(insightRepo, rdb, logger)
	positionService := position.NewService(gormDB, positionRepo, rdb, logger)
	taskService := task.NewService(gormDB, taskRepo, outboxRepo, rdb, logger)
	ratingService := rating.NewService(gormDB, ratingRepo, taskService, outboxRepo, logger)
	workforceService := workforce.NewService(workforceRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	insightHandler := insight.NewHandler(insightService, logger)
	positionHandler := position.NewHandler(positionService, logger)
	ratingHandler := rating.NewHandler(ratingService, logger)
	taskHandler := task.NewHandler(taskService, logger)
	workforceHandler := workforce.NewHandler(workforceService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWTSecret, logger)
		department.RegisterRoutes(api, departmentHandler, cfg.JWTSecret, logger)
		employee.RegisterRoutes(api, employeeHandler, cfg.JWTSecret, logger)
		insight.RegisterRoutes(api, insightHandler, cfg.JWTSecret, logger)
		position.RegisterRoutes(api, positionHandler, cfg.JWTSecret, logger)
		rating.RegisterRoutes(api, ratingHandler, cfg.JWTSecret, logger)
		task.RegisterRoutes(api, taskHandler, cfg.JWTSecret, logger)
		workforce.RegisterRoutes(api, workforceHandler, cfg.JWTSecret, logger)
	}
}
