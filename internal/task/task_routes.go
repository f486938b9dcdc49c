package task

import (
	"go-hrpms/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	jwtSecret string,
	logger *zap.Logger,
) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware(jwtSecret))
	tasks.Use(middleware.ContextLogger(logger))
	{
		tasks.GET("", middleware.RateLimitByUser(5, 20), h.GetAll)
		tasks.POST("", middleware.RateLimitByUser(1, 5), h.Assign)
		tasks.PATCH("/:id/status", middleware.RateLimitByUser(2, 10), h.SetStatus)
	}
}
