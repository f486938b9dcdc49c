package workforce

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
	workforce := r.Group("/workforce")
	workforce.Use(middleware.AuthMiddleware(jwtSecret))
	workforce.Use(middleware.ContextLogger(logger))
	{
		workforce.GET("/funnels", middleware.RateLimitByUser(5, 20), h.GetFunnels)
		workforce.PUT("/funnels/:department_id", middleware.RateLimitByUser(1, 5), h.UpsertFunnel)
		workforce.POST("/plan", middleware.RateLimitByUser(5, 20), h.Plan)
	}
}
