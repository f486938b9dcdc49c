package position

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
	positions := r.Group("/departments/:id/positions")
	positions.Use(middleware.AuthMiddleware(jwtSecret))
	positions.Use(middleware.ContextLogger(logger))
	{
		positions.GET("", h.GetByDepartment)
		positions.POST("", middleware.RateLimitByUser(0.5, 2), h.Create)
	}
}
