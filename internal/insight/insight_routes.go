package insight

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
	insights := r.Group("/insights")
	insights.Use(middleware.AuthMiddleware(jwtSecret))
	insights.Use(middleware.ContextLogger(logger))
	insights.GET("", middleware.RateLimitByUser(2, 10), h.GetSnapshot)
}
