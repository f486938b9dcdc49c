package rating

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
	ratings := r.Group("/ratings")
	ratings.Use(middleware.AuthMiddleware(jwtSecret))
	ratings.Use(middleware.ContextLogger(logger))
	{
		ratings.GET("", middleware.RateLimitByUser(5, 20), h.GetAll)
		ratings.POST("", middleware.RateLimitByUser(1, 5), h.Give)
		ratings.GET("/employee/:id", middleware.RateLimitByUser(5, 20), h.GetForEmployee)
	}

	performance := r.Group("/employees/:id/performance")
	performance.Use(middleware.AuthMiddleware(jwtSecret))
	performance.Use(middleware.ContextLogger(logger))
	performance.GET("", middleware.RateLimitByUser(5, 20), h.GetSummary)
}
