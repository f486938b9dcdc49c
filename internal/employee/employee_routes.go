package employee

import (
	"go-hrpms/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(jwtSecret))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		employees.GET("/deleted", middleware.RateLimitByUser(3, 10), handler.GetDeleted)
		employees.GET("/:id", middleware.RateLimitByUser(5, 20), handler.GetByID)
		employees.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByUser(1, 5), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
