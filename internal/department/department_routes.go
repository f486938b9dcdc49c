package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware(jwtSecret))
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("", h.GetAll)
		departments.POST("", middleware.RateLimitByUser(0.5, 2), h.Create)
		departments.GET("/hr/employees", h.GetHREmployees)
	}
}
