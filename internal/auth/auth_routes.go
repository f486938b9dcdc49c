package auth

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
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), h.Login)
		auth.GET("/me", middleware.AuthMiddleware(jwtSecret), middleware.RateLimitByUser(2, 5), h.Me)
		auth.POST("/logout", middleware.AuthMiddleware(jwtSecret), h.Logout)
	}
}
