package middleware

import (
	"time"

	"go-hrpms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger runs after AuthMiddleware. It puts request_id, user_id and a
// logger carrying both into the request context, and writes one access log
// line once the handler returns.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	access := logger.Named("http")

	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("request_id", rid)
			c.Header(requestIDHeader, rid)
		}
		uid := c.GetString("user_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
		)

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		access.Debug("request served",
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
