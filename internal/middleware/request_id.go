package middleware

import (
	"go-hrpms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	// outbox_events.request_id is varchar(64)
	maxRequestIDLen = 64
)

// RequestID reuses a well-formed incoming X-Request-ID or mints a UUID, and
// exposes it on the gin context, the request context and the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(requestIDHeader, rid)

		c.Next()
	}
}

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLen {
		return false
	}
	for _, r := range rid {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}
