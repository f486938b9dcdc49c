package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrpms/internal/middleware"
	"go-hrpms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const secret = "middleware-secret"

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id")+":"+c.GetString("username"))
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, jwt.MapClaims{
			"user_id": "7", "username": "hr.staff", "exp": time.Now().Add(time.Hour).Unix(),
		}))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "7:hr.staff", w.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signed(t, jwt.MapClaims{
			"user_id": "7", "exp": time.Now().Add(time.Hour).Unix(),
		})})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "7"}).SignedString([]byte("other"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("numeric user id claim rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed(t, jwt.MapClaims{
			"user_id": 7, "exp": time.Now().Add(time.Hour).Unix(),
		}))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x",
		func(c *gin.Context) {
			if uid := c.GetHeader("X-User"); uid != "" {
				c.Set("user_id", uid)
			}
		},
		middleware.RateLimitByUser(0.001, 2),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)

	call := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if user != "" {
			req.Header.Set("X-User", user)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("1"))
	assert.Equal(t, http.StatusNoContent, call("1"))
	assert.Equal(t, http.StatusTooManyRequests, call("1"))

	// buckets are per user
	assert.Equal(t, http.StatusNoContent, call("2"))

	// anonymous callers are not limited here
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, call(""))
	}
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", middleware.RateLimitByIP(0.001, 1), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "TOO_MANY_REQUESTS")
}

func TestRequestIDAndContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/x",
		func(c *gin.Context) { c.Set("user_id", "7") },
		middleware.ContextLogger(zap.New(core)),
		func(c *gin.Context) {
			ctx := c.Request.Context()
			contextutil.GetLogger(ctx, zap.NewNop()).Info("handled")
			c.String(http.StatusOK, contextutil.GetRequestID(ctx)+"|"+contextutil.GetUserID(ctx))
		},
	)

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-ID", "req-abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-abc|7", w.Body.String())
		assert.Equal(t, "req-abc", w.Header().Get("X-Request-ID"))

		entries := logs.FilterMessage("handled").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "req-abc", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "7", entries[0].ContextMap()["user_id"])
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		rid := w.Header().Get("X-Request-ID")
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid+"|7", w.Body.String())
	})
}

func TestRequestID_ReplacesMalformedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	for _, bad := range []string{"has space", strings.Repeat("a", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-ID", bad)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEqual(t, bad, w.Body.String())
		assert.Len(t, w.Body.String(), 36)
	}
}

func TestContextLogger_WithoutRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}
