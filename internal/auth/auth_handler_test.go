package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrpms/internal/auth"
	autherrors "go-hrpms/internal/auth/errors"
	authMock "go-hrpms/internal/auth/mock"
	"go-hrpms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*gin.Engine, *authMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := authMock.NewMockService(gomock.NewController(t))
	h := auth.NewHandler(svc, false)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", middleware.AuthMiddleware(testSecret), h.Me)
	return r, svc
}

func signedToken(t *testing.T, userID string, exp time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": "shreya",
		"exp":      exp.Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets the access_token cookie", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Login(gomock.Any(), "shreya", "s3cret-pass").Return(auth.LoginResponse{
			AccessToken: "tok",
			ExpiresAt:   time.Now().Add(time.Hour),
			User:        auth.UserResponse{ID: 1, Username: "shreya"},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"shreya","password":"s3cret-pass"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=tok")
		assert.Contains(t, w.Body.String(), `"access_token":"tok"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Login(gomock.Any(), "shreya", "nope").Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"shreya","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("missing password", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"shreya"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("bearer token", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Me(gomock.Any(), "4").Return(auth.UserResponse{ID: 4, Username: "shreya"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "4", time.Now().Add(time.Hour)))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"shreya"`)
	})

	t.Run("cookie token", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Me(gomock.Any(), "4").Return(auth.UserResponse{ID: 4}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signedToken(t, "4", time.Now().Add(time.Hour))})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "4", time.Now().Add(-time.Hour)))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("no token", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
