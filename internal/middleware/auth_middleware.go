package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	autherrors "go-hrpms/internal/auth/errors"
	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware accepts a bearer token or the access_token cookie and puts
// user_id and username on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, autherrors.ErrInvalidToken.Code, "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, autherrors.ErrInvalidToken.Code, "User ID not found in token", nil)
			c.Abort()
			return
		}

		username, _ := claims["username"].(string)

		c.Set("user_id", userID)
		c.Set("username", username)

		c.Next()
	}
}
