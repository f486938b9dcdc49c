package autherrors

import (
	"go-hrpms/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already taken",
		http.StatusConflict,
	)
)
