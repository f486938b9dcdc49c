package positionerrors

import (
	"go-hrpms/internal/shared/apperror"
	"net/http"
)

var (
	ErrPositionExists = apperror.New(
		apperror.CodeConflict,
		"Position already exists in this department",
		http.StatusConflict,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
