package workforceerrors

import (
	"go-hrpms/internal/shared/apperror"
	"net/http"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrNegativeCount = apperror.New(
		apperror.CodeInvalidInput,
		"Funnel counts must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidPositions = apperror.New(
		apperror.CodeInvalidInput,
		"Positions to hire must be at least 1",
		http.StatusBadRequest,
	)
	ErrNoFunnel = apperror.New(
		apperror.CodeInvalidState,
		"No recruitment data with hires recorded for this department",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
