package taskerrors

import (
	"go-hrpms/internal/shared/apperror"
	"net/http"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found or inactive",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of: To Do, In Progress, Completed",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid due_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task ID",
		http.StatusBadRequest,
	)
)
