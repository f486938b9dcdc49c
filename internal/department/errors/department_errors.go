package departmenterrors

import (
	"go-hrpms/internal/shared/apperror"
	"net/http"
)

var (
	ErrDepartmentExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same name already exists",
		http.StatusConflict,
	)
	ErrDepartmentNameEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"Department name is required",
		http.StatusBadRequest,
	)
)
