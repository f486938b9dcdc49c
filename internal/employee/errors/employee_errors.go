package employeeerrors

import (
	"go-hrpms/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeAlreadyArchived = apperror.New(
		apperror.CodeConflict,
		"Employee is already archived",
		http.StatusConflict,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
