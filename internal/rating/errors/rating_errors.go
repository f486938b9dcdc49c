package ratingerrors

import (
	"go-hrpms/internal/shared/apperror"
	"net/http"
)

var (
	ErrRatingOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Rating must be between 1 and 5",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found or inactive",
		http.StatusNotFound,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Reporting manager not found or inactive",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
