package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP converts any error returned by a service into the response shape
// written by handlers. Unknown errors never leak their message.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		out := HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Retryable() {
			out.Details = map[string]any{"retryable": true}
		}
		return out
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
