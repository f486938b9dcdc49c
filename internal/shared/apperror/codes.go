package apperror

// Codes are the stable, machine-readable half of every error envelope.
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidState    = "INVALID_STATE"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"

	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// retryableCodes lists the codes a caller may safely attempt again.
var retryableCodes = map[string]bool{
	CodeServiceUnavailable: true,
}
