package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	// Arithmetic rejections (4xx, the stored value stays untouched)
	CodeOverflow      = "OVERFLOW"
	CodeUnderflow     = "UNDERFLOW"
	CodeInvalidResult = "INVALID_RESULT"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
