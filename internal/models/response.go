package models

// Machine-readable error codes returned alongside HTTP statuses.
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeSessionNotFound = "SESSION_NOT_FOUND"
	ErrCodeProjectNotFound = "PROJECT_NOT_FOUND"
	ErrCodeWrongStep       = "WRONG_STEP"
	ErrCodeNotConfirmed    = "NOT_CONFIRMED"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
