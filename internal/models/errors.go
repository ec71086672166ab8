package models

import "errors"

// Application-wide standard errors
var (
	// Session & Project Errors
	ErrSessionNotFound = errors.New("session not found")
	ErrProjectNotFound = errors.New("project not found")

	// Wizard Flow Errors
	ErrWrongStep    = errors.New("operation is not valid at the current wizard step")
	ErrNotConfirmed = errors.New("project has not been confirmed yet")

	// Catalog & Validation Errors
	ErrUnknownLegacyType     = errors.New("unknown legacy type")
	ErrUnknownAudience       = errors.New("unknown audience option")
	ErrUnknownDeliveryFormat = errors.New("unknown delivery format")
	ErrUnknownTimeline       = errors.New("unknown timeline option")
	ErrUnknownQuestion       = errors.New("unknown scoping question key")
	ErrInvalidAnswer         = errors.New("answer does not match the question")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidInput   = errors.New("invalid input data")
)
