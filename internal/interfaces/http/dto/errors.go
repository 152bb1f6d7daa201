package dto

import (
	"net/http"
	"strings"
)

// Error codes produced by the HTTP layer itself. Domain errors keep their
// own codes on the wire.
const (
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInvalidID     = "INVALID_ID"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidState  = "INVALID_STATE"
	ErrCodeRateLimited   = "RATE_LIMIT_EXCEEDED"
	ErrCodeTooLarge      = "REQUEST_TOO_LARGE"
	ErrCodeFileTooLarge  = "FILE_TOO_LARGE"
)

// ErrorCodeHTTPStatus holds the codes whose status is not derived from
// their shape
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeValidation:     http.StatusBadRequest,
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeAlreadyExists:  http.StatusConflict,
	"ALREADY_INITIALIZED": http.StatusConflict,
	"LAST_USER":           http.StatusConflict,
	ErrCodeInvalidState:   http.StatusUnprocessableEntity,
	ErrCodeRateLimited:    http.StatusTooManyRequests,
	ErrCodeTooLarge:       http.StatusRequestEntityTooLarge,
	ErrCodeFileTooLarge:   http.StatusRequestEntityTooLarge,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code. Codes missing from
// ErrorCodeHTTPStatus are classified by naming convention:
//
//	INVALID_*, *_MISMATCH           400
//	TOKEN_*                         401
//	*_NOT_FOUND                     404
//	DUPLICATE_*, *_IN_USE           409
//
// Anything else is a business rule violation (422).
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	switch {
	case code == "":
		return http.StatusInternalServerError
	case strings.HasPrefix(code, "INVALID_"), strings.HasSuffix(code, "_MISMATCH"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "TOKEN_"):
		return http.StatusUnauthorized
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "DUPLICATE_"), strings.HasSuffix(code, "_IN_USE"):
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}
