package dto

import (
	"net/http"
	"strings"
)

// Error codes shared between handlers. Domain errors carry their own codes;
// these cover conditions raised at the HTTP boundary.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	"NOT_FOUND":           http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusConflict,
	"CONFLICT":            http.StatusConflict,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"INSUFFICIENT_STOCK":  http.StatusUnprocessableEntity,
	"BAD_REQUEST":         http.StatusBadRequest,
	"INVALID_INPUT":       http.StatusBadRequest,
	"PERSISTENCE_FAILURE": http.StatusInternalServerError,
	"INTERNAL_ERROR":      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code. Validation
// codes all follow the INVALID_ prefix and map to 400; anything unknown is a
// 500 so unexpected failures never leak as client errors.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
