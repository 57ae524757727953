package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is lets errors.Is match domain errors by code regardless of message
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInsufficientStock  = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrPersistenceFailure = NewDomainError("PERSISTENCE_FAILURE", "Storage operation failed and was rolled back")
)

// NewInsufficientStockError builds an INSUFFICIENT_STOCK error naming the
// product and the quantity still on hand.
func NewInsufficientStockError(productName string, available int64) *DomainError {
	return NewDomainError("INSUFFICIENT_STOCK",
		fmt.Sprintf("insufficient stock for product %q: %d available", productName, available))
}

// WrapPersistence passes domain errors through unchanged and converts any
// other error into a PERSISTENCE_FAILURE. Application services call it at
// transaction boundaries so storage-level failures surface uniformly while
// business errors keep their codes.
func WrapPersistence(err error) error {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return err
	}
	return NewDomainError("PERSISTENCE_FAILURE", err.Error())
}
