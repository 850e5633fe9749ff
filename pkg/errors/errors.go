package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrValidation       = errors.New("validation failed")
	ErrUnknownEntity    = errors.New("unknown entity")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrDocumentNotFound = errors.New("document not found")
	ErrStorageDisabled  = errors.New("document storage is not configured")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeRecordNotFound   = "RECORD_NOT_FOUND"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeUnknownEntity    = "UNKNOWN_ENTITY"
	ErrCodeDocumentNotFound = "DOCUMENT_NOT_FOUND"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
	ErrCodeCacheError       = "CACHE_ERROR"
	ErrCodeStorageError     = "STORAGE_ERROR"
	ErrCodeStorageDisabled  = "STORAGE_DISABLED"
)

// Wrap common errors with business context
func WrapRecordNotFound(entity, id string) *BusinessError {
	return NewBusinessError(
		ErrCodeRecordNotFound,
		fmt.Sprintf("%s record %s not found", entity, id),
		ErrRecordNotFound,
	)
}

func WrapValidation(entity string, err error) *BusinessError {
	return NewBusinessError(
		ErrCodeValidation,
		fmt.Sprintf("invalid %s record: %v", entity, err),
		errors.Join(ErrValidation, err),
	)
}

func WrapUnknownEntity(entity string) *BusinessError {
	return NewBusinessError(
		ErrCodeUnknownEntity,
		fmt.Sprintf("entity %q is not supported", entity),
		ErrUnknownEntity,
	)
}

func WrapDocumentNotFound(key string) *BusinessError {
	return NewBusinessError(
		ErrCodeDocumentNotFound,
		fmt.Sprintf("document %s not found", key),
		ErrDocumentNotFound,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}

func WrapStorageError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeStorageError,
		"document storage operation failed",
		err,
	)
}

func WrapStorageDisabled() *BusinessError {
	return NewBusinessError(
		ErrCodeStorageDisabled,
		"document storage is not configured",
		ErrStorageDisabled,
	)
}

// Code extracts the business error code of err, empty when err is not a BusinessError
func Code(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
