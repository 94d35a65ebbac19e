package errors

import (
	"net/http"

	"storeadmin/internal/domain/entity"
	"storeadmin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Configuration lifecycle errors
	ErrConfigurationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONFIGURATION_NOT_FOUND",
		"The store has no such configuration",
		"",
	)

	ErrConfigurationAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFIGURATION_ALREADY_EXISTS",
		"The store already has this configuration",
		"",
	)

	ErrVersionConflict = NewBaseError(
		http.StatusConflict,
		"VERSION_CONFLICT",
		"The configuration was modified concurrently, reload and retry",
		"",
	)

	// Authentication-related errors
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired access token",
		"",
	)

	ErrStoreMismatch = NewBaseError(
		http.StatusForbidden,
		"STORE_MISMATCH",
		"The token does not grant access to this store",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// FromEntityError converts a kind-tagged entity error into an AppError with
// the matching HTTP status. Errors that are not entity errors map to an
// internal error so callers can pass any mutation result through.
func FromEntityError(err error) AppError {
	var domainErr *entity.Error
	if !errors.As(err, &domainErr) {
		return ErrInternalError.WithDetails(err.Error())
	}

	switch domainErr.Kind {
	case entity.ErrorKindNotFound:
		return NewBaseError(http.StatusNotFound, "NOT_FOUND", domainErr.Message, domainErr.Field)
	case entity.ErrorKindDuplicate:
		return NewBaseError(http.StatusConflict, "DUPLICATE", domainErr.Message, domainErr.Field)
	case entity.ErrorKindMissingValue:
		return NewBaseError(http.StatusBadRequest, "MISSING_VALUE", domainErr.Message, domainErr.Field)
	case entity.ErrorKindInvalidValue:
		return NewBaseError(http.StatusBadRequest, "INVALID_VALUE", domainErr.Message, domainErr.Field)
	default:
		return ErrInternalError.WithDetails(domainErr.Error())
	}
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
