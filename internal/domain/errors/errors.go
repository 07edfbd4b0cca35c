package errors

import (
	"net/http"

	"patrol/internal/errors"
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

// Is matches any BaseError carrying the same error code, so sentinel comparisons survive WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Guard-related errors
	ErrGuardNotFound = NewBaseError(
		http.StatusNotFound,
		"GUARD_NOT_FOUND",
		"Guard not found",
		"",
	)

	ErrGuardInactive = NewBaseError(
		http.StatusForbidden,
		"GUARD_INACTIVE",
		"Guard is not active",
		"",
	)

	// Checkpoint-related errors
	ErrCheckpointNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKPOINT_NOT_FOUND",
		"Checkpoint not found",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Allowed radius must be a positive number when coordinates are set",
		"",
	)

	ErrInvalidQRPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_PAYLOAD",
		"QR code payload could not be decoded",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Invalid request data",
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
)

// NotDesignatedError is returned when a guard scans a QR code printed for somebody else.
// The scan is rejected and nothing is recorded.
type NotDesignatedError struct {
	DesignatedUser string
	GuardName      string
}

// NewNotDesignatedError creates a designation mismatch error.
func NewNotDesignatedError(designatedUser, guardName string) *NotDesignatedError {
	return &NotDesignatedError{DesignatedUser: designatedUser, GuardName: guardName}
}

// Error implements the error interface
func (e *NotDesignatedError) Error() string {
	return "scan rejected: QR code is designated for " + e.DesignatedUser
}

// HTTPCode returns the HTTP status code
func (e *NotDesignatedError) HTTPCode() int {
	return http.StatusForbidden
}

// ErrorCode returns the business error code
func (e *NotDesignatedError) ErrorCode() string {
	return "NOT_DESIGNATED"
}

// Message returns the user-friendly error message
func (e *NotDesignatedError) Message() string {
	return "This QR code is designated for " + e.DesignatedUser + ". You are not authorized to scan it."
}

// Details returns detailed error information
func (e *NotDesignatedError) Details() string {
	return ""
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
