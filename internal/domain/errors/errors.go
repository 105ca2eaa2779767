// Package errors defines the application's error taxonomy. Every error
// that can reach a caller carries an HTTP status, a stable business
// code, and the fixed user-visible message for its kind. Internal
// detail (driver errors, stack traces) never leaks past the service
// boundary.
package errors

import (
	"net/http"

	"enroll/internal/errors"
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

// Validation errors. One fixed message per violated rule; none of these
// ever touch the store. The check order is: empty fields, name, email,
// date of birth, password length.
var (
	ErrEmptyInput = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_INPUT",
		"Empty input fields!",
		"",
	)

	ErrEmptyCredentials = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CREDENTIALS",
		"Empty credentials supplied",
		"",
	)

	ErrInvalidName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NAME",
		"Invalid name entered",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email entered",
		"",
	)

	ErrInvalidDateOfBirth = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_OF_BIRTH",
		"Invalid date of birth entered",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password is too short!",
		"",
	)
)

// Account and credential errors.
var (
	ErrDuplicateAccount = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ACCOUNT",
		"User with the provided email already exists",
		"",
	)

	// ErrInvalidCredentials deliberately carries the same message for an
	// unknown email and a wrong password, so callers cannot tell which
	// field was wrong.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials entered!",
		"",
	)

	// ErrNotVerified discloses that the account exists but is
	// unverified. This asymmetry with ErrInvalidCredentials is
	// intentional.
	ErrNotVerified = NewBaseError(
		http.StatusForbidden,
		"NOT_VERIFIED",
		"Email hasn't been verified yet. Check your inbox.",
		"",
	)
)

// Verification token errors.
var (
	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"Account record doesn't exist or has been verified already. Please sign up or log in.",
		"",
	)

	// ErrTokenExpired accompanies a destructive cleanup: the pending
	// verification and its never-verified account are deleted, and the
	// user must sign up again.
	ErrTokenExpired = NewBaseError(
		http.StatusGone,
		"TOKEN_EXPIRED",
		"Link has expired. Please sign up again.",
		"",
	)

	// ErrTokenMismatch is non-destructive; the record stays intact and
	// the user may retry with the correct link.
	ErrTokenMismatch = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_MISMATCH",
		"Invalid verification details passed. Check your inbox.",
		"",
	)
)

// Infrastructure errors. All map to a generic message; the underlying
// cause is logged, never returned.
var (
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"An error occurred while hashing password!",
		"",
	)

	ErrNotificationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_FAILED",
		"Verification email failed",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"An error occurred while saving user account!",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"An error occurred while processing the request",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An internal error occurred",
		"",
	)
)

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
	return "An error occurred while accessing the data store"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
