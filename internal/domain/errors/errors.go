package errors

import (
	"fmt"
	"net/http"

	"libris/internal/errors"
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
	// Lookup errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrBookNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"Book not found",
		"",
	)

	// Authentication errors. Unknown username and wrong password produce the
	// same value so callers cannot tell them apart.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Username or password is invalid",
		"",
	)

	// Password change errors
	ErrMissingPasswordFields = NewBaseError(
		http.StatusBadRequest,
		"CHANGE_PASSWORD_FIELDS",
		"Missing old_password and/or password fields",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusForbidden,
		"INVALID_PASSWORD",
		"Invalid password",
		"",
	)

	ErrSamePassword = NewBaseError(
		http.StatusBadRequest,
		"OLD_AND_NEW_PASSWORDS",
		"New password must be different than old password",
		"",
	)

	// Mutation errors
	ErrCannotChangeID = NewBaseError(
		http.StatusForbidden,
		"CANNOT_CHANGE_ID",
		"Cannot change 'id'",
		"",
	)

	ErrBookAlreadyOwned = NewBaseError(
		http.StatusConflict,
		"BOOK_ALREADY_ADDED",
		"Book is already added",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Username already exists in the database",
		"",
	)

	// Entity validation errors
	ErrInvalidYear = NewBaseError(
		http.StatusBadRequest,
		"INVALID_YEAR",
		"Year must be between 0 and current year",
		"",
	)

	ErrPagesQuantity = NewBaseError(
		http.StatusBadRequest,
		"PAGES_QUANTITY",
		"Pages quantity must be greater than 0",
		"",
	)

	ErrFutureBirthdate = NewBaseError(
		http.StatusBadRequest,
		"FUTURE_DATE",
		"Date 'birthdate' cannot be future",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewEmptyFieldError reports a required field that is missing or empty.
func NewEmptyFieldError(field string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		fmt.Sprintf("Argument '%s' cannot be empty", field),
		"",
	)
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
