package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrFileNotFound   ErrorCode = "FILE_NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Insertion workflow errors
	ErrEmptyName         ErrorCode = "EMPTY_NAME"
	ErrSelfInsertion     ErrorCode = "SELF_INSERTION"
	ErrOverwriteDeclined ErrorCode = "OVERWRITE_DECLINED"
	ErrNoTargetSelected  ErrorCode = "NO_TARGET_SELECTED"
	ErrCancelled         ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigSave  ErrorCode = "CONFIG_SAVE"

	// Definition table errors
	ErrTableLoad ErrorCode = "TABLE_LOAD"
	ErrTableSave ErrorCode = "TABLE_SAVE"
)

// InsertError represents a structured error with code and details
type InsertError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *InsertError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *InsertError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *InsertError) Is(target error) bool {
	var targetErr *InsertError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new InsertError with the given code and message
func New(code ErrorCode, message string) *InsertError {
	return &InsertError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new InsertError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InsertError {
	return &InsertError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an InsertError
func Wrap(err error, code ErrorCode, message string) *InsertError {
	if err == nil {
		return nil
	}
	return &InsertError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InsertError {
	if err == nil {
		return nil
	}
	return &InsertError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *InsertError) WithDetail(key string, value interface{}) *InsertError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var insertErr *InsertError
	if errors.As(err, &insertErr) {
		return insertErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an InsertError
func GetErrorCode(err error) ErrorCode {
	var insertErr *InsertError
	if errors.As(err, &insertErr) {
		return insertErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an InsertError
func GetErrorDetails(err error) map[string]interface{} {
	var insertErr *InsertError
	if errors.As(err, &insertErr) {
		return insertErr.Details
	}
	return nil
}

// Recoverable reports whether a workflow error leaves the interaction
// editable. Self-insertion and a declined overwrite that aborts the dialog
// end the whole command.
func Recoverable(err error) bool {
	if err == nil {
		return true
	}
	switch GetErrorCode(err) {
	case ErrEmptyName, ErrNoTargetSelected, ErrCancelled, ErrInvalidInput, ErrFileNotFound:
		return true
	default:
		return false
	}
}
