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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigValid    ErrorCode = "CONFIG_INVALID"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Manifest errors
	ErrManifestLoad  ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileExists   ErrorCode = "FILE_EXISTS"
)

// InjectError represents a structured error with code and details
type InjectError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *InjectError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *InjectError) Unwrap() error {
	return e.Wrapped
}

// Is matches any InjectError carrying the same code
func (e *InjectError) Is(target error) bool {
	var targetErr *InjectError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// ErrorCode returns the code as a plain string, for renderers that only
// know about the interface{ ErrorCode() string } shape.
func (e *InjectError) ErrorCode() string {
	return string(e.Code)
}

// New creates a new InjectError with the given code and message
func New(code ErrorCode, message string) *InjectError {
	return &InjectError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new InjectError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InjectError {
	return &InjectError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an InjectError
func Wrap(err error, code ErrorCode, message string) *InjectError {
	if err == nil {
		return nil
	}
	return &InjectError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InjectError {
	if err == nil {
		return nil
	}
	return &InjectError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *InjectError) WithDetail(key string, value interface{}) *InjectError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var injectErr *InjectError
	if errors.As(err, &injectErr) {
		return injectErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an InjectError
func GetErrorCode(err error) ErrorCode {
	var injectErr *InjectError
	if errors.As(err, &injectErr) {
		return injectErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an InjectError
func GetErrorDetails(err error) map[string]interface{} {
	var injectErr *InjectError
	if errors.As(err, &injectErr) {
		return injectErr.Details
	}
	return nil
}
