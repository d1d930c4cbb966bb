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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Command line errors
	ErrUsage      ErrorCode = "USAGE"
	ErrValidation ErrorCode = "VALIDATION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// BrewError represents a structured error with code and details
type BrewError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BrewError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BrewError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BrewError) Is(target error) bool {
	var targetErr *BrewError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BrewError with the given code and message
func New(code ErrorCode, message string) *BrewError {
	return &BrewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BrewError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BrewError {
	return &BrewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BrewError
func Wrap(err error, code ErrorCode, message string) *BrewError {
	if err == nil {
		return nil
	}
	return &BrewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BrewError {
	if err == nil {
		return nil
	}
	return &BrewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BrewError) WithDetail(key string, value interface{}) *BrewError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var brewErr *BrewError
	if errors.As(err, &brewErr) {
		return brewErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BrewError
func GetErrorCode(err error) ErrorCode {
	var brewErr *BrewError
	if errors.As(err, &brewErr) {
		return brewErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BrewError
func GetErrorDetails(err error) map[string]interface{} {
	var brewErr *BrewError
	if errors.As(err, &brewErr) {
		return brewErr.Details
	}
	return nil
}

// UserMessage returns the message shown to people running the tool: the
// error text without the code prefix.
func UserMessage(err error) string {
	var brewErr *BrewError
	if !errors.As(err, &brewErr) {
		return err.Error()
	}
	if brewErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", brewErr.Message, UserMessage(brewErr.Wrapped))
	}
	return brewErr.Message
}

// ShowsUsage reports whether the error came from bad command line input and
// should be followed by the usage text.
func ShowsUsage(err error) bool {
	code := GetErrorCode(err)
	return code == ErrUsage || code == ErrValidation
}
