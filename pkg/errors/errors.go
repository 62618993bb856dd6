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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Filesystem and content errors raised while linking
	ErrIO    ErrorCode = "IO"
	ErrParse ErrorCode = "PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Server errors
	ErrServerUnsupported ErrorCode = "SERVER_UNSUPPORTED"
	ErrServerRun         ErrorCode = "SERVER_RUN"

	// State persistence errors
	ErrStateLoad ErrorCode = "STATE_LOAD"
	ErrStateSave ErrorCode = "STATE_SAVE"
)

// MineflakeError represents a structured error with code and details
type MineflakeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MineflakeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MineflakeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MineflakeError) Is(target error) bool {
	var targetErr *MineflakeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MineflakeError with the given code and message
func New(code ErrorCode, message string) *MineflakeError {
	return &MineflakeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MineflakeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MineflakeError {
	return &MineflakeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MineflakeError
func Wrap(err error, code ErrorCode, message string) *MineflakeError {
	if err == nil {
		return nil
	}
	return &MineflakeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MineflakeError {
	if err == nil {
		return nil
	}
	return &MineflakeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MineflakeError) WithDetail(key string, value interface{}) *MineflakeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
// The outermost MineflakeError in the chain decides.
func IsErrorCode(err error, code ErrorCode) bool {
	var mfErr *MineflakeError
	if errors.As(err, &mfErr) {
		return mfErr.Code == code
	}
	return false
}

// HasErrorCode reports whether any MineflakeError in the chain carries code.
func HasErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var mfErr *MineflakeError
		if !errors.As(err, &mfErr) {
			return false
		}
		if mfErr.Code == code {
			return true
		}
		err = mfErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MineflakeError
func GetErrorCode(err error) ErrorCode {
	var mfErr *MineflakeError
	if errors.As(err, &mfErr) {
		return mfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MineflakeError
func GetErrorDetails(err error) map[string]interface{} {
	var mfErr *MineflakeError
	if errors.As(err, &mfErr) {
		return mfErr.Details
	}
	return nil
}
