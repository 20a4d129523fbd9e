package plugin

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the framework.
type ErrorCode string

// Registry error codes
const (
	ErrDuplicateIdentifier ErrorCode = "DUPLICATE_IDENTIFIER"
	ErrPluginNotFound      ErrorCode = "PLUGIN_NOT_FOUND"
	ErrInstantiation       ErrorCode = "INSTANTIATION_FAILED"
	ErrNoPluginAvailable   ErrorCode = "NO_PLUGIN_AVAILABLE"
)

// Error represents a structured registry error with code, message, and
// the family/key it relates to. All four error kinds surface to the
// caller of the manager; a plugin framework that hides missing or
// broken plugins defeats its purpose.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Family  string    `json:"family,omitempty"`
	Key     string    `json:"key,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithFamily sets the capability family name.
func (e *Error) WithFamily(family string) *Error {
	e.Family = family
	return e
}

// WithKey sets the identifier the error relates to.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsDuplicate reports whether err is a duplicate-identifier error.
func IsDuplicate(err error) bool {
	return GetErrorCode(err) == ErrDuplicateIdentifier
}

// IsNotFound reports whether err is a plugin-not-found error.
func IsNotFound(err error) bool {
	return GetErrorCode(err) == ErrPluginNotFound
}

// IsInstantiation reports whether err is an instantiation failure.
func IsInstantiation(err error) bool {
	return GetErrorCode(err) == ErrInstantiation
}

// IsUnavailable reports whether err is a no-plugin-available error.
func IsUnavailable(err error) bool {
	return GetErrorCode(err) == ErrNoPluginAvailable
}
