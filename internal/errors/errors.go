// Package errors provides typed error definitions for pdbctl.
// This package consolidates error handling and provides structured error types
// that can be used for better error classification and handling.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a unique identifier for different error types
type ErrorCode string

const (
	// Configuration errors
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"

	// Validation errors
	ErrValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrInvalidInput     ErrorCode = "INVALID_INPUT"

	// Resolution errors
	ErrVenvNotFound   ErrorCode = "VENV_NOT_FOUND"
	ErrScriptNotFound ErrorCode = "SCRIPT_NOT_FOUND"

	// Internal errors
	ErrInternal ErrorCode = "INTERNAL_ERROR"

	// File/IO errors
	ErrFileRead ErrorCode = "FILE_READ"
)

// PdbctlError represents a structured error with additional context
type PdbctlError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	Context    map[string]interface{} `json:"context,omitempty"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *PdbctlError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *PdbctlError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *PdbctlError) WithContext(key string, value interface{}) *PdbctlError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithCause adds the underlying cause error
func (e *PdbctlError) WithCause(cause error) *PdbctlError {
	e.Cause = cause
	return e
}

// GetHTTPStatus returns the appropriate HTTP status code for this error
func (e *PdbctlError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}

	// Default status codes based on error type
	switch e.Code {
	case ErrVenvNotFound, ErrScriptNotFound:
		return http.StatusNotFound
	case ErrValidationFailed, ErrInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new PdbctlError
func New(code ErrorCode, message string) *PdbctlError {
	return &PdbctlError{
		Code:    code,
		Message: message,
	}
}

// NewWithDetails creates a new PdbctlError with details
func NewWithDetails(code ErrorCode, message, details string) *PdbctlError {
	return &PdbctlError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Wrap creates a new PdbctlError that wraps an existing error
func Wrap(code ErrorCode, message string, cause error) *PdbctlError {
	return &PdbctlError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode extracts the error code from an error, if it's a PdbctlError
func GetCode(err error) ErrorCode {
	if pe, ok := err.(*PdbctlError); ok {
		return pe.Code
	}
	return ""
}

// HasCode checks if an error has a specific error code
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
