// Package errors provides the structured error taxonomy for the analysis
// pipeline, with context propagation and HTTP status code mapping.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of error for metrics and response formatting.
type ErrorType string

const (
	// TypeInvalidInput indicates text that failed validation (HTTP 400)
	TypeInvalidInput ErrorType = "invalid_input"
	// TypeTreeSearch indicates a failed tree traversal: missing node, timeout,
	// depth exceeded, malformed condition (HTTP 422)
	TypeTreeSearch ErrorType = "tree_search"
	// TypeNormalization indicates a non-finite score value (HTTP 500)
	TypeNormalization ErrorType = "normalization"
	// TypeKeywordMatch indicates a malformed keyword dictionary (HTTP 500)
	TypeKeywordMatch ErrorType = "keyword_match"
	// TypeConfiguration indicates a malformed configuration or resource (HTTP 500)
	TypeConfiguration ErrorType = "configuration"
	// TypeInternal indicates any other server-side error (HTTP 500)
	TypeInternal ErrorType = "internal"
)

// Error represents a structured analysis error with type, message, and context.
// All pipeline failures are values of this one type, so callers can catch
// broadly with errors.As or narrowly by inspecting Type.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for this error type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeInvalidInput:
		return http.StatusBadRequest
	case TypeTreeSearch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// InvalidInput creates a new input-validation error (HTTP 400).
func InvalidInput(message string) *Error {
	return &Error{Type: TypeInvalidInput, Message: message, Context: make(map[string]any)}
}

// TreeSearch creates a new tree-traversal error (HTTP 422).
func TreeSearch(message string) *Error {
	return &Error{Type: TypeTreeSearch, Message: message, Context: make(map[string]any)}
}

// Normalization creates a new score-normalization error.
func Normalization(message string) *Error {
	return &Error{Type: TypeNormalization, Message: message, Context: make(map[string]any)}
}

// KeywordMatch creates a new keyword-dictionary error.
func KeywordMatch(message string, cause error) *Error {
	return &Error{Type: TypeKeywordMatch, Message: message, Cause: cause, Context: make(map[string]any)}
}

// Configuration creates a new configuration/resource error.
func Configuration(message string, cause error) *Error {
	return &Error{Type: TypeConfiguration, Message: message, Cause: cause, Context: make(map[string]any)}
}

// Internal creates a new internal error (HTTP 500).
func Internal(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause, Context: make(map[string]any)}
}

// WithContext adds a context field to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ErrorResponse represents the JSON structure sent to clients.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Type    ErrorType      `json:"type"`
	Context map[string]any `json:"context,omitempty"`
}

// ToResponse converts an Error to an ErrorResponse for JSON serialization.
func (e *Error) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message, Type: e.Type, Context: e.Context}
}

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error, returns it unchanged.
// Otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}
	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}
	return Internal("internal analysis error", err)
}

// IsType reports whether err is a structured error of the given type.
func IsType(err error, t ErrorType) bool {
	var structuredErr *Error
	return errors.As(err, &structuredErr) && structuredErr.Type == t
}
