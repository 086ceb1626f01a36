package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates an update or vote targeted a record that does not exist.
// Reads return a nil record instead; only mutations surface this error.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyVoted indicates a voter already has a recorded vote on a proposal.
var ErrAlreadyVoted = errors.New("voter has already voted on this proposal")

// ErrBackendUnavailable indicates the durable storage backend cannot be reached.
// Operations are never retried internally; callers decide how to react.
var ErrBackendUnavailable = errors.New("storage backend unavailable")

// ValidationError reports required fields that are missing or malformed on create.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Add records another violating field and returns the error for chaining.
func (e *ValidationError) Add(field, reason string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = reason
	return e
}

// HasViolations reports whether any field violations were recorded.
func (e *ValidationError) HasViolations() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, reason))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
