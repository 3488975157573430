// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation indicates one or more constraint violations on a transfer object.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidValue indicates a business-rule violation detected in a hook
	// (e.g., disallowed status value), distinct from schema validation.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMalformedPatch indicates a patch document referencing a field
	// that does not exist on the target entity, or carrying a value the
	// target field cannot decode.
	ErrMalformedPatch = errors.New("malformed patch")
)

// Violation is a single constraint violation on a named field.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError aggregates constraint violations for one transfer object.
// It matches ErrValidation via errors.Is.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundf wraps ErrNotFound with a localized message.
func NotFoundf(msg string) error { return fmt.Errorf("%w: %s", ErrNotFound, msg) }

// AlreadyExistsf wraps ErrAlreadyExists with a localized message.
func AlreadyExistsf(msg string) error { return fmt.Errorf("%w: %s", ErrAlreadyExists, msg) }

// InvalidValuef wraps ErrInvalidValue with a localized message.
func InvalidValuef(msg string) error { return fmt.Errorf("%w: %s", ErrInvalidValue, msg) }

// MalformedPatchf wraps ErrMalformedPatch naming the offending field.
func MalformedPatchf(field string) error {
	return fmt.Errorf("%w: unknown field %q", ErrMalformedPatch, field)
}
