package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure an aggregate mutation can produce.
// The HTTP layer maps kinds to status codes; the entity layer never knows
// about transports.
type ErrorKind string

const (
	// ErrorKindNotFound means a referenced sub-entity is absent from its collection.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindDuplicate means a uniqueness constraint would be violated.
	ErrorKindDuplicate ErrorKind = "duplicate"
	// ErrorKindMissingValue means a required field was not supplied.
	ErrorKindMissingValue ErrorKind = "missing_value"
	// ErrorKindInvalidValue means a supplied field fails validation, or a
	// cross-field precondition is unmet.
	ErrorKindInvalidValue ErrorKind = "invalid_value"
	// ErrorKindInternal means an unexpected collaborator failure.
	ErrorKindInternal ErrorKind = "internal"
)

// Error is the domain error raised by aggregate factories and mutations.
// Field names the offending field for validation failures so callers can
// build field-level error responses.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewNotFound reports an absent sub-entity.
func NewNotFound(what, name string) *Error {
	return &Error{Kind: ErrorKindNotFound, Message: fmt.Sprintf("%s %q not found", what, name)}
}

// NewDuplicate reports a uniqueness violation.
func NewDuplicate(what, name string) *Error {
	return &Error{Kind: ErrorKindDuplicate, Message: fmt.Sprintf("%s %q already exists", what, name)}
}

// NewMissingValue reports an absent required field.
func NewMissingValue(field string) *Error {
	return &Error{Kind: ErrorKindMissingValue, Field: field, Message: "required value is missing"}
}

// NewInvalidValue reports a malformed field or an unmet precondition.
func NewInvalidValue(field, message string) *Error {
	return &Error{Kind: ErrorKindInvalidValue, Field: field, Message: message}
}

// IsKind reports whether err is (or wraps) a domain Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return false
	}

	return domainErr.Kind == kind
}
