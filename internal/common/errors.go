// Package common provides shared utilities and error types used across
// the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound indicates a transaction or category lookup found no row.
	ErrNotFound = errors.New("not found")
	// ErrNoData indicates an aggregate was requested over an empty set.
	ErrNoData = errors.New("no data for period")
)

// ValidationError reports a malformed field on a single row or manual
// entry. It is scoped to that row and never aborts a batch.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// ReferenceError reports a category assignment that conflicts with the
// category's declared type, such as an income category on a negative amount.
type ReferenceError struct {
	Category string
	Reason   string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("category %q: %s", e.Category, e.Reason)
}

// ConsistencyError reports a transaction whose type does not match the
// sign of its amount. Such a transaction must never be stored.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("type/amount mismatch: %s", e.Detail)
}

// NotFoundError reports an operation referencing a nonexistent
// transaction or category. It unwraps to ErrNotFound.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
