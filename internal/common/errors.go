// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrNotFound     = errors.New("not found")
	ErrParse        = errors.New("parse error")
	ErrMissingField = errors.New("missing required field")

	// Validation errors.
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrInvalidQuantity  = errors.New("quantity cannot be negative")
	ErrQuantityOverflow = errors.New("quantity out of range")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MissingFieldError reports a required key that is absent or has the wrong type.
type MissingFieldError struct {
	Field  string
	Reason string
}

func (e *MissingFieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q: %s", ErrMissingField, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q", ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// NewMissingFieldError creates an error for an absent field.
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// NewInvalidFieldError creates an error for a field present with the wrong type.
func NewInvalidFieldError(field, reason string) error {
	return &MissingFieldError{Field: field, Reason: reason}
}

// ParseError wraps a malformed document error.
type ParseError struct {
	Err    error
	Source string
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %v", ErrParse, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrParse, e.Err)
}

// Is lets errors.Is match ErrParse while Unwrap exposes the decoder error.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
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

// FieldName extracts the offending key from a missing field error, if any.
func FieldName(err error) (string, bool) {
	var mfe *MissingFieldError
	if errors.As(err, &mfe) {
		return mfe.Field, true
	}
	return "", false
}
