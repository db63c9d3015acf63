// Package errors provides standardized error types and helpers for the adorner codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
	// ErrInvalidWordID indicates a word element whose identifier is missing or not numeric
	ErrInvalidWordID = errors.New("invalid word identifier")
	// ErrStackDesync indicates the element nesting stacks no longer match the event stream
	ErrStackDesync = errors.New("context stack out of sync")
	// ErrPendingOccupied indicates a second word was buffered before the first was flushed
	ErrPendingOccupied = errors.New("pending word slot occupied")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// WordIDError reports a word element that cannot be numbered.
type WordIDError struct {
	Element string // Qualified element name (w or pc)
	Attr    string // Identifier attribute that was consulted
	Value   string // Raw value found, empty when missing
	Ordinal int    // Running word ordinal when the element was seen
}

func (e *WordIDError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s after word %d has no %s attribute", e.Element, e.Ordinal, e.Attr)
	}
	return fmt.Sprintf("%s after word %d has non-numeric %s %q", e.Element, e.Ordinal, e.Attr, e.Value)
}

func (e *WordIDError) Unwrap() error {
	return ErrInvalidWordID
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "XML", "YAML", "prune mode")
	Path    string // File path, if applicable
	Line    int    // 1-based line of the error, 0 when unknown
	Column  int    // 1-based column of the error, 0 when unknown
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	where := e.Path
	if e.Line > 0 {
		if where != "" {
			where = fmt.Sprintf("%s:%d:%d", where, e.Line, e.Column)
		} else {
			where = fmt.Sprintf("line %d, column %d", e.Line, e.Column)
		}
	}
	if where != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, where, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
