package errors

import (
	"fmt"
)

// ParseError represents a settings or catalog decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a field that failed schema or cross-field checks.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError reports a lookup for an unknown component or resource.
type NotFoundError struct {
	Kind string
	Key  string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == "" {
		return fmt.Sprintf("not found: %s", e.Key)
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// ConflictError indicates a write was refused because the destination already holds different content.
type ConflictError struct {
	Path string
	Diff string
}

// NewConflictError constructs a ConflictError carrying the rendered diff.
func NewConflictError(path, diff string) error {
	return &ConflictError{Path: path, Diff: diff}
}

func (e *ConflictError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("conflict: %s already exists with different content", e.Path)
}
