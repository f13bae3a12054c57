package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Validation error codes reported to candidates.
const (
	CodeInvalidPart = "invalid_part"
	CodeEmptyAnswer = "empty_answer"
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// HasCode reports whether any field error carries the given code.
func (e *ValidationError) HasCode(code string) bool {
	for _, fe := range e.Errors {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Code: code, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StorageError reports a failure of the underlying store (file cannot be
// opened or written, disk full, permissions).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorageUnavailable, e.Err} }

// NewStorageError wraps err as a StorageError for the given operation.
// A nil err yields nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// SubmissionReason classifies why a submission could not be stored.
type SubmissionReason string

const (
	SubmissionReasonStorageUnavailable SubmissionReason = "STORAGE_UNAVAILABLE"
)

// SubmissionError is returned by the submission service when a valid answer
// could not be persisted.
type SubmissionError struct {
	Reason SubmissionReason
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission: %s: %v", e.Reason, e.Err)
}

func (e *SubmissionError) Unwrap() []error { return []error{ErrStorageUnavailable, e.Err} }
