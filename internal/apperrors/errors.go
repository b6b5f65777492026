package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorage indicates a failure of the underlying durable store.
var ErrStorage = errors.New("storage error")

// AppError carries the error kind (one of the sentinels above) together with
// structured detail. It never holds user-facing text.
type AppError struct {
	Kind  error
	Field string
	Err   error
}

func (e *AppError) Error() string {
	msg := e.Kind.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s: field %s", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is reports whether target is the kind of this error.
func (e *AppError) Is(target error) bool {
	return target == e.Kind
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports an invalid value for field.
func NewValidationError(field string, reason string) error {
	return &AppError{Kind: ErrValidation, Field: field, Err: errors.New(reason)}
}

// NewDuplicateError reports a key collision on field.
func NewDuplicateError(field string, value string) error {
	return &AppError{Kind: ErrDuplicate, Field: field, Err: fmt.Errorf("%q already exists", value)}
}

// NewNotFoundError reports a missing row addressed by field.
func NewNotFoundError(field string, value any) error {
	return &AppError{Kind: ErrNotFound, Field: field, Err: fmt.Errorf("%v not found", value)}
}

// NewStorageError wraps a backend failure for operation op.
func NewStorageError(op string, err error) error {
	return &AppError{Kind: ErrStorage, Err: fmt.Errorf("%s: %w", op, err)}
}

// FieldOf returns the offending field carried by err, if any.
func FieldOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
