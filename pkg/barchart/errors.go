package barchart

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates the request is missing or has malformed data for
// its chart kind. Nothing has been drawn when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// ErrIO indicates an output file could not be written.
var ErrIO = errors.New("i/o error")

// InputError describes which part of a request is invalid.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInputError creates a new InputError.
func NewInputError(field, format string, args ...any) *InputError {
	return &InputError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IOError represents a failure writing or reading a file.
type IOError struct {
	Op   string // "save", "export", "inspect"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is reports ErrIO so callers can test the error class with errors.Is.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
