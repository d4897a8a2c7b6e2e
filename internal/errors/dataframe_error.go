// Package errors provides standardized error types for DataFrame operations.
// This package defines DataFrameError for consistent error handling across
// all public APIs, with operation context and error wrapping support.
package errors

import (
	"fmt"
	"strings"
)

// DataFrameError represents standardized errors across all DataFrame operations
type DataFrameError struct {
	Op      string // Operation name (e.g., "ILoc", "LeftJoin", "MapColumns")
	Column  string // Column name if applicable
	Message string // Human-readable error description
	Hint    string // Optional remediation hint
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *DataFrameError) Error() string {
	var msg string
	if e.Column != "" {
		msg = fmt.Sprintf("%s operation failed on column '%s': %s", e.Op, e.Column, e.Message)
	} else {
		msg = fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
	}
	if e.Hint != "" {
		msg += ". Hint: " + e.Hint
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping support
func (e *DataFrameError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is()
func (e *DataFrameError) Is(target error) bool {
	if df, ok := target.(*DataFrameError); ok {
		return e.Op == df.Op && e.Column == df.Column && e.Message == df.Message
	}
	return false
}

// WithHint returns a copy of the error carrying a remediation hint
func (e *DataFrameError) WithHint(hint string) *DataFrameError {
	out := *e
	out.Hint = hint
	return &out
}

// Predefined error variables for common cases. Errors built by the
// constructors below wrap one of these as Cause, so callers can test
// with errors.Is(err, ErrOutOfBounds).
var (
	// ErrEmptyDataFrame indicates operations on empty DataFrames
	ErrEmptyDataFrame = &DataFrameError{
		Op:      "validation",
		Message: "operation not supported on empty DataFrame",
	}

	// ErrMismatchedLength indicates length mismatches in operations
	ErrMismatchedLength = &DataFrameError{
		Op:      "validation",
		Message: "arrays must have the same length",
	}

	// ErrOutOfBounds indicates out-of-bounds index access
	ErrOutOfBounds = &DataFrameError{
		Op:      "indexing",
		Message: "index out of bounds",
	}

	// ErrInvalidSlice indicates a slice with a negative start, an end past
	// the last row, or a non-positive step
	ErrInvalidSlice = &DataFrameError{
		Op:      "indexing",
		Message: "invalid slice parameters",
	}

	// ErrSchemaMismatch indicates a row whose keys differ from the frame schema
	ErrSchemaMismatch = &DataFrameError{
		Op:      "validation",
		Message: "row does not match schema",
	}
)

// Common error constructors for consistent error creation

// NewColumnNotFoundError creates an error for operations on non-existent columns
func NewColumnNotFoundError(op, column string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Column:  column,
		Message: "column does not exist",
	}
}

// NewInvalidInputError creates an error for invalid operation inputs
func NewInvalidInputError(op, message string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Message: message,
	}
}

// NewUnsupportedTypeError creates an error for unsupported data types
func NewUnsupportedTypeError(op, column, typeName string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Column:  column,
		Message: fmt.Sprintf("unsupported type: %s", typeName),
	}
}

// NewValidationError creates an error for input validation failures
func NewValidationError(op, column, message string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Column:  column,
		Message: message,
	}
}

// NewEmptyDataFrameError creates an error for an operation that needs rows
func NewEmptyDataFrameError(op string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Message: "operation not supported on empty DataFrame",
		Cause:   ErrEmptyDataFrame,
	}
}

// NewOutOfBoundsError creates an error for an index outside [0, length)
func NewOutOfBoundsError(op string, index, length int) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Message: fmt.Sprintf("index %d out of bounds [0, %d)", index, length),
		Cause:   ErrOutOfBounds,
	}
}

// NewInvalidSliceError creates an error for rejected slice parameters
func NewInvalidSliceError(op string, start, end, step, length int) *DataFrameError {
	return &DataFrameError{
		Op: op,
		Message: fmt.Sprintf("invalid slice parameters start=%d end=%d step=%d for length %d",
			start, end, step, length),
		Cause: ErrInvalidSlice,
	}
}

// NewMismatchedLengthError creates an error for sequences that must line up
func NewMismatchedLengthError(op, column string, expected, actual int) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Column:  column,
		Message: fmt.Sprintf("expected length %d, got %d", expected, actual),
		Cause:   ErrMismatchedLength,
	}
}

// NewSchemaMismatchError creates an error for a row whose keys diverge from the schema
func NewSchemaMismatchError(op string, rowIndex int, expected, actual []string) *DataFrameError {
	return &DataFrameError{
		Op: op,
		Message: fmt.Sprintf("row %d has columns [%s], expected [%s]",
			rowIndex, strings.Join(actual, ", "), strings.Join(expected, ", ")),
		Cause: ErrSchemaMismatch,
	}
}
