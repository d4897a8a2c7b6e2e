// Package validation provides input validation utilities for DataFrame operations.
// This package implements reusable validators for row selection bounds,
// length consistency and schema conformance.
package validation

import (
	"slices"

	"github.com/paveg/rowframe/internal/errors"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// RowProvider interface for types that expose a row count
type RowProvider interface {
	Len() int
}

// EmptyDataFrameValidator validates operations on empty DataFrames
type EmptyDataFrameValidator struct {
	df RowProvider
	op string
}

// NewEmptyDataFrameValidator creates a validator for empty DataFrame checks
func NewEmptyDataFrameValidator(df RowProvider, op string) *EmptyDataFrameValidator {
	return &EmptyDataFrameValidator{
		df: df,
		op: op,
	}
}

// Validate checks if DataFrame is empty when operation requires data
func (v *EmptyDataFrameValidator) Validate() error {
	if v.df.Len() == 0 {
		return errors.NewEmptyDataFrameError(v.op)
	}
	return nil
}

// IndexValidator validates index bounds
type IndexValidator struct {
	index int
	max   int
	op    string
}

// NewIndexValidator creates a validator for index operations
func NewIndexValidator(index, maxIndex int, op string) *IndexValidator {
	return &IndexValidator{
		index: index,
		max:   maxIndex,
		op:    op,
	}
}

// Validate checks if index is within [0, max)
func (v *IndexValidator) Validate() error {
	if v.index < 0 || v.index >= v.max {
		return errors.NewOutOfBoundsError(v.op, v.index, v.max)
	}
	return nil
}

// SliceValidator validates resolved slice parameters against a row count
type SliceValidator struct {
	start, end, step int
	length           int
	op               string
}

// NewSliceValidator creates a validator for start/end/step slicing
func NewSliceValidator(start, end, step, length int, op string) *SliceValidator {
	return &SliceValidator{
		start:  start,
		end:    end,
		step:   step,
		length: length,
		op:     op,
	}
}

// Validate rejects a negative start, an end past length and a non-positive step.
// start >= end is accepted and selects nothing.
func (v *SliceValidator) Validate() error {
	if v.start < 0 || v.end > v.length || v.step <= 0 {
		return errors.NewInvalidSliceError(v.op, v.start, v.end, v.step, v.length)
	}
	return nil
}

// LengthValidator validates array length consistency
type LengthValidator struct {
	expected int
	actual   int
	op       string
	column   string
}

// NewLengthValidator creates a validator for length consistency
func NewLengthValidator(expected, actual int, op, column string) *LengthValidator {
	return &LengthValidator{
		expected: expected,
		actual:   actual,
		op:       op,
		column:   column,
	}
}

// Validate checks if lengths match
func (v *LengthValidator) Validate() error {
	if v.expected != v.actual {
		return errors.NewMismatchedLengthError(v.op, v.column, v.expected, v.actual)
	}
	return nil
}

// SchemaValidator checks that a row carries exactly the expected keys
type SchemaValidator struct {
	expected []string
	actual   []string
	rowIndex int
	op       string
}

// NewSchemaValidator creates a validator comparing a row's keys to a schema.
// Key order is not significant.
func NewSchemaValidator(expected, actual []string, rowIndex int, op string) *SchemaValidator {
	return &SchemaValidator{
		expected: expected,
		actual:   actual,
		rowIndex: rowIndex,
		op:       op,
	}
}

// Validate checks the key sets are equal
func (v *SchemaValidator) Validate() error {
	if len(v.expected) != len(v.actual) {
		return errors.NewSchemaMismatchError(v.op, v.rowIndex, v.expected, v.actual)
	}
	for _, key := range v.actual {
		if !slices.Contains(v.expected, key) {
			return errors.NewSchemaMismatchError(v.op, v.rowIndex, v.expected, v.actual)
		}
	}
	return nil
}

// CompoundValidator combines multiple validators
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Validate runs all validators and returns the first error encountered
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Convenience validation functions

// ValidateNotEmpty is a convenience function for empty DataFrame validation
func ValidateNotEmpty(df RowProvider, op string) error {
	return NewEmptyDataFrameValidator(df, op).Validate()
}

// ValidateIndex is a convenience function for index validation
func ValidateIndex(index, maxIndex int, op string) error {
	return NewIndexValidator(index, maxIndex, op).Validate()
}

// ValidateSlice is a convenience function for slice validation
func ValidateSlice(start, end, step, length int, op string) error {
	return NewSliceValidator(start, end, step, length, op).Validate()
}

// ValidateLength is a convenience function for length validation
func ValidateLength(expected, actual int, op, column string) error {
	return NewLengthValidator(expected, actual, op, column).Validate()
}

// ValidateSchemas checks each key set against expected and reports the first
// mismatch. The key set at position i is reported as row firstIndex+i.
func ValidateSchemas(expected []string, keySets [][]string, firstIndex int, op string) error {
	validators := make([]Validator, len(keySets))
	for i, keys := range keySets {
		validators[i] = NewSchemaValidator(expected, keys, firstIndex+i, op)
	}
	return NewCompoundValidator(validators...).Validate()
}
