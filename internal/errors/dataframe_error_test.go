package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/paveg/rowframe/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestDataFrameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.DataFrameError
		expected string
	}{
		{
			name: "Error with column",
			err: &errors.DataFrameError{
				Op:      "Col",
				Column:  "age",
				Message: "column does not exist",
			},
			expected: "Col operation failed on column 'age': column does not exist",
		},
		{
			name: "Error without column",
			err: &errors.DataFrameError{
				Op:      "LeftJoin",
				Message: "mismatched lengths",
			},
			expected: "LeftJoin operation failed: mismatched lengths",
		},
		{
			name: "Error with hint",
			err: (&errors.DataFrameError{
				Op:      "ILoc",
				Message: "index 3 out of bounds [0, 3)",
			}).WithHint("use Len() to check the row count"),
			expected: "ILoc operation failed: index 3 out of bounds [0, 3). Hint: use Len() to check the row count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDataFrameError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying error")
	err := &errors.DataFrameError{
		Op:      "FilterRows",
		Message: "evaluation failed",
		Cause:   cause,
	}

	assert.Equal(t, cause, err.Unwrap())
}

func TestDataFrameError_Is(t *testing.T) {
	err1 := &errors.DataFrameError{Op: "Select", Column: "age", Message: "column does not exist"}
	err2 := &errors.DataFrameError{Op: "Select", Column: "age", Message: "column does not exist"}
	err3 := &errors.DataFrameError{Op: "Drop", Column: "age", Message: "column does not exist"}

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.False(t, err1.Is(stderrors.New("different error")))
}

func TestWithHintDoesNotMutate(t *testing.T) {
	base := errors.NewColumnNotFoundError("Col", "nam")
	hinted := base.WithHint("did you mean 'name'?")

	assert.Empty(t, base.Hint)
	assert.Equal(t, "did you mean 'name'?", hinted.Hint)
}

func TestSentinelWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "out of bounds",
			err:      errors.NewOutOfBoundsError("ILoc", 10, 3),
			sentinel: errors.ErrOutOfBounds,
			message:  "ILoc operation failed: index 10 out of bounds [0, 3)",
		},
		{
			name:     "invalid slice",
			err:      errors.NewInvalidSliceError("ILoc", -1, 2, 1, 3),
			sentinel: errors.ErrInvalidSlice,
			message:  "ILoc operation failed: invalid slice parameters start=-1 end=2 step=1 for length 3",
		},
		{
			name:     "empty frame",
			err:      errors.NewEmptyDataFrameError("ILoc"),
			sentinel: errors.ErrEmptyDataFrame,
			message:  "ILoc operation failed: operation not supported on empty DataFrame",
		},
		{
			name:     "mismatched length",
			err:      errors.NewMismatchedLengthError("MapColumns", "age", 3, 2),
			sentinel: errors.ErrMismatchedLength,
			message:  "MapColumns operation failed on column 'age': expected length 3, got 2",
		},
		{
			name:     "schema mismatch",
			err:      errors.NewSchemaMismatchError("NewStrict", 1, []string{"id", "name"}, []string{"id"}),
			sentinel: errors.ErrSchemaMismatch,
			message:  "NewStrict operation failed: row 1 has columns [id], expected [id, name]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.EqualError(t, tt.err, tt.message)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := errors.NewOutOfBoundsError("ILoc", 5, 2)
	assert.NotErrorIs(t, err, errors.ErrInvalidSlice)
	assert.NotErrorIs(t, err, errors.ErrEmptyDataFrame)
}

func TestConstructors(t *testing.T) {
	err := errors.NewColumnNotFoundError("Col", "missing_column")
	assert.Equal(t, "Col", err.Op)
	assert.Equal(t, "missing_column", err.Column)
	assert.Equal(t, "Col operation failed on column 'missing_column': column does not exist", err.Error())

	invalid := errors.NewInvalidInputError("Quantile", "p must be within [0, 1]")
	assert.Empty(t, invalid.Column)
	assert.Equal(t, "Quantile operation failed: p must be within [0, 1]", invalid.Error())

	validation := errors.NewValidationError("AddColumn", "age", "already exists")
	assert.Equal(t, "age", validation.Column)

	unsupported := errors.NewUnsupportedTypeError("FromArrow", "ts", "timestamp[s]")
	assert.Equal(t, "FromArrow operation failed on column 'ts': unsupported type: timestamp[s]", unsupported.Error())
}
