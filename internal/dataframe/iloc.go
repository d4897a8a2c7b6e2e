package dataframe

import (
	"github.com/paveg/rowframe/internal/config"
	"github.com/paveg/rowframe/internal/errors"
	"github.com/paveg/rowframe/internal/monitoring"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/validation"
)

// Selector picks row positions for ILoc
type Selector interface {
	resolve(length int) ([]int, error)
}

type indexSelector []int

// At selects the single row at index i
func At(i int) Selector {
	return indexSelector{i}
}

// Rows selects the rows at the given indices, in the given order.
// Repeated indices repeat the row.
func Rows(indices ...int) Selector {
	return indexSelector(append([]int{}, indices...))
}

func (s indexSelector) resolve(length int) ([]int, error) {
	for _, i := range s {
		if err := validation.ValidateIndex(i, length, "ILoc"); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SliceSelector selects rows start, start+step, ... below end.
// Unset bounds default to 0, the row count and 1.
type SliceSelector struct {
	start, end, step *int
}

// Slice starts a slice selector covering every row
func Slice() SliceSelector {
	return SliceSelector{}
}

// From sets the first index
func (s SliceSelector) From(start int) SliceSelector {
	s.start = &start
	return s
}

// To sets the exclusive end index
func (s SliceSelector) To(end int) SliceSelector {
	s.end = &end
	return s
}

// Step sets the stride
func (s SliceSelector) Step(step int) SliceSelector {
	s.step = &step
	return s
}

func (s SliceSelector) resolve(length int) ([]int, error) {
	start, end, step := 0, length, 1
	if s.start != nil {
		start = *s.start
	}
	if s.end != nil {
		end = *s.end
	}
	if s.step != nil {
		step = *s.step
	}

	if err := validation.ValidateSlice(start, end, step, length, "ILoc"); err != nil {
		return nil, err
	}

	// Indices are generated from a count so a huge step cannot wrap past end.
	span := end - start
	if span <= 0 {
		return []int{}, nil
	}
	count := span / step
	if span%step != 0 {
		count++
	}
	indices := make([]int, count)
	for n := range indices {
		indices[n] = start + n*step
	}
	return indices, nil
}

// ILoc selects rows by position. An empty DataFrame fails with
// ErrEmptyDataFrame before the selector is looked at; an index outside
// [0, Len()) fails with ErrOutOfBounds and a rejected slice with ErrInvalidSlice.
func (df *DataFrame) ILoc(sel Selector) (*DataFrame, error) {
	var result *DataFrame
	err := record("ILoc", df.Len(), func() (int, error) {
		if err := validation.ValidateNotEmpty(df, "ILoc"); err != nil {
			return 0, err
		}
		if sel == nil {
			return 0, errors.NewInvalidInputError("ILoc", "selector must not be nil").
				WithHint("use At, Rows or Slice")
		}

		indices, err := sel.resolve(len(df.rows))
		if err != nil {
			return 0, err
		}

		rows := make([]row.Row, len(indices))
		for i, idx := range indices {
			rows[i] = df.rows[idx]
		}
		result = wrap(rows)
		return len(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// record runs fn under the default metrics collector when collection is enabled
func record(op string, rowsIn int, fn func() (int, error)) error {
	if !config.GetGlobalConfig().MetricsCollection {
		_, err := fn()
		return err
	}
	return monitoring.Default().RecordOperation(op, rowsIn, fn)
}

// recordRows is record for operations that cannot fail
func recordRows(op string, rowsIn int, fn func() int) {
	if !config.GetGlobalConfig().MetricsCollection {
		fn()
		return
	}
	monitoring.Default().RecordRows(op, rowsIn, fn)
}
