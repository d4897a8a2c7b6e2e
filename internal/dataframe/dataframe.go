// Package dataframe provides row-oriented DataFrame operations
package dataframe

import (
	"fmt"
	"strings"

	"github.com/paveg/rowframe/internal/config"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/series"
	"github.com/paveg/rowframe/internal/validation"
	"github.com/paveg/rowframe/internal/value"
)

// RowFunc computes a value from a row
type RowFunc func(r row.Row) value.Value

// DataFrame represents an ordered sequence of rows.
//
// The first row is the schema source for Shape, Columns and Drop; rows whose
// keys diverge from it are kept as they are and are not reconciled.
// Every operation except PushRow returns a new DataFrame. Rows are immutable,
// so sharing them between frames is safe.
type DataFrame struct {
	rows []row.Row
}

// New creates a new DataFrame from rows. The slice is copied.
func New(rows ...row.Row) *DataFrame {
	return &DataFrame{rows: append(make([]row.Row, 0, len(rows)), rows...)}
}

// NewStrict creates a DataFrame whose rows must all carry exactly the keys
// of the first row. Key order may differ.
func NewStrict(rows ...row.Row) (*DataFrame, error) {
	if len(rows) > 1 {
		keySets := make([][]string, len(rows)-1)
		for i, r := range rows[1:] {
			keySets[i] = r.Keys()
		}
		if err := validation.ValidateSchemas(rows[0].Keys(), keySets, 1, "NewStrict"); err != nil {
			return nil, err
		}
	}
	return New(rows...), nil
}

func wrap(rows []row.Row) *DataFrame {
	return &DataFrame{rows: rows}
}

// Len returns the number of rows
func (df *DataFrame) Len() int {
	return len(df.rows)
}

// IsEmpty reports whether the DataFrame has no rows
func (df *DataFrame) IsEmpty() bool {
	return len(df.rows) == 0
}

// Columns returns the keys of the first row, or none for an empty DataFrame
func (df *DataFrame) Columns() []string {
	if len(df.rows) == 0 {
		return []string{}
	}
	return df.rows[0].Keys()
}

// Shape returns the row count and the first row's column count
func (df *DataFrame) Shape() (rows, columns int) {
	if len(df.rows) == 0 {
		return 0, 0
	}
	return len(df.rows), df.rows[0].Len()
}

// Row returns the row at index i
func (df *DataFrame) Row(i int) (row.Row, bool) {
	if i < 0 || i >= len(df.rows) {
		return row.Row{}, false
	}
	return df.rows[i], true
}

// Col returns the column key as a Series named key. Rows lacking the key
// contribute Undefined.
func (df *DataFrame) Col(key string) *series.Series {
	items := make([]value.Value, len(df.rows))
	for i, r := range df.rows {
		items[i] = r.Value(key)
	}
	return series.New(key, items)
}

// Select returns a new DataFrame whose rows hold exactly keys, in order
func (df *DataFrame) Select(keys ...string) *DataFrame {
	rows := make([]row.Row, len(df.rows))
	for i, r := range df.rows {
		rows[i] = row.Pick(r, keys)
	}
	return wrap(rows)
}

// Drop returns a new DataFrame without keys. The remaining columns are
// enumerated from the first row, so every output row is shaped like the
// first row minus keys.
func (df *DataFrame) Drop(keys ...string) *DataFrame {
	columns := df.Columns()
	rows := make([]row.Row, len(df.rows))
	for i, r := range df.rows {
		rows[i] = row.Omit(r, columns, keys)
	}
	return wrap(rows)
}

// Computed names a column computed from each row
type Computed struct {
	Name string
	Fn   RowFunc
}

// Compute pairs a column name with the function that computes it
func Compute(name string, fn RowFunc) Computed {
	return Computed{Name: name, Fn: fn}
}

// Assign returns a new DataFrame with computed columns merged into each row.
// Every function sees the original row, never a sibling's result.
func (df *DataFrame) Assign(cols ...Computed) *DataFrame {
	rows := make([]row.Row, len(df.rows))
	for i, r := range df.rows {
		fields := make([]row.Field, len(cols))
		for j, c := range cols {
			fields[j] = row.Field{Key: c.Name, Value: c.Fn(r)}
		}
		rows[i] = r.Merge(row.New(fields...))
	}
	return wrap(rows)
}

// MapRows reshapes every row into a new row of any schema
func (df *DataFrame) MapRows(fn func(r row.Row, i int) row.Row) *DataFrame {
	rows := make([]row.Row, len(df.rows))
	for i, r := range df.rows {
		rows[i] = fn(r, i)
	}
	return wrap(rows)
}

// FilterRows keeps the rows for which pred is true, in order
func (df *DataFrame) FilterRows(pred func(r row.Row, i int) bool) *DataFrame {
	rows := make([]row.Row, 0, len(df.rows))
	for i, r := range df.rows {
		if pred(r, i) {
			rows = append(rows, r)
		}
	}
	return wrap(rows)
}

// PushRow appends r in place. It is the only operation that modifies a DataFrame.
func (df *DataFrame) PushRow(r row.Row) {
	df.rows = append(df.rows, r)
}

// ToArray returns a copy of the row slice
func (df *DataFrame) ToArray() []row.Row {
	return append(make([]row.Row, 0, len(df.rows)), df.rows...)
}

// Head returns the first n rows
func (df *DataFrame) Head(n int) []row.Row {
	n = max(0, min(n, len(df.rows)))
	return append([]row.Row{}, df.rows[:n]...)
}

// Tail returns the last n rows
func (df *DataFrame) Tail(n int) []row.Row {
	n = max(0, min(n, len(df.rows)))
	return append([]row.Row{}, df.rows[len(df.rows)-n:]...)
}

// String returns a string representation of the DataFrame
func (df *DataFrame) String() string {
	if len(df.rows) == 0 {
		return "DataFrame[empty]"
	}

	rowCount, colCount := df.Shape()
	columns := df.Columns()
	limit := min(rowCount, config.GetGlobalConfig().DisplayRows)

	cells := make([][]string, 0, limit+1)
	cells = append(cells, columns)
	for _, r := range df.rows[:limit] {
		line := make([]string, len(columns))
		for j, c := range columns {
			line[j] = fmt.Sprintf("%#v", r.Value(c))
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(columns))
	for _, line := range cells {
		for j, cell := range line {
			widths[j] = max(widths[j], len(cell))
		}
	}

	parts := []string{fmt.Sprintf("DataFrame[%dx%d]", rowCount, colCount)}
	for _, line := range cells {
		padded := make([]string, len(line))
		for j, cell := range line {
			padded[j] = fmt.Sprintf("%-*s", widths[j], cell)
		}
		parts = append(parts, "  "+strings.TrimRight(strings.Join(padded, "  "), " "))
	}
	if limit < rowCount {
		parts = append(parts, fmt.Sprintf("  ... %d more rows", rowCount-limit))
	}

	return strings.Join(parts, "\n")
}
