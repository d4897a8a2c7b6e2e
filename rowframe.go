// Package rowframe provides an in-memory, row-oriented DataFrame and a named
// column Series for exploratory data work.
// This package is the sole public API for the library.
//
// A DataFrame is an ordered sequence of immutable rows; its schema is taken
// from the first row. A Series is a named sequence of cells, each an explicit
// Value of kind Number, Text, Boolean, Null, Undefined or Other.
//
//	users := rowframe.NewDataFrame(
//		rowframe.RowOf("id", 1, "name", "Alice"),
//		rowframe.RowOf("id", 2, "name", "Bob"),
//	)
//	ages := rowframe.NewDataFrame(rowframe.RowOf("userId", 1, "age", 25))
//	joined := users.LeftJoin(ages, rowframe.JoinOn{ThisKey: "id", OtherKey: "userId"})
package rowframe

import (
	stdio "io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/rowframe/internal/config"
	"github.com/paveg/rowframe/internal/dataframe"
	"github.com/paveg/rowframe/internal/errors"
	"github.com/paveg/rowframe/internal/io"
	"github.com/paveg/rowframe/internal/monitoring"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/series"
	"github.com/paveg/rowframe/internal/value"
)

type (
	// DataFrame is an ordered sequence of rows
	DataFrame = dataframe.DataFrame
	// Series is a named, ordered column of values
	Series = series.Series
	// Row is an immutable ordered record
	Row = row.Row
	// Field is a single key/value pair of a Row
	Field = row.Field
	// Value is a single cell
	Value = value.Value
	// Kind identifies the variant a Value holds
	Kind = value.Kind

	// JoinOn names the key column on each side of a join
	JoinOn = dataframe.JoinOn
	// Selector picks row positions for ILoc
	Selector = dataframe.Selector
	// SliceSelector selects a stepped range of rows for ILoc
	SliceSelector = dataframe.SliceSelector
	// Computed is a column computed by Assign
	Computed = dataframe.Computed
	// ColumnMapper rebuilds a column in MapColumns
	ColumnMapper = dataframe.ColumnMapper
	// Filler supplies the values of a column added with AddColumn
	Filler = dataframe.Filler

	// LambdaFunc maps one Series element and its position to a new element
	LambdaFunc = series.LambdaFunc
	// Predicate decides whether a Series element is valid for ForwardFill and BackwardFill
	Predicate = series.Predicate
	// Summary holds descriptive statistics of a Series
	Summary = series.Summary

	// Config holds library-wide settings
	Config = config.Config
	// DataFrameError is the error type returned by every failing operation
	DataFrameError = errors.DataFrameError
	// MetricsSummary aggregates the recorded operation metrics
	MetricsSummary = monitoring.MetricsSummary
)

// Value kinds
const (
	KindUndefined = value.KindUndefined
	KindNull      = value.KindNull
	KindNumber    = value.KindNumber
	KindText      = value.KindText
	KindBoolean   = value.KindBoolean
	KindOther     = value.KindOther
)

// Sentinel errors for use with errors.Is
var (
	ErrEmptyDataFrame   = errors.ErrEmptyDataFrame
	ErrOutOfBounds      = errors.ErrOutOfBounds
	ErrInvalidSlice     = errors.ErrInvalidSlice
	ErrMismatchedLength = errors.ErrMismatchedLength
	ErrSchemaMismatch   = errors.ErrSchemaMismatch
)

// NewDataFrame creates a DataFrame from rows. The first row defines Columns and Shape.
func NewDataFrame(rows ...Row) *DataFrame {
	return dataframe.New(rows...)
}

// NewStrictDataFrame creates a DataFrame whose rows must all carry the first row's keys.
func NewStrictDataFrame(rows ...Row) (*DataFrame, error) {
	return dataframe.NewStrict(rows...)
}

// FromArrow creates a DataFrame from an Arrow record.
func FromArrow(rec arrow.Record) (*DataFrame, error) {
	return dataframe.FromArrow(rec)
}

// NewSeries creates a Series from values.
func NewSeries(name string, items []Value) *Series {
	return series.New(name, items)
}

// SeriesOf creates a Series from native Go values.
func SeriesOf(name string, items ...any) *Series {
	return series.Of(name, items...)
}

// NewRow creates a Row from fields.
func NewRow(fields ...Field) Row {
	return row.New(fields...)
}

// RowOf creates a Row from alternating keys and native values.
// It panics on an odd argument count or a non-string key.
func RowOf(kv ...any) Row {
	return row.Of(kv...)
}

// F builds a Field from a native Go value.
func F(key string, v any) Field {
	return row.F(key, v)
}

// Pick returns a row holding exactly keys, in order.
func Pick(r Row, keys []string) Row {
	return row.Pick(r, keys)
}

// Omit returns a row holding allKeys minus exclude, in allKeys order.
func Omit(r Row, allKeys, exclude []string) Row {
	return row.Omit(r, allKeys, exclude)
}

// Value constructors

// Undefined returns the marker for an absent cell.
func Undefined() Value { return value.Undefined() }

// Null returns the explicit empty marker.
func Null() Value { return value.Null() }

// NaN returns a Number holding NaN.
func NaN() Value { return value.NaN() }

// Number wraps a float64.
func Number(f float64) Value { return value.Number(f) }

// Text wraps a string.
func Text(s string) Value { return value.Text(s) }

// Bool wraps a bool.
func Bool(b bool) Value { return value.Bool(b) }

// ValueOf converts a native Go value; nil becomes Null.
func ValueOf(v any) Value { return value.Of(v) }

// Selectors and column helpers

// At selects the row at index i.
func At(i int) Selector { return dataframe.At(i) }

// Rows selects rows by index, in the given order.
func Rows(indices ...int) Selector { return dataframe.Rows(indices...) }

// Slice starts a slice selector; unset bounds default to 0, Len() and 1.
func Slice() SliceSelector { return dataframe.Slice() }

// Compute pairs a column name with the function Assign uses to compute it.
func Compute(name string, fn func(r Row) Value) Computed {
	return dataframe.Compute(name, fn)
}

// MapColumn pairs a column name with its MapColumns function.
func MapColumn(name string, fn func(s *Series) *Series) ColumnMapper {
	return dataframe.MapColumn(name, fn)
}

// Constant fills every row of an added column with v.
func Constant(v Value) Filler { return dataframe.Constant(v) }

// Generator fills each row of an added column with fn(row, index).
func Generator(fn func(r Row, i int) Value) Filler { return dataframe.Generator(fn) }

// Configuration

// SetConfig replaces the library-wide configuration.
func SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// GetConfig returns the library-wide configuration.
func GetConfig() Config {
	return config.GetGlobalConfig()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return config.NewConfig()
}

// LoadConfig reads a JSON, YAML or .env configuration file and installs it.
func LoadConfig(filename string) error {
	cfg, err := config.LoadFromFile(filename)
	if err != nil {
		return err
	}
	return SetConfig(cfg)
}

// Metrics returns a summary of the operations recorded while
// Config.MetricsCollection is enabled.
func Metrics() MetricsSummary {
	return monitoring.Default().GetSummary()
}

// ResetMetrics discards the recorded operation metrics.
func ResetMetrics() {
	monitoring.Default().Clear()
}

// I/O

// ReadCSV reads a CSV stream with a header row and type inference.
func ReadCSV(r stdio.Reader) (*DataFrame, error) {
	return io.NewCSVReader(r, io.DefaultCSVOptions()).Read()
}

// WriteCSV writes df as CSV with a header row taken from Columns().
func WriteCSV(w stdio.Writer, df *DataFrame) error {
	return io.NewCSVWriter(w, io.DefaultCSVOptions()).Write(df)
}

// ReadJSON reads a JSON array of objects.
func ReadJSON(r stdio.Reader) (*DataFrame, error) {
	return io.NewJSONReader(r, io.DefaultJSONOptions()).Read()
}

// WriteJSON writes df as a JSON array of objects.
func WriteJSON(w stdio.Writer, df *DataFrame) error {
	return io.NewJSONWriter(w, io.DefaultJSONOptions()).Write(df)
}

// ReadJSONLines reads one JSON object per line.
func ReadJSONLines(r stdio.Reader) (*DataFrame, error) {
	return io.NewJSONReader(r, io.JSONOptions{Format: io.JSONLines}).Read()
}

// WriteJSONLines writes df as one JSON object per line.
func WriteJSONLines(w stdio.Writer, df *DataFrame) error {
	return io.NewJSONWriter(w, io.JSONOptions{Format: io.JSONLines}).Write(df)
}

// ReadParquet reads a Parquet stream.
func ReadParquet(r stdio.Reader) (*DataFrame, error) {
	return io.NewParquetReader(r, io.DefaultParquetOptions(), memory.NewGoAllocator()).Read()
}

// WriteParquet writes df as Parquet with snappy compression.
func WriteParquet(w stdio.Writer, df *DataFrame) error {
	return io.NewParquetWriter(w, io.DefaultParquetOptions()).Write(df)
}
