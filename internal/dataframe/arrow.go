package dataframe

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/paveg/rowframe/internal/errors"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/value"
)

// ToArrow converts the DataFrame into an Arrow record with one column per
// entry of Columns(). A column whose present values are all numbers becomes
// float64, all text becomes utf8 and all booleans becomes bool; any other mix
// is rendered as utf8. Missing cells become nulls. The caller must Release
// the record. A nil allocator uses the Go allocator.
func (df *DataFrame) ToArrow(mem memory.Allocator) arrow.Record {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	columns := df.Columns()
	fields := make([]arrow.Field, len(columns))
	arrays := make([]arrow.Array, len(columns))
	for i, name := range columns {
		arr := df.columnToArrow(name, mem)
		defer arr.Release()
		fields[i] = arrow.Field{Name: name, Type: arr.DataType(), Nullable: true}
		arrays[i] = arr
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, arrays, int64(len(df.rows)))
}

func (df *DataFrame) columnToArrow(name string, mem memory.Allocator) arrow.Array {
	cells := df.Col(name).Items()

	switch inferKind(cells) {
	case value.KindNumber:
		builder := array.NewFloat64Builder(mem)
		defer builder.Release()
		for _, v := range cells {
			if f, ok := v.Float(); ok {
				builder.Append(f)
			} else {
				builder.AppendNull()
			}
		}
		return builder.NewArray()

	case value.KindBoolean:
		builder := array.NewBooleanBuilder(mem)
		defer builder.Release()
		for _, v := range cells {
			if b, ok := v.Boolean(); ok {
				builder.Append(b)
			} else {
				builder.AppendNull()
			}
		}
		return builder.NewArray()

	default:
		builder := array.NewStringBuilder(mem)
		defer builder.Release()
		for _, v := range cells {
			if v.IsMissing() {
				builder.AppendNull()
			} else if s, ok := v.Str(); ok {
				builder.Append(s)
			} else {
				builder.Append(v.String())
			}
		}
		return builder.NewArray()
	}
}

// inferKind returns the single kind shared by every present cell, or
// KindText when the column is mixed or entirely missing.
func inferKind(cells []value.Value) value.Kind {
	kind := value.KindUndefined
	for _, v := range cells {
		if v.IsMissing() {
			continue
		}
		switch {
		case kind == value.KindUndefined:
			kind = v.Kind()
		case kind != v.Kind():
			return value.KindText
		}
	}
	if kind == value.KindUndefined || kind == value.KindOther {
		return value.KindText
	}
	return kind
}

// FromArrow builds a DataFrame from an Arrow record. Integer, floating point,
// string and boolean columns are supported; nulls become Null.
func FromArrow(rec arrow.Record) (*DataFrame, error) {
	schema := rec.Schema()
	for i, f := range schema.Fields() {
		if !supportedArrowType(f.Type) {
			return nil, errors.NewUnsupportedTypeError("FromArrow", schema.Field(i).Name, f.Type.String())
		}
	}

	numRows := int(rec.NumRows())
	rows := make([]row.Row, numRows)
	fields := make([]row.Field, rec.NumCols())
	for r := range numRows {
		for c, col := range rec.Columns() {
			fields[c] = row.Field{Key: schema.Field(c).Name, Value: arrowValue(col, r)}
		}
		rows[r] = row.New(fields...)
	}
	return wrap(rows), nil
}

func arrowValue(arr arrow.Array, i int) value.Value {
	if arr.IsNull(i) {
		return value.Null()
	}
	return value.Of(arr.GetOneForMarshal(i))
}

func supportedArrowType(dt arrow.DataType) bool {
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT32, arrow.FLOAT64,
		arrow.STRING, arrow.LARGE_STRING, arrow.BOOL:
		return true
	default:
		return false
	}
}
