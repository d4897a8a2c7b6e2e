package dataframe

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/rowframe/internal/errors"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(
		row.Of("id", 1, "name", "Alice", "active", true, "mixed", 1),
		row.Of("id", 2, "name", nil, "active", false, "mixed", "two"),
		row.Of("id", 3, "active", nil, "mixed", false),
	)

	rec := df.ToArrow(mem)
	defer rec.Release()

	assert.Equal(t, int64(3), rec.NumRows())
	require.Equal(t, int64(4), rec.NumCols())

	schema := rec.Schema()
	assert.Equal(t, arrow.FLOAT64, schema.Field(0).Type.ID())
	assert.Equal(t, arrow.STRING, schema.Field(1).Type.ID())
	assert.Equal(t, arrow.BOOL, schema.Field(2).Type.ID())
	assert.Equal(t, arrow.STRING, schema.Field(3).Type.ID())

	ids := rec.Column(0).(*array.Float64)
	assert.Equal(t, []float64{1, 2, 3}, ids.Float64Values())

	names := rec.Column(1).(*array.String)
	assert.Equal(t, "Alice", names.Value(0))
	assert.True(t, names.IsNull(1))
	assert.True(t, names.IsNull(2))

	active := rec.Column(2).(*array.Boolean)
	assert.True(t, active.Value(0))
	assert.True(t, active.IsNull(2))

	mixed := rec.Column(3).(*array.String)
	assert.Equal(t, "1", mixed.Value(0))
	assert.Equal(t, "two", mixed.Value(1))
	assert.Equal(t, "false", mixed.Value(2))
}

func TestToArrowEmpty(t *testing.T) {
	rec := New().ToArrow(nil)
	defer rec.Release()

	assert.Equal(t, int64(0), rec.NumRows())
	assert.Equal(t, int64(0), rec.NumCols())
}

func TestArrowRoundTrip(t *testing.T) {
	df := New(
		row.Of("id", 1, "name", "Alice", "score", 9.5, "active", true),
		row.Of("id", 2, "name", "Bob", "score", nil, "active", false),
	)

	rec := df.ToArrow(memory.NewGoAllocator())
	defer rec.Release()

	back, err := FromArrow(rec)
	require.NoError(t, err)

	assert.Equal(t, df.ToArray(), back.ToArray())
}

func TestFromArrowIntegerColumns(t *testing.T) {
	mem := memory.NewGoAllocator()

	ints := array.NewInt64Builder(mem)
	defer ints.Release()
	ints.AppendValues([]int64{7, 8}, []bool{true, false})
	idArr := ints.NewArray()
	defer idArr.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true}}, nil)
	rec := array.NewRecord(schema, []arrow.Array{idArr}, 2)
	defer rec.Release()

	df, err := FromArrow(rec)
	require.NoError(t, err)

	first, _ := df.Row(0)
	second, _ := df.Row(1)
	assert.Equal(t, value.Int(7), first.Value("id"))
	assert.True(t, second.Value("id").IsNull())
}

func TestFromArrowUnsupportedType(t *testing.T) {
	mem := memory.NewGoAllocator()

	builder := array.NewDate32Builder(mem)
	defer builder.Release()
	builder.Append(arrow.Date32(1))
	arr := builder.NewArray()
	defer arr.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: "day", Type: arrow.FixedWidthTypes.Date32}}, nil)
	rec := array.NewRecord(schema, []arrow.Array{arr}, 1)
	defer rec.Release()

	_, err := FromArrow(rec)
	require.Error(t, err)

	var dfErr *errors.DataFrameError
	require.ErrorAs(t, err, &dfErr)
	assert.Equal(t, "day", dfErr.Column)
	assert.Contains(t, dfErr.Message, "date32")
}
