// Package testutil provides common testing utilities shared by the rowframe
// test suites: standard fixture frames and DataFrame assertions.
package testutil

import (
	"testing"

	"github.com/paveg/rowframe/internal/dataframe"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// defaultRowCount is the default number of rows in test DataFrames.
	defaultRowCount = 4
	// nullEvery marks every nth age as Null when WithNulls is set.
	nullEvery = 3
)

// TestDataFrameOption configures test DataFrame creation.
type TestDataFrameOption func(*testDataFrameConfig)

type testDataFrameConfig struct {
	includeNulls bool
	rowCount     int
	withActive   bool
}

// WithNulls sets every third age to Null, starting with the third row.
func WithNulls() TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.includeNulls = true
	}
}

// WithRowCount sets the number of rows in test data.
func WithRowCount(count int) TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.rowCount = count
	}
}

// WithActiveColumn includes an 'active' boolean column.
func WithActiveColumn() TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.withActive = true
	}
}

var (
	baseNames    = []string{"Alice", "Bob", "Charlie", "David", "Eve", "Frank", "Grace", "Henry"}
	baseAges     = []int{25, 30, 35, 28, 32, 45, 29, 38}
	baseDepts    = []string{"Engineering", "Sales", "Engineering", "Marketing", "HR", "Finance", "Engineering", "Sales"}
	baseSalaries = []int{100000, 80000, 120000, 75000, 90000, 110000, 95000, 85000}
	baseActive   = []bool{true, true, false, true, true, false, true, false}
)

// CreateTestDataFrame creates a standard test DataFrame with employee data.
//
// Default rows carry, in order:
// - id: 1..n
// - name: ["Alice", "Bob", "Charlie", "David"]
// - age: [25, 30, 35, 28]
// - department: ["Engineering", "Sales", "Engineering", "Marketing"]
// - salary: [100000, 80000, 120000, 75000]
func CreateTestDataFrame(opts ...TestDataFrameOption) *dataframe.DataFrame {
	cfg := &testDataFrameConfig{
		rowCount: defaultRowCount,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	df := dataframe.New()
	for i := range cfg.rowCount {
		age := value.Int(baseAges[i%len(baseAges)])
		if cfg.includeNulls && (i+1)%nullEvery == 0 {
			age = value.Null()
		}

		fields := []row.Field{
			row.F("id", i+1),
			row.F("name", baseNames[i%len(baseNames)]),
			{Key: "age", Value: age},
			row.F("department", baseDepts[i%len(baseDepts)]),
			row.F("salary", baseSalaries[i%len(baseSalaries)]),
		}
		if cfg.withActive {
			fields = append(fields, row.F("active", baseActive[i%len(baseActive)]))
		}
		df.PushRow(row.New(fields...))
	}
	return df
}

// CreateSimpleTestDataFrame creates a simple 2-column DataFrame for basic testing.
func CreateSimpleTestDataFrame() *dataframe.DataFrame {
	return dataframe.New(
		row.Of("name", "Alice", "age", 25),
		row.Of("name", "Bob", "age", 30),
	)
}

// AssertDataFrameEqual compares two DataFrames row by row. Key order within
// a row is not significant; row order is.
func AssertDataFrameEqual(t *testing.T, expected, actual *dataframe.DataFrame) {
	t.Helper()

	require.NotNil(t, expected, "expected DataFrame should not be nil")
	require.NotNil(t, actual, "actual DataFrame should not be nil")

	require.Equal(t, expected.Len(), actual.Len(), "DataFrame lengths should match")
	assert.Equal(t, expected.Columns(), actual.Columns(), "DataFrame columns should match")

	for i, want := range expected.ToArray() {
		got, _ := actual.Row(i)
		assert.True(t, want.Equal(got), "row %d: expected %v, got %v", i, want, got)
	}
}

// AssertDataFrameHasColumns verifies that a DataFrame has exactly the expected columns, in order.
func AssertDataFrameHasColumns(t *testing.T, df *dataframe.DataFrame, expectedColumns []string) {
	t.Helper()

	require.NotNil(t, df, "DataFrame should not be nil")
	assert.Equal(t, expectedColumns, df.Columns())
}

// AssertDataFrameNotEmpty verifies that a DataFrame is not empty.
func AssertDataFrameNotEmpty(t *testing.T, df *dataframe.DataFrame) {
	t.Helper()

	require.NotNil(t, df, "DataFrame should not be nil")
	assert.Positive(t, df.Len(), "DataFrame should not be empty")
	assert.NotEmpty(t, df.Columns(), "DataFrame should have columns")
}
