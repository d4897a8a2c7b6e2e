package dataframe

import (
	"github.com/paveg/rowframe/internal/config"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/series"
	"github.com/paveg/rowframe/internal/validation"
	"github.com/paveg/rowframe/internal/value"
)

// ColumnMapper rebuilds column Name from the same-named source column
type ColumnMapper struct {
	Name string
	Fn   func(s *series.Series) *series.Series
}

// MapColumn pairs a column name with its mapping function
func MapColumn(name string, fn func(s *series.Series) *series.Series) ColumnMapper {
	return ColumnMapper{Name: name, Fn: fn}
}

// MapColumns builds a new DataFrame whose columns are the mapper results,
// zipped by position. Each mapper receives Col(Name); a name the rows do not
// carry yields a Series of Undefined. All results must have the same length.
func (df *DataFrame) MapColumns(mappers ...ColumnMapper) (*DataFrame, error) {
	var result *DataFrame
	err := record("MapColumns", df.Len(), func() (int, error) {
		if len(mappers) == 0 {
			result = wrap([]row.Row{})
			return 0, nil
		}

		columns := make([]*series.Series, len(mappers))
		for i, m := range mappers {
			columns[i] = m.Fn(df.Col(m.Name))
		}

		length := columns[0].Len()
		for i := 1; i < len(columns); i++ {
			if err := validation.ValidateLength(length, columns[i].Len(), "MapColumns", mappers[i].Name); err != nil {
				config.GetGlobalConfig().Logger().Debug("MapColumns length mismatch",
					"column", mappers[i].Name,
					"expected", length,
					"actual", columns[i].Len())
				return 0, err
			}
		}

		rows := make([]row.Row, length)
		fields := make([]row.Field, len(mappers))
		for r := range length {
			for i, m := range mappers {
				fields[i] = row.Field{Key: m.Name, Value: columns[i].At(r)}
			}
			rows[r] = row.New(fields...)
		}
		result = wrap(rows)
		return length, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Filler produces the values of a column added with AddColumn
type Filler interface {
	fill(r row.Row, i int) value.Value
}

type constantFiller struct {
	v value.Value
}

func (c constantFiller) fill(row.Row, int) value.Value {
	return c.v
}

// GeneratorFunc computes a cell from its row and position
type GeneratorFunc func(r row.Row, i int) value.Value

func (g GeneratorFunc) fill(r row.Row, i int) value.Value {
	return g(r, i)
}

// Constant fills every row with v
func Constant(v value.Value) Filler {
	return constantFiller{v: v}
}

// Generator fills each row with fn(row, index)
func Generator(fn func(r row.Row, i int) value.Value) Filler {
	return GeneratorFunc(fn)
}

// AddColumn returns a new DataFrame with column key set on every row.
// An existing key is overwritten in place; a nil filler sets Undefined.
func (df *DataFrame) AddColumn(key string, filler Filler) *DataFrame {
	if filler == nil {
		filler = Constant(value.Undefined())
	}
	rows := make([]row.Row, len(df.rows))
	for i, r := range df.rows {
		rows[i] = r.With(key, filler.fill(r, i))
	}
	return wrap(rows)
}
