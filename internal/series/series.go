// Package series provides data structures for column operations
package series

import (
	"fmt"
	"strings"

	"github.com/paveg/rowframe/internal/value"
)

// LambdaFunc maps one element and its position to a new element
type LambdaFunc func(v value.Value, i int) value.Value

// Series represents a named, ordered column of possibly mixed-kind values.
// Every transform returns a new Series; a Series is never mutated in place.
type Series struct {
	name  string
	items []value.Value
}

// New creates a new Series from a slice of values. The slice is copied.
func New(name string, items []value.Value) *Series {
	return &Series{
		name:  name,
		items: append(make([]value.Value, 0, len(items)), items...),
	}
}

// Of creates a new Series from native Go values, converted with value.Of
func Of(name string, items ...any) *Series {
	return &Series{
		name:  name,
		items: value.Values(items...),
	}
}

// Name returns the column name
func (s *Series) Name() string {
	return s.name
}

// Len returns the length of the series
func (s *Series) Len() int {
	return len(s.items)
}

// Items returns a copy of the values
func (s *Series) Items() []value.Value {
	return append(make([]value.Value, 0, len(s.items)), s.items...)
}

// ToArray returns a copy of the values
func (s *Series) ToArray() []value.Value {
	return s.Items()
}

// At returns the value at the given index, or Undefined when out of range
func (s *Series) At(index int) value.Value {
	if index < 0 || index >= len(s.items) {
		return value.Undefined()
	}
	return s.items[index]
}

// Rename returns the same values under a new name
func (s *Series) Rename(name string) *Series {
	return &Series{name: name, items: s.items}
}

// Lambda applies fn to every element and keeps the current name
func (s *Series) Lambda(fn LambdaFunc) *Series {
	return s.LambdaAs(s.name, fn)
}

// LambdaAs applies fn to every element and names the result newName
func (s *Series) LambdaAs(newName string, fn LambdaFunc) *Series {
	out := make([]value.Value, len(s.items))
	for i, v := range s.items {
		out[i] = fn(v, i)
	}
	return &Series{name: newName, items: out}
}

// Concat appends items and keeps the current name
func (s *Series) Concat(items []value.Value) *Series {
	return s.ConcatAs(s.name, items)
}

// ConcatAs appends items and names the result newName
func (s *Series) ConcatAs(newName string, items []value.Value) *Series {
	out := make([]value.Value, 0, len(s.items)+len(items))
	out = append(out, s.items...)
	out = append(out, items...)
	return &Series{name: newName, items: out}
}

// Head returns the first n values; false when the series is empty.
// n larger than the length returns every value.
func (s *Series) Head(n int) ([]value.Value, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	n = max(0, min(n, len(s.items)))
	return append([]value.Value{}, s.items[:n]...), true
}

// Tail returns the last n values; false when the series is empty.
// n at or beyond the length returns every value.
func (s *Series) Tail(n int) ([]value.Value, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	if n >= len(s.items) {
		return s.Items(), true
	}
	n = max(0, n)
	return append([]value.Value{}, s.items[len(s.items)-n:]...), true
}

// ToUpper upper-cases Text values and leaves other kinds unchanged
func (s *Series) ToUpper() *Series {
	return s.mapText(strings.ToUpper)
}

// ToLower lower-cases Text values and leaves other kinds unchanged
func (s *Series) ToLower() *Series {
	return s.mapText(strings.ToLower)
}

func (s *Series) mapText(fn func(string) string) *Series {
	return s.Lambda(func(v value.Value, _ int) value.Value {
		if str, ok := v.Str(); ok {
			return value.Text(fn(str))
		}
		return v
	})
}

// String returns a string representation of the series
func (s *Series) String() string {
	const preview = 5

	parts := make([]string, 0, preview)
	for i, v := range s.items {
		if i == preview {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%#v", v))
	}
	return fmt.Sprintf("Series[%s] (len=%d): [%s]", s.name, s.Len(), strings.Join(parts, ", "))
}
