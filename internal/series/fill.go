package series

import "github.com/paveg/rowframe/internal/value"

// Predicate decides whether a value is valid for forward/backward filling
type Predicate func(v value.Value) bool

// Fill replaces every element Equal to one of find with fill.
// Equality is same-value-zero, so NaN in find matches NaN elements.
func (s *Series) Fill(fill value.Value, find ...value.Value) *Series {
	return s.Lambda(func(v value.Value, _ int) value.Value {
		for _, target := range find {
			if v.Equal(target) {
				return fill
			}
		}
		return v
	})
}

// FillNullish replaces Undefined, Null and NaN with fill
func (s *Series) FillNullish(fill value.Value) *Series {
	return s.Fill(fill, value.Undefined(), value.Null(), value.NaN())
}

// FillFalsey replaces Undefined, Null, NaN, 0, "" and false with fill
func (s *Series) FillFalsey(fill value.Value) *Series {
	return s.Fill(fill,
		value.Undefined(), value.Null(), value.NaN(),
		value.Int(0), value.Text(""), value.Bool(false))
}

// ForwardFill replaces each invalid element with the nearest valid element
// before it. A nil isValid treats truthy values as valid. A leading run of
// invalid elements has nothing to copy from and is left unchanged.
func (s *Series) ForwardFill(isValid Predicate) *Series {
	if isValid == nil {
		isValid = value.Value.Truthy
	}

	out := s.Items()
	var last value.Value
	seen := false
	for i, v := range out {
		if isValid(v) {
			last, seen = v, true
			continue
		}
		if seen {
			out[i] = last
		}
	}
	return &Series{name: s.name, items: out}
}

// BackwardFill replaces each invalid element with the nearest valid element
// after it. A nil isValid treats truthy values as valid. A trailing run of
// invalid elements is left unchanged.
func (s *Series) BackwardFill(isValid Predicate) *Series {
	if isValid == nil {
		isValid = value.Value.Truthy
	}

	out := s.Items()
	var next value.Value
	seen := false
	for i := len(out) - 1; i >= 0; i-- {
		if isValid(out[i]) {
			next, seen = out[i], true
			continue
		}
		if seen {
			out[i] = next
		}
	}
	return &Series{name: s.name, items: out}
}
