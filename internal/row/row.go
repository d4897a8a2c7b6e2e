// Package row provides the ordered record stored in a DataFrame.
//
// A Row is immutable: every operation that changes fields returns a new Row.
// Rows can therefore be shared freely between a source DataFrame and every
// frame derived from it without aliasing hazards.
package row

import (
	"fmt"
	"strings"

	"github.com/paveg/rowframe/internal/value"
)

// Field is a single key/value pair of a Row.
type Field struct {
	Key   string
	Value value.Value
}

// F builds a Field from a native Go value.
func F(key string, v any) Field {
	return Field{Key: key, Value: value.Of(v)}
}

// Row is an ordered mapping from column name to Value.
type Row struct {
	keys []string
	vals map[string]value.Value
}

// New creates a Row from fields. A repeated key keeps its first position
// and takes the last value.
func New(fields ...Field) Row {
	r := empty(len(fields))
	for _, f := range fields {
		r.set(f.Key, f.Value)
	}
	return r
}

// Of creates a Row from alternating keys and native values:
//
//	row.Of("id", 1, "name", "Alice")
//
// It panics on an odd argument count or a non-string key.
func Of(kv ...any) Row {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("row.Of: odd number of arguments (%d)", len(kv)))
	}
	r := empty(len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("row.Of: key at position %d is %T, not string", i, kv[i]))
		}
		r.set(key, value.Of(kv[i+1]))
	}
	return r
}

func empty(capacity int) Row {
	return Row{
		keys: make([]string, 0, capacity),
		vals: make(map[string]value.Value, capacity),
	}
}

// set is only used while a Row is being built.
func (r *Row) set(key string, v value.Value) {
	if _, exists := r.vals[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = v
}

// Keys returns the field names in order.
func (r Row) Keys() []string {
	return append([]string{}, r.keys...)
}

// Len returns the number of fields.
func (r Row) Len() int {
	return len(r.keys)
}

// Has reports whether the row carries key.
func (r Row) Has(key string) bool {
	_, ok := r.vals[key]
	return ok
}

// Get returns the value for key and whether the row carries it.
func (r Row) Get(key string) (value.Value, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Value returns the value for key, or Undefined when the row lacks it.
func (r Row) Value(key string) value.Value {
	return r.vals[key]
}

// Fields returns the key/value pairs in order.
func (r Row) Fields() []Field {
	fields := make([]Field, len(r.keys))
	for i, k := range r.keys {
		fields[i] = Field{Key: k, Value: r.vals[k]}
	}
	return fields
}

// With returns a copy of r with key set to v. An existing key keeps its position.
func (r Row) With(key string, v value.Value) Row {
	out := r.clone(1)
	out.set(key, v)
	return out
}

// Merge returns a copy of r with every field of other applied on top.
// Keys already present keep their position and take other's value;
// new keys are appended in other's order.
func (r Row) Merge(other Row) Row {
	out := r.clone(other.Len())
	for _, k := range other.keys {
		out.set(k, other.vals[k])
	}
	return out
}

// MergeMissing returns a copy of r with the fields of other that r lacks
// appended in other's order. Fields r already carries keep r's value.
func (r Row) MergeMissing(other Row) Row {
	out := r.clone(other.Len())
	for _, k := range other.keys {
		if !out.Has(k) {
			out.set(k, other.vals[k])
		}
	}
	return out
}

func (r Row) clone(extra int) Row {
	out := empty(len(r.keys) + extra)
	for _, k := range r.keys {
		out.set(k, r.vals[k])
	}
	return out
}

// Equal reports whether both rows carry the same keys with Equal values.
// Key order is not significant.
func (r Row) Equal(other Row) bool {
	if len(r.keys) != len(other.keys) {
		return false
	}
	for k, v := range r.vals {
		ov, ok := other.vals[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Map returns the row as a native Go map. Missing markers map to nil.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.keys))
	for k, v := range r.vals {
		m[k] = v.Interface()
	}
	return m
}

// String renders the row as {key: value, ...} in key order.
func (r Row) String() string {
	parts := make([]string, len(r.keys))
	for i, k := range r.keys {
		parts[i] = fmt.Sprintf("%s: %#v", k, r.vals[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
