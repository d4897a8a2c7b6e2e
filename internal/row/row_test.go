package row

import (
	"testing"

	"github.com/paveg/rowframe/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	r := Of("id", 1, "name", "Alice", "active", true)

	assert.Equal(t, []string{"id", "name", "active"}, r.Keys())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, value.Int(1), r.Value("id"))
	assert.Equal(t, value.Text("Alice"), r.Value("name"))
	assert.True(t, r.Value("missing").IsUndefined())

	_, ok := r.Get("missing")
	assert.False(t, ok)
}

func TestOfPanics(t *testing.T) {
	assert.Panics(t, func() { Of("id") })
	assert.Panics(t, func() { Of(1, "id") })
}

func TestNewRepeatedKey(t *testing.T) {
	r := New(F("a", 1), F("b", 2), F("a", 3))
	assert.Equal(t, []string{"a", "b"}, r.Keys())
	assert.Equal(t, value.Int(3), r.Value("a"))
}

func TestWithDoesNotMutate(t *testing.T) {
	original := Of("id", 1)
	updated := original.With("id", value.Int(2)).With("name", value.Text("Bob"))

	assert.Equal(t, value.Int(1), original.Value("id"))
	assert.False(t, original.Has("name"))
	assert.Equal(t, []string{"id", "name"}, updated.Keys())
	assert.Equal(t, value.Int(2), updated.Value("id"))
}

func TestMerge(t *testing.T) {
	left := Of("id", 1, "name", "Alice")
	right := Of("name", "Alicia", "age", 25)

	merged := left.Merge(right)
	assert.Equal(t, []string{"id", "name", "age"}, merged.Keys())
	assert.Equal(t, value.Text("Alicia"), merged.Value("name"))
	assert.Equal(t, value.Text("Alice"), left.Value("name"))
}

func TestMergeMissing(t *testing.T) {
	base := Of("name", "Alice", "age", 40)
	extra := Of("userId", 1, "age", 25)

	merged := base.MergeMissing(extra)
	assert.Equal(t, []string{"name", "age", "userId"}, merged.Keys())
	assert.Equal(t, value.Int(40), merged.Value("age"))
	assert.Equal(t, value.Int(1), merged.Value("userId"))
	assert.False(t, base.Has("userId"))
}

func TestEqual(t *testing.T) {
	assert.True(t, Of("a", 1, "b", "x").Equal(Of("b", "x", "a", 1)))
	assert.False(t, Of("a", 1).Equal(Of("a", 2)))
	assert.False(t, Of("a", 1).Equal(Of("a", 1, "b", 2)))
	assert.False(t, Of("a", 1).Equal(Of("b", 1)))
	assert.True(t, Of("a", value.NaN()).Equal(Of("a", value.NaN())))
}

func TestMapAndString(t *testing.T) {
	r := Of("id", 1, "name", "Alice", "age", nil)
	assert.Equal(t, map[string]any{"id": 1.0, "name": "Alice", "age": nil}, r.Map())
	assert.Equal(t, `{id: 1, name: "Alice", age: null}`, r.String())
}

func TestPick(t *testing.T) {
	r := Of("name", "Alice", "age", 30, "active", true)

	picked := Pick(r, []string{"active", "name"})
	assert.Equal(t, []string{"active", "name"}, picked.Keys())
	assert.True(t, picked.Equal(Of("name", "Alice", "active", true)))

	withAbsent := Pick(r, []string{"name", "email"})
	assert.Equal(t, []string{"name", "email"}, withAbsent.Keys())
	assert.True(t, withAbsent.Value("email").IsUndefined())
}

func TestOmit(t *testing.T) {
	columns := []string{"name", "age", "active"}

	dropped := Omit(Of("name", "Alice", "age", 30, "active", true), columns, []string{"active"})
	assert.Equal(t, Of("name", "Alice", "age", 30), dropped)

	// keys outside allKeys vanish, keys missing from the row read as Undefined
	divergent := Omit(Of("name", "Bob", "email", "bob@example.com"), columns, []string{"active"})
	assert.Equal(t, []string{"name", "age"}, divergent.Keys())
	assert.True(t, divergent.Value("age").IsUndefined())
	assert.False(t, divergent.Has("email"))
}
