// Package value provides the cell type stored in rows and series.
//
// A Value is an explicit sum type over the kinds of data a column may hold:
// numbers, text, booleans, the two missing markers (Null and Undefined) and
// arbitrary Go values. Mixed-type columns are represented as a sequence of
// Values so that aggregation can switch exhaustively on Kind instead of
// relying on implicit coercion.
package value

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindUndefined marks an absent cell, e.g. a key the row does not carry.
	KindUndefined Kind = iota
	// KindNull marks an explicitly empty cell.
	KindNull
	KindNumber
	KindText
	KindBoolean
	// KindOther wraps any Go value that is not one of the scalar kinds.
	KindOther
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a single cell. The zero Value is Undefined.
type Value struct {
	kind  Kind
	num   float64
	str   string
	b     bool
	other any
}

// Undefined returns the marker for an absent cell.
func Undefined() Value {
	return Value{}
}

// Null returns the explicit empty marker.
func Null() Value {
	return Value{kind: KindNull}
}

// Number wraps a float64. NaN and infinities are valid Numbers.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// NaN returns a Number holding NaN.
func NaN() Value {
	return Number(math.NaN())
}

// Int wraps any integer type as a Number.
func Int[T constraints.Integer](i T) Value {
	return Number(float64(i))
}

// Float wraps any float type as a Number.
func Float[T constraints.Float](f T) Value {
	return Number(float64(f))
}

// Text wraps a string.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// Of converts a native Go value into a Value.
// nil becomes Null, numeric types become Number, strings become Text,
// booleans become Boolean and everything else is wrapped as Other.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint:
		return Int(x)
	case uint8:
		return Int(x)
	case uint16:
		return Int(x)
	case uint32:
		return Int(x)
	case uint64:
		return Int(x)
	case float32:
		return Float(x)
	case float64:
		return Number(x)
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	default:
		return Value{kind: KindOther, other: v}
	}
}

// Values converts a list of native Go values with Of.
func Values(vs ...any) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Of(v)
	}
	return out
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsUndefined reports whether v is the absent-cell marker.
func (v Value) IsUndefined() bool {
	return v.kind == KindUndefined
}

// IsNull reports whether v is the explicit empty marker.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsMissing reports whether v is Null or Undefined.
func (v Value) IsMissing() bool {
	return v.kind == KindUndefined || v.kind == KindNull
}

// IsNumber reports whether v is a Number, including NaN and infinities.
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// IsValidNumber reports whether v is a finite, non-NaN Number.
func (v Value) IsValidNumber() bool {
	return v.kind == KindNumber && !math.IsNaN(v.num) && !math.IsInf(v.num, 0)
}

// IsNaN reports whether v is a Number holding NaN.
func (v Value) IsNaN() bool {
	return v.kind == KindNumber && math.IsNaN(v.num)
}

// IsNullish reports whether v is Null, Undefined or NaN.
func (v Value) IsNullish() bool {
	return v.IsMissing() || v.IsNaN()
}

// Truthy reports whether v would pass a plain truthiness test:
// Undefined, Null, NaN, 0, "" and false are falsey, everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindText:
		return v.str != ""
	case KindBoolean:
		return v.b
	default:
		return true
	}
}

// Float returns the number held by v.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Str returns the text held by v.
func (v Value) Str() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.str, true
}

// Boolean returns the boolean held by v.
func (v Value) Boolean() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// Interface returns v as a native Go value. Both missing markers map to nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.str
	case KindBoolean:
		return v.b
	case KindOther:
		return v.other
	default:
		return nil
	}
}

// Equal compares with same-value-zero semantics: NaN equals NaN and
// +0 equals -0. Values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindNumber:
		if math.IsNaN(v.num) {
			return math.IsNaN(o.num)
		}
		return v.num == o.num
	case KindText:
		return v.str == o.str
	case KindBoolean:
		return v.b == o.b
	default:
		return reflect.DeepEqual(v.other, o.other)
	}
}

// HashKey returns a kind-tagged canonical form of v. Values that are Equal
// produce the same key. Other values are keyed by their dynamic type alone,
// since Equal compares them deeply; callers must still confirm with Equal.
func (v Value) HashKey() string {
	switch v.kind {
	case KindUndefined:
		return "u"
	case KindNull:
		return "n"
	case KindNumber:
		f := v.num
		if f == 0 {
			f = 0 // collapse -0
		}
		return "f:" + strconv.FormatFloat(f, 'g', -1, 64)
	case KindText:
		return "s:" + v.str
	case KindBoolean:
		return "b:" + strconv.FormatBool(v.b)
	default:
		return fmt.Sprintf("o:%T", v.other)
	}
}

// String renders v for display.
func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindNumber:
		return formatNumber(v.num)
	case KindText:
		return v.str
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return fmt.Sprintf("%v", v.other)
	}
}

// GoString quotes text so that debug output distinguishes "1" from 1.
func (v Value) GoString() string {
	if v.kind == KindText {
		return strconv.Quote(v.str)
	}
	return v.String()
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
