package telegraf

import (
	"reflect"
	"strconv"
)

type fieldKind uint8

const (
	fieldBool fieldKind = iota
	fieldUint
	fieldInt
	fieldFloat
	fieldString
)

// FieldValue is one typed field value. It is immutable once constructed and
// knows its own line-protocol rendering: booleans are the bare words true and
// false, unsigned integers carry a "u" suffix, signed integers an "i" suffix,
// floats use Go's default formatting and strings are wrapped in double quotes.
//
// Build values with the typed constructors, or from arbitrary Go values with
// NewFieldValue.
type FieldValue struct {
	kind fieldKind
	b    bool
	u    uint64
	i    int64
	f    float64
	s    string
}

// Bool returns a boolean field value.
func Bool(v bool) FieldValue { return FieldValue{kind: fieldBool, b: v} }

// Uint returns an unsigned integer field value.
func Uint(v uint64) FieldValue { return FieldValue{kind: fieldUint, u: v} }

// Int returns a signed integer field value.
func Int(v int64) FieldValue { return FieldValue{kind: fieldInt, i: v} }

// Float returns a float field value.
func Float(v float64) FieldValue { return FieldValue{kind: fieldFloat, f: v} }

// String returns a string field value. The string is emitted between double
// quotes exactly as given; embedded quotes and backslashes are not escaped.
func String(v string) FieldValue { return FieldValue{kind: fieldString, s: v} }

// String renders the value in line-protocol literal syntax.
func (v FieldValue) String() string {
	switch v.kind {
	case fieldBool:
		return strconv.FormatBool(v.b)
	case fieldUint:
		return strconv.FormatUint(v.u, 10) + "u"
	case fieldInt:
		return strconv.FormatInt(v.i, 10) + "i"
	case fieldFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return `"` + v.s + `"`
	}
}

// FieldValuer is implemented by types that can represent themselves as a
// field value. It is the extension point for value types this package does
// not know about.
type FieldValuer interface {
	FieldValue() FieldValue
}

// NewFieldValue converts a Go value to its field value representation.
// Integers of any width widen to 64 bits, keeping their signedness; float32
// widens to float64. Types without a matching variant yield an
// *UnsupportedTypeError, reported here rather than at render time.
func NewFieldValue(value any) (FieldValue, error) {
	switch v := value.(type) {
	case FieldValue:
		return v, nil
	case FieldValuer:
		return v.FieldValue(), nil
	case bool:
		return Bool(v), nil
	case uint:
		return Uint(uint64(v)), nil
	case uint8:
		return Uint(uint64(v)), nil
	case uint16:
		return Uint(uint64(v)), nil
	case uint32:
		return Uint(uint64(v)), nil
	case uint64:
		return Uint(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	default:
		return FieldValue{}, &UnsupportedTypeError{Type: reflect.TypeOf(value)}
	}
}
