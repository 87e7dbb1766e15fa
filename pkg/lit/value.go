package lit

import "strconv"

// Value is a decoded primitive tagged with the shape the wire presented.
// The integer decode path hands one to the codec, since the same number
// may arrive signed or unsigned depending on how the source encoded it,
// and mismatch errors embed one to describe the offending value.
type Value struct {
	kind Kind

	str string
	f   float64
	i   int64
	u   uint64
	b   bool
}

// StringValue tags s as a wire string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// FloatValue tags f as a wire float.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// SignedValue tags i as a signed wire integer.
func SignedValue(i int64) Value { return Value{kind: KindSigned, i: i} }

// UnsignedValue tags u as an unsigned wire integer.
func UnsignedValue(u uint64) Value { return Value{kind: KindUnsigned, u: u} }

// BoolValue tags b as a wire boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the shape the wire presented.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. Only valid for KindString.
func (v Value) Str() string { return v.str }

// Float returns the float payload. Only valid for KindFloat.
func (v Value) Float() float64 { return v.f }

// Signed returns the integer payload. Only valid for KindSigned.
func (v Value) Signed() int64 { return v.i }

// Unsigned returns the integer payload. Only valid for KindUnsigned.
func (v Value) Unsigned() uint64 { return v.u }

// Bool returns the boolean payload. Only valid for KindBool.
func (v Value) Bool() bool { return v.b }

// String renders the value for error messages, e.g. `string "xyz"` or
// `integer 123`.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.kind.String() + " " + strconv.Quote(v.str)
	case KindFloat:
		return v.kind.String() + " " + strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindSigned:
		return v.kind.String() + " " + strconv.FormatInt(v.i, 10)
	case KindUnsigned:
		return v.kind.String() + " " + strconv.FormatUint(v.u, 10)
	case KindBool:
		return v.kind.String() + " " + strconv.FormatBool(v.b)
	default:
		return "unknown"
	}
}
