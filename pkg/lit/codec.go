package lit

import (
	"strconv"
	"unicode/utf8"
)

// Decoder is the primitive-reading side of the wire contract. A format
// adapter implements it over one encoded value; each method reads that
// value in the requested shape or fails with the adapter's own shape
// error. Adapters never compare values; matching belongs to the codecs.
type Decoder interface {
	// DecodeString reads one string.
	DecodeString() (string, error)
	// DecodeFloat64 reads one 64-bit float.
	DecodeFloat64() (float64, error)
	// DecodeInt reads one integer, keeping the signedness the wire
	// presented: the result's kind is KindSigned or KindUnsigned.
	DecodeInt() (Value, error)
	// DecodeBool reads one boolean.
	DecodeBool() (bool, error)
}

// Encoder is the primitive-writing side of the wire contract.
type Encoder interface {
	EncodeString(s string) error
	EncodeFloat64(f float64) error
	EncodeInt64(i int64) error
	EncodeBool(b bool) error
}

// Codec binds one literal constant to a decode/encode pair. Codecs are
// immutable values and safe for concurrent use: Decode reads a single
// primitive and accepts it only if it equals the bound literal, Encode
// writes the literal back out.
type Codec interface {
	Decode(d Decoder) error
	Encode(e Encoder) error
	// Describe returns the expected-literal description used in
	// mismatch errors, in the form `the lit <value>`.
	Describe() string
}

// Str matches one exact string. Comparison is byte-for-byte: no case
// folding, no trimming.
type Str string

// Describe implements Codec.
func (c Str) Describe() string { return "the lit " + string(c) }

// Decode reads one string and accepts it only if it equals the literal.
func (c Str) Decode(d Decoder) error {
	got, err := d.DecodeString()
	if err != nil {
		return err
	}
	if got != string(c) {
		return &MismatchError{Got: StringValue(got), Want: c.Describe()}
	}
	return nil
}

// Encode writes the literal string.
func (c Str) Encode(e Encoder) error { return e.EncodeString(string(c)) }

// Float matches one 64-bit float under IEEE equality: a NaN literal can
// never match, and -0.0 equals 0.0.
type Float float64

// Describe implements Codec.
func (c Float) Describe() string {
	return "the lit " + strconv.FormatFloat(float64(c), 'g', -1, 64)
}

// Decode reads one float and accepts it only if it equals the literal.
func (c Float) Decode(d Decoder) error {
	got, err := d.DecodeFloat64()
	if err != nil {
		return err
	}
	if got != float64(c) {
		return &MismatchError{Got: FloatValue(got), Want: c.Describe()}
	}
	return nil
}

// Encode writes the literal float.
func (c Float) Encode(e Encoder) error { return e.EncodeFloat64(float64(c)) }

// Int matches one 64-bit integer. The wire may present the number signed
// or unsigned; an unsigned presentation is reinterpreted as signed
// before comparison, so values above math.MaxInt64 wrap.
type Int int64

// Describe implements Codec.
func (c Int) Describe() string {
	return "the lit " + strconv.FormatInt(int64(c), 10)
}

// Decode reads one integer in whichever signedness the wire presents
// and accepts it only if it equals the literal.
func (c Int) Decode(d Decoder) error {
	got, err := d.DecodeInt()
	if err != nil {
		return err
	}
	return c.accept(got)
}

func (c Int) accept(got Value) error {
	switch got.Kind() {
	case KindSigned:
		if got.Signed() == int64(c) {
			return nil
		}
	case KindUnsigned:
		if int64(got.Unsigned()) == int64(c) {
			return nil
		}
	}
	return &MismatchError{Got: got, Want: c.Describe()}
}

// Encode writes the literal as a signed integer.
func (c Int) Encode(e Encoder) error { return e.EncodeInt64(int64(c)) }

// Bool matches one boolean. Only boolean-shaped wire values are
// requested, so no cross-kind path exists here.
type Bool bool

// Describe implements Codec.
func (c Bool) Describe() string { return "the lit " + strconv.FormatBool(bool(c)) }

// Decode reads one boolean and accepts it only if it equals the literal.
func (c Bool) Decode(d Decoder) error {
	got, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if got != bool(c) {
		return &MismatchError{Got: BoolValue(got), Want: c.Describe()}
	}
	return nil
}

// Encode writes the literal boolean.
func (c Bool) Encode(e Encoder) error { return e.EncodeBool(bool(c)) }

// Char matches a character carried as a string on the wire. A candidate
// is accepted when its first rune equals the literal; anything after the
// first rune is ignored, and the empty string never matches.
type Char rune

// Describe implements Codec.
func (c Char) Describe() string { return "the lit " + string(rune(c)) }

// Decode reads one string and accepts it only if its first rune equals
// the literal character.
func (c Char) Decode(d Decoder) error {
	got, err := d.DecodeString()
	if err != nil {
		return err
	}
	r, _ := utf8.DecodeRuneInString(got)
	if got == "" || r != rune(c) {
		return &MismatchError{Got: StringValue(got), Want: c.Describe()}
	}
	return nil
}

// Encode writes the literal character as a one-rune string.
func (c Char) Encode(e Encoder) error { return e.EncodeString(string(rune(c))) }
