// Package msgpacklit bridges lit codecs to MessagePack documents.
//
// MessagePack tags every integer with a signed or unsigned family code,
// so decoded integers surface with the same signedness split the codecs
// use for cross-kind matching.
package msgpacklit

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/lit-labs/litcodec/pkg/lit"
)

// Decode decodes a single MessagePack document and matches it against
// c. A document of the right shape but the wrong value yields a
// lit.MismatchError; anything else is a decode error.
func Decode(data []byte, c lit.Codec) error {
	return c.Decode(decoder{data: data})
}

// Encode renders the value bound to c as a MessagePack document.
func Encode(c lit.Codec) ([]byte, error) {
	var e encoder
	if err := c.Encode(&e); err != nil {
		return nil, err
	}
	return e.out, nil
}

// decoder reads one MessagePack document as a single primitive.
type decoder struct {
	data []byte
}

func (d decoder) reader() *msgpack.Decoder {
	return msgpack.NewDecoder(bytes.NewReader(d.data))
}

func (d decoder) DecodeString() (string, error) {
	dec := d.reader()
	code, err := dec.PeekCode()
	if err != nil {
		return "", err
	}
	if !msgpcode.IsString(code) {
		return "", fmt.Errorf("msgpack: cannot decode %s as a string", shape(code))
	}
	s, err := dec.DecodeString()
	if err != nil {
		return "", err
	}
	return s, expectEOF(dec)
}

func (d decoder) DecodeFloat64() (float64, error) {
	dec := d.reader()
	code, err := dec.PeekCode()
	if err != nil {
		return 0, err
	}

	var f float64
	switch {
	case code == msgpcode.Float || code == msgpcode.Double:
		f, err = dec.DecodeFloat64()
	case unsignedCode(code):
		var u uint64
		u, err = dec.DecodeUint64()
		f = float64(u)
	case signedCode(code):
		var i int64
		i, err = dec.DecodeInt64()
		f = float64(i)
	default:
		return 0, fmt.Errorf("msgpack: cannot decode %s as a number", shape(code))
	}
	if err != nil {
		return 0, err
	}
	return f, expectEOF(dec)
}

func (d decoder) DecodeInt() (lit.Value, error) {
	dec := d.reader()
	code, err := dec.PeekCode()
	if err != nil {
		return lit.Value{}, err
	}

	var v lit.Value
	switch {
	case unsignedCode(code):
		var u uint64
		u, err = dec.DecodeUint64()
		v = lit.UnsignedValue(u)
	case signedCode(code):
		var i int64
		i, err = dec.DecodeInt64()
		v = lit.SignedValue(i)
	default:
		return lit.Value{}, fmt.Errorf("msgpack: cannot decode %s as an integer", shape(code))
	}
	if err != nil {
		return lit.Value{}, err
	}
	return v, expectEOF(dec)
}

func (d decoder) DecodeBool() (bool, error) {
	dec := d.reader()
	code, err := dec.PeekCode()
	if err != nil {
		return false, err
	}
	if code != msgpcode.True && code != msgpcode.False {
		return false, fmt.Errorf("msgpack: cannot decode %s as a bool", shape(code))
	}
	b, err := dec.DecodeBool()
	if err != nil {
		return false, err
	}
	return b, expectEOF(dec)
}

// unsignedCode reports whether code opens a positive fixint or a uint
// family value.
func unsignedCode(code byte) bool {
	return code <= msgpcode.PosFixedNumHigh ||
		code == msgpcode.Uint8 || code == msgpcode.Uint16 ||
		code == msgpcode.Uint32 || code == msgpcode.Uint64
}

// signedCode reports whether code opens a negative fixint or an int
// family value.
func signedCode(code byte) bool {
	return code >= msgpcode.NegFixedNumLow ||
		code == msgpcode.Int8 || code == msgpcode.Int16 ||
		code == msgpcode.Int32 || code == msgpcode.Int64
}

// expectEOF rejects trailing bytes after the decoded document.
func expectEOF(dec *msgpack.Decoder) error {
	_, err := dec.PeekCode()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return errors.New("msgpack: extraneous data after value")
}

// shape names the document form for decode errors.
func shape(code byte) string {
	switch {
	case code == msgpcode.Nil:
		return "null"
	case code == msgpcode.True || code == msgpcode.False:
		return "a bool"
	case msgpcode.IsString(code):
		return "a string"
	case unsignedCode(code) || signedCode(code):
		return "an integer"
	case code == msgpcode.Float || code == msgpcode.Double:
		return "a float"
	case msgpcode.IsBin(code):
		return "a byte string"
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		return "an array"
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		return "a map"
	}
	return fmt.Sprintf("code 0x%02x", code)
}

// encoder renders exactly one primitive as its MessagePack document.
// Integers use the shortest form, so non-negative values land in the
// unsigned families.
type encoder struct {
	out []byte
}

func (e *encoder) write(fill func(*msgpack.Encoder) error) error {
	var buf bytes.Buffer
	if err := fill(msgpack.NewEncoder(&buf)); err != nil {
		return err
	}
	e.out = buf.Bytes()
	return nil
}

func (e *encoder) EncodeString(s string) error {
	return e.write(func(enc *msgpack.Encoder) error { return enc.EncodeString(s) })
}

func (e *encoder) EncodeFloat64(f float64) error {
	return e.write(func(enc *msgpack.Encoder) error { return enc.EncodeFloat64(f) })
}

func (e *encoder) EncodeInt64(i int64) error {
	return e.write(func(enc *msgpack.Encoder) error { return enc.EncodeInt(i) })
}

func (e *encoder) EncodeBool(b bool) error {
	return e.write(func(enc *msgpack.Encoder) error { return enc.EncodeBool(b) })
}
