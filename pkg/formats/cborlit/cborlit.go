// Package cborlit bridges lit codecs to CBOR documents.
//
// CBOR keeps unsigned and negative integers in separate major types, so
// decoded integers surface with the same signedness split the codecs
// use for cross-kind matching.
package cborlit

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/lit-labs/litcodec/pkg/lit"
)

// Decode decodes a single CBOR document and matches it against c. A
// document of the right shape but the wrong value yields a
// lit.MismatchError; anything else is a decode error.
func Decode(data []byte, c lit.Codec) error {
	return c.Decode(decoder{data: data})
}

// Encode renders the value bound to c as a CBOR document.
func Encode(c lit.Codec) ([]byte, error) {
	var e encoder
	if err := c.Encode(&e); err != nil {
		return nil, err
	}
	return e.out, nil
}

// decoder reads one CBOR document as a single primitive.
type decoder struct {
	data []byte
}

func (d decoder) value() (interface{}, error) {
	var v interface{}
	if err := cbor.Unmarshal(d.data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (d decoder) DecodeString() (string, error) {
	v, err := d.value()
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("cbor: cannot decode %s as a string", shape(v))
	}
	return s, nil
}

func (d decoder) DecodeFloat64() (float64, error) {
	v, err := d.value()
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case uint64:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("cbor: cannot decode %s as a number", shape(v))
}

func (d decoder) DecodeInt() (lit.Value, error) {
	v, err := d.value()
	if err != nil {
		return lit.Value{}, err
	}
	switch n := v.(type) {
	case uint64:
		return lit.UnsignedValue(n), nil
	case int64:
		return lit.SignedValue(n), nil
	}
	return lit.Value{}, fmt.Errorf("cbor: cannot decode %s as an integer", shape(v))
}

func (d decoder) DecodeBool() (bool, error) {
	v, err := d.value()
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("cbor: cannot decode %s as a bool", shape(v))
	}
	return b, nil
}

// shape names the decoded document form for decode errors.
func shape(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a bool"
	case string:
		return "a string"
	case uint64, int64:
		return "an integer"
	case float64:
		return "a float"
	case []byte:
		return "a byte string"
	case []interface{}:
		return "an array"
	case map[interface{}]interface{}:
		return "a map"
	}
	return fmt.Sprintf("%T", v)
}

// encoder renders exactly one primitive as its CBOR document.
type encoder struct {
	out []byte
}

func (e *encoder) set(v interface{}) error {
	data, err := cbor.Marshal(v)
	if err != nil {
		return err
	}
	e.out = data
	return nil
}

func (e *encoder) EncodeString(s string) error { return e.set(s) }
func (e *encoder) EncodeFloat64(f float64) error { return e.set(f) }
func (e *encoder) EncodeInt64(i int64) error { return e.set(i) }
func (e *encoder) EncodeBool(b bool) error { return e.set(b) }
