package lit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeJSON decodes a single JSON document and matches it against c.
// A document of the right shape but the wrong value yields a
// MismatchError; anything else is a decode error.
func DecodeJSON(data []byte, c Codec) error {
	return c.Decode(jsonDecoder{data: data})
}

// EncodeJSON renders the value bound to c as a JSON document.
func EncodeJSON(c Codec) ([]byte, error) {
	var e jsonEncoder
	if err := c.Encode(&e); err != nil {
		return nil, err
	}
	return e.out, nil
}

// jsonDecoder reads one JSON document as a single primitive.
type jsonDecoder struct {
	data []byte
}

func (d jsonDecoder) DecodeString() (string, error) {
	var s string
	if err := d.unmarshal(&s, "a string"); err != nil {
		return "", err
	}
	return s, nil
}

func (d jsonDecoder) DecodeFloat64() (float64, error) {
	var f float64
	if err := d.unmarshal(&f, "a number"); err != nil {
		return 0, err
	}
	return f, nil
}

func (d jsonDecoder) DecodeInt() (Value, error) {
	raw := bytes.TrimSpace(d.data)
	// json.Number would happily parse quoted digits too, so sniff the
	// document form before handing it over.
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return Value{}, fmt.Errorf("json: cannot decode %s as an integer", jsonShape(raw))
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return Value{}, err
	}
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return Value{}, fmt.Errorf("json: cannot decode number %s as an integer", s)
	}
	if s[0] == '-' {
		i, err := n.Int64()
		if err != nil {
			return Value{}, err
		}
		return SignedValue(i), nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Value{}, err
	}
	return UnsignedValue(u), nil
}

func (d jsonDecoder) DecodeBool() (bool, error) {
	var b bool
	if err := d.unmarshal(&b, "a bool"); err != nil {
		return false, err
	}
	return b, nil
}

// unmarshal decodes into a typed destination, refusing null up front.
// encoding/json treats null as a no-op for non-pointer targets, which
// would otherwise read back as the zero value with no error.
func (d jsonDecoder) unmarshal(into any, want string) error {
	raw := bytes.TrimSpace(d.data)
	if bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("json: cannot decode null as %s", want)
	}
	return json.Unmarshal(raw, into)
}

// jsonShape names the document form for decode errors.
func jsonShape(raw []byte) string {
	if len(raw) == 0 {
		return "empty input"
	}
	switch raw[0] {
	case '"':
		return "a string"
	case '{':
		return "an object"
	case '[':
		return "an array"
	case 't', 'f':
		return "a bool"
	case 'n':
		return "null"
	}
	return "malformed input"
}

// jsonEncoder renders exactly one primitive as its JSON document.
type jsonEncoder struct {
	out []byte
}

func (e *jsonEncoder) set(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e.out = data
	return nil
}

func (e *jsonEncoder) EncodeString(s string) error { return e.set(s) }
func (e *jsonEncoder) EncodeFloat64(f float64) error { return e.set(f) }
func (e *jsonEncoder) EncodeInt64(i int64) error { return e.set(i) }
func (e *jsonEncoder) EncodeBool(b bool) error { return e.set(b) }
