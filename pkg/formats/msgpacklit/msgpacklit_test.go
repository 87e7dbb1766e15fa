package msgpacklit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lit-labs/litcodec/pkg/lit"
)

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := msgpack.Marshal(v)
	if err != nil {
		t.Fatalf("msgpack.Marshal(%v) = %v", v, err)
	}
	return data
}

func TestDecodeRawWire(t *testing.T) {
	tests := []struct {
		name  string
		wire  []byte
		codec lit.Codec
	}{
		{name: "positive fixint", wire: []byte{0x7b}, codec: lit.Int(123)},
		{name: "uint8 family", wire: []byte{0xcc, 0x7b}, codec: lit.Int(123)},
		// int8 123: the signed wire form of the same value
		{name: "int8 family", wire: []byte{0xd0, 0x7b}, codec: lit.Int(123)},
		{name: "negative fixint", wire: []byte{0xf9}, codec: lit.Int(-7)},
		{
			name:  "int64 family",
			wire:  []byte{0xd3, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7b},
			codec: lit.Int(123),
		},
		{
			name:  "unsigned wraps to negative",
			wire:  []byte{0xcf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			codec: lit.Int(-1),
		},
		{name: "fixstr", wire: []byte{0xa4, 'a', 'u', 't', 'o'}, codec: lit.Str("auto")},
		{name: "true", wire: []byte{0xc3}, codec: lit.Bool(true)},
		{name: "false", wire: []byte{0xc2}, codec: lit.Bool(false)},
		{name: "fixint converts to float", wire: []byte{0x7b}, codec: lit.Float(123)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Decode(tt.wire, tt.codec); err != nil {
				t.Fatalf("Decode(% x) = %v, want nil", tt.wire, err)
			}
		})
	}
}

func TestDecodeAccept(t *testing.T) {
	tests := []struct {
		name  string
		wire  interface{}
		codec lit.Codec
	}{
		{name: "string", wire: "auto", codec: lit.Str("auto")},
		{name: "float", wire: 3.1, codec: lit.Float(3.1)},
		{name: "char first rune wins", wire: "zz", codec: lit.Char('z')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Decode(mustMarshal(t, tt.wire), tt.codec); err != nil {
				t.Fatalf("Decode() = %v, want nil", err)
			}
		})
	}
}

func TestDecodeMismatchKeepsWirePresentation(t *testing.T) {
	// uint8 124
	err := Decode([]byte{0xcc, 0x7c}, lit.Int(123))
	if err == nil {
		t.Fatal("expected mismatch")
	}
	if _, ok := lit.AsMismatch(err); !ok {
		t.Fatalf("Decode() = %v, want *lit.MismatchError", err)
	}
	if want := "invalid value: unsigned integer 124, expected the lit 123"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	// int8 -123
	err = Decode([]byte{0xd0, 0x85}, lit.Int(123))
	if err == nil {
		t.Fatal("expected mismatch")
	}
	if want := "invalid value: integer -123, expected the lit 123"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestDecodeShapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		wire  []byte
		codec lit.Codec
		want  string
	}{
		{
			name:  "float is not an int",
			wire:  []byte{0xcb, 0x40, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 3.5
			codec: lit.Int(3),
			want:  "msgpack: cannot decode a float as an integer",
		},
		{
			name:  "quoted digits are not an int",
			wire:  []byte{0xa3, '1', '2', '3'},
			codec: lit.Int(123),
			want:  "msgpack: cannot decode a string as an integer",
		},
		{
			name:  "null for string",
			wire:  []byte{0xc0},
			codec: lit.Str("auto"),
			want:  "msgpack: cannot decode null as a string",
		},
		{
			name:  "array for int",
			wire:  []byte{0x91, 0x01},
			codec: lit.Int(1),
			want:  "msgpack: cannot decode an array as an integer",
		},
		{
			name:  "map for bool",
			wire:  []byte{0x80},
			codec: lit.Bool(true),
			want:  "msgpack: cannot decode a map as a bool",
		},
		{
			name:  "int for bool",
			wire:  []byte{0x01},
			codec: lit.Bool(true),
			want:  "msgpack: cannot decode an integer as a bool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode(tt.wire, tt.codec)
			if err == nil {
				t.Fatal("expected shape error")
			}
			if _, ok := lit.AsMismatch(err); ok {
				t.Fatalf("Decode() = %v, want a non-mismatch error", err)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	err := Decode([]byte{0x7b, 0x7b}, lit.Int(123))
	if err == nil {
		t.Fatal("expected error for trailing bytes")
	}
	if !strings.Contains(err.Error(), "extraneous data") {
		t.Errorf("error = %q, want the extraneous data message", err)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		codec lit.Codec
		want  []byte
	}{
		{name: "int lands in the unsigned family", codec: lit.Int(123), want: []byte{0x7b}},
		{name: "negative int", codec: lit.Int(-7), want: []byte{0xf9}},
		{name: "string", codec: lit.Str("auto"), want: []byte{0xa4, 'a', 'u', 't', 'o'}},
		{name: "char", codec: lit.Char('z'), want: []byte{0xa1, 'z'}},
		{name: "true", codec: lit.Bool(true), want: []byte{0xc3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.codec)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(data, tt.want) {
				t.Errorf("Encode() = % x, want % x", data, tt.want)
			}
		})
	}
}

func TestEncodeFloatMatchesMarshal(t *testing.T) {
	data, err := Encode(lit.Float(3.1))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := mustMarshal(t, 3.1); !bytes.Equal(data, want) {
		t.Errorf("Encode() = % x, want % x", data, want)
	}
}

func TestRoundTrip(t *testing.T) {
	codecs := []lit.Codec{
		lit.Str("auto"),
		lit.Float(3.1),
		lit.Int(123),
		lit.Int(-7),
		lit.Bool(true),
		lit.Bool(false),
		lit.Char('z'),
		lit.Char('λ'),
	}

	for _, c := range codecs {
		data, err := Encode(c)
		if err != nil {
			t.Fatalf("Encode(%v) error = %v", c, err)
		}
		if err := Decode(data, c); err != nil {
			t.Errorf("Decode(% x) after encode = %v, want nil", data, err)
		}
	}
}
