package lit

// Provider supplies the literal bound to a marker type. A provider is a
// zero-size type whose Lit method (value receiver) returns the codec for
// one constant. The litgen tool generates providers, and writing one by
// hand is a two-line affair:
//
//	type autoLit struct{}
//
//	func (autoLit) Lit() lit.Codec { return lit.Str("auto") }
//
//	type Auto = lit.Unit[autoLit]
type Provider interface {
	Lit() Codec
}

// Unit is the zero-data marker for one literal. Decoding succeeds only
// when the wire value equals P's literal and produces no payload: having
// chosen this codec, the caller already knows which variant matched.
//
// Unit implements json.Marshaler and json.Unmarshaler, so markers can
// sit directly in encoding/json structs and union arms; other formats
// reach it through the Codec methods.
type Unit[P Provider] struct{}

func (Unit[P]) bound() Codec {
	var p P
	return p.Lit()
}

// Describe implements Codec.
func (u Unit[P]) Describe() string { return u.bound().Describe() }

// Decode implements Codec.
func (u Unit[P]) Decode(d Decoder) error { return u.bound().Decode(d) }

// Encode implements Codec.
func (u Unit[P]) Encode(e Encoder) error { return u.bound().Encode(e) }

// MarshalJSON writes the bound literal as a bare JSON value.
func (u Unit[P]) MarshalJSON() ([]byte, error) { return EncodeJSON(u) }

// UnmarshalJSON accepts exactly the bound literal.
func (u *Unit[P]) UnmarshalJSON(data []byte) error { return DecodeJSON(data, u) }
