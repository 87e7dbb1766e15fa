// Package lit implements literal discriminant codecs: encode/decode
// units that bind a single fixed value (a string, float, integer,
// boolean, or character) so an untagged union can tell variants like
// "auto", 123, 3.1, true, or 'z' apart from a catch-all arm without a
// hand-written decode routine per enum.
//
// Components:
//   - Str, Float, Int, Bool, Char: codecs whose value is the bound
//     literal, e.g. lit.Str("auto") or a const of type lit.Int.
//   - Decoder, Encoder: the narrow contract a wire format implements.
//     The JSON bridge in this package is the default; formats/cborlit
//     and formats/msgpacklit cover CBOR and msgpack.
//   - Unit[P]: a zero-data marker bound to a literal through a provider
//     type, for use as a union arm; the litgen tool generates providers.
//   - MismatchError: the single error this package originates, raised
//     for a well shaped wire value that is not the bound literal.
//
// Decoding carries no payload on success: choosing the codec already
// names the matched variant. A mismatch is how an ordered-arm union
// learns "not this arm, try the next".
package lit
