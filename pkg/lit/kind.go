package lit

// Kind identifies the wire shape of a decoded primitive value.
type Kind uint8

const (
	KindString Kind = iota
	KindFloat
	KindSigned
	KindUnsigned
	KindBool
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindSigned:
		return "integer"
	case KindUnsigned:
		return "unsigned integer"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}
