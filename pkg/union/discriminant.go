package union

// Discriminant allows arm types to advertise the fixed value that
// identifies them on the wire. When an arm implements this interface,
// the no-match error lists the advertised values so callers can see
// what the payload was checked against.
type Discriminant interface {
	// Describe returns a short description of the identifying value.
	Describe() string
}
