package lit

import (
	"errors"
	"fmt"
)

// MismatchError reports that the wire held a primitive of the requested
// shape whose value differs from the bound literal. It is the only error
// this package originates; wrong-shape or malformed input surfaces as
// the Decoder's own error instead.
//
// For an ordered-arm union a mismatch means "not this arm" rather than a
// corrupt stream, so dispatchers treat it as the cue to try the next arm.
type MismatchError struct {
	// Got is the offending wire value, tagged with its presented shape.
	Got Value
	// Want describes the expected literal, in the form `the lit <value>`.
	Want string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("invalid value: %s, expected %s", e.Got, e.Want)
}

// AsMismatch unwraps err looking for a *MismatchError.
func AsMismatch(err error) (*MismatchError, bool) {
	var m *MismatchError
	ok := errors.As(err, &m)
	return m, ok
}
