package a

type auto struct{}
type num struct{}

// Marker is a stand-in for a zero-size literal marker arm.
type Marker[P any] struct{}

// Arms struct following the conventions: exported pointer arms only.
type ModeArms struct {
	Auto   *Marker[auto]
	Num    *Marker[num]
	Number *float64
	note   string
}

// Arms struct with non-pointer arms.
type BadArms struct {
	Auto  Marker[auto] // want "union arm Auto must be a pointer type"
	Count int          // want "union arm Count must be a pointer type"
}

// Arms struct repeating an arm type.
type DupArms struct {
	First  *Marker[auto]
	Second *Marker[auto] // want "duplicate arm type"
	Other  *num
}

// Structs without the Arms suffix are not checked.
type Plain struct {
	Value int
}
