package shapes

// Ternary is a three-valued truth result for classifications that can be
// undecidable, such as the right-triangle check under overflow.
type Ternary int

const (
	TernaryFalse Ternary = iota
	TernaryTrue
	TernaryUnknown
)

// String returns the string representation of the ternary value.
func (t Ternary) String() string {
	switch t {
	case TernaryFalse:
		return "false"
	case TernaryTrue:
		return "true"
	case TernaryUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Known reports whether the value is a definite true or false.
func (t Ternary) Known() bool {
	return t == TernaryTrue || t == TernaryFalse
}

// Bool returns the boolean value and whether it is known.
func (t Ternary) Bool() (value, known bool) {
	switch t {
	case TernaryTrue:
		return true, true
	case TernaryFalse:
		return false, true
	default:
		return false, false
	}
}
