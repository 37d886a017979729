package shapes

import (
	"math"

	"github.com/conneroisu/planimeter/internal/errors"
)

// Kind identifies a concrete shape implementation.
type Kind string

const (
	KindCircle   Kind = "circle"
	KindTriangle Kind = "triangle"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind maps a shape name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCircle:
		return KindCircle, nil
	case KindTriangle:
		return KindTriangle, nil
	default:
		return "", errors.ErrUnknownShape(s)
	}
}

// Shape is a validated geometric shape with a derived area.
//
// Measurements returns a copy of the measurements in the order they were
// supplied at construction. Area never fails: validation happens when
// measurements are assigned, and arithmetic overflow propagates as +Inf.
type Shape interface {
	Kind() Kind
	Measurements() []float64
	Area() float64
}

// New constructs a shape of the given kind from raw measurements.
func New(kind Kind, measurements []float64) (Shape, error) {
	switch kind {
	case KindCircle:
		if len(measurements) != 1 {
			return nil, errors.ErrMeasurementCount(string(KindCircle), 1, len(measurements))
		}
		return NewCircle(measurements[0])
	case KindTriangle:
		if len(measurements) != 3 {
			return nil, errors.ErrMeasurementCount(string(KindTriangle), 3, len(measurements))
		}
		return NewTriangle(measurements[0], measurements[1], measurements[2])
	default:
		return nil, errors.ErrUnknownShape(string(kind))
	}
}

// validMeasurement reports whether v is a usable length: positive, finite,
// and at most MaxFloat64.
func validMeasurement(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
