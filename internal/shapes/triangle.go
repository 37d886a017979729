package shapes

import (
	"math"
	"sort"

	"github.com/conneroisu/planimeter/internal/errors"
)

// Triangle is a shape defined by three side-length measurements that
// satisfy the strict triangle inequality.
type Triangle struct {
	sides [3]float64
}

// NewTriangle constructs a triangle from its three side lengths.
func NewTriangle(a, b, c float64) (*Triangle, error) {
	t := &Triangle{}
	if err := t.SetMeasurements([]float64{a, b, c}); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind returns KindTriangle.
func (t *Triangle) Kind() Kind {
	return KindTriangle
}

// Measurements returns the three sides in their original order.
func (t *Triangle) Measurements() []float64 {
	return []float64{t.sides[0], t.sides[1], t.sides[2]}
}

// Sides returns the three side lengths in their original order.
func (t *Triangle) Sides() (a, b, c float64) {
	return t.sides[0], t.sides[1], t.sides[2]
}

// SetMeasurements re-validates and assigns the sides. On failure the
// previous sides are left unchanged.
func (t *Triangle) SetMeasurements(measurements []float64) error {
	if len(measurements) != 3 {
		return errors.ErrMeasurementCount(string(KindTriangle), 3, len(measurements))
	}

	for i, v := range measurements {
		if !validMeasurement(v) {
			return errors.ErrMeasurementRange(string(KindTriangle), i, v)
		}
	}

	a, b, c := measurements[0], measurements[1], measurements[2]
	// Each side must be strictly less than the sum of the other two.
	if a >= b+c || b >= a+c || c >= a+b {
		return errors.ErrTriangleInequality(a, b, c)
	}

	t.sides = [3]float64{a, b, c}
	return nil
}

// Area returns the triangle's area via Heron's formula. The intermediate
// products may overflow for huge sides, in which case +Inf is returned
// rather than an error.
func (t *Triangle) Area() float64 {
	a, b, c := t.sides[0], t.sides[1], t.sides[2]
	p := (a + b + c) / 2

	return math.Sqrt(p * (p - a) * (p - b) * (p - c))
}

// IsRightTriangle classifies the triangle by the Pythagorean check: the
// square of the longest side compared with exact equality against the sum
// of the other two squares. Squaring huge sides may overflow to +Inf; the
// classification is then TernaryUnknown rather than a guess.
func (t *Triangle) IsRightTriangle() Ternary {
	sides := t.Measurements()
	sort.Sort(sort.Reverse(sort.Float64Slice(sides)))

	hyp := math.Pow(sides[0], 2)
	leg1 := math.Pow(sides[1], 2)
	leg2 := math.Pow(sides[2], 2)

	if math.IsInf(hyp, 1) || math.IsInf(leg1, 1) || math.IsInf(leg2, 1) {
		return TernaryUnknown
	}

	if hyp == leg1+leg2 {
		return TernaryTrue
	}
	return TernaryFalse
}
