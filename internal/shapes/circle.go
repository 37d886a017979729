package shapes

import (
	"math"

	"github.com/conneroisu/planimeter/internal/errors"
)

// Circle is a shape defined by a single radius measurement.
type Circle struct {
	radius float64
}

// NewCircle constructs a circle from its radius. The radius must be a
// positive finite number.
func NewCircle(radius float64) (*Circle, error) {
	c := &Circle{}
	if err := c.SetMeasurements([]float64{radius}); err != nil {
		return nil, err
	}
	return c, nil
}

// Kind returns KindCircle.
func (c *Circle) Kind() Kind {
	return KindCircle
}

// Measurements returns the radius as a single-element slice.
func (c *Circle) Measurements() []float64 {
	return []float64{c.radius}
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// SetMeasurements re-validates and assigns the radius. On failure the
// previous radius is left unchanged.
func (c *Circle) SetMeasurements(measurements []float64) error {
	if len(measurements) != 1 {
		return errors.ErrMeasurementCount(string(KindCircle), 1, len(measurements))
	}
	if !validMeasurement(measurements[0]) {
		return errors.ErrMeasurementRange(string(KindCircle), 0, measurements[0])
	}

	c.radius = measurements[0]
	return nil
}

// Area returns π·r².
func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}
