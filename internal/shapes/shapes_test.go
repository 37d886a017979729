package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/planimeter/internal/errors"
)

func TestNewCircle(t *testing.T) {
	c, err := NewCircle(2.5)
	require.NoError(t, err)

	assert.Equal(t, KindCircle, c.Kind())
	assert.Equal(t, 2.5, c.Radius())
	assert.InDelta(t, math.Pi*2.5*2.5, c.Area(), 1e-12)
}

func TestNewCircleRejectsInvalidRadius(t *testing.T) {
	testCases := []struct {
		name   string
		radius float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCircle(tc.radius)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCircleSetMeasurementsKeepsStateOnFailure(t *testing.T) {
	c, err := NewCircle(2)
	require.NoError(t, err)

	require.Error(t, c.SetMeasurements([]float64{-1}))
	assert.Equal(t, 2.0, c.Radius())

	require.Error(t, c.SetMeasurements([]float64{1, 2}))
	assert.Equal(t, 2.0, c.Radius())

	require.NoError(t, c.SetMeasurements([]float64{3}))
	assert.Equal(t, 3.0, c.Radius())
}

func TestNewTriangle(t *testing.T) {
	tr, err := NewTriangle(3, 4, 5)
	require.NoError(t, err)

	assert.Equal(t, KindTriangle, tr.Kind())
	assert.InDelta(t, 6.0, tr.Area(), 1e-12)
}

func TestNewTriangleRejectsInvalidSides(t *testing.T) {
	testCases := []struct {
		name    string
		a, b, c float64
		code    string
	}{
		{"inequality violated", 1, 1, 3, errors.ErrCodeTriangleInequality},
		{"degenerate", 1, 1, 2, errors.ErrCodeTriangleInequality},
		{"zero side", 0, 4, 5, errors.ErrCodeMeasurementRange},
		{"negative side", 3, -4, 5, errors.ErrCodeMeasurementRange},
		{"nan side", 3, 4, math.NaN(), errors.ErrCodeMeasurementRange},
		{"infinite side", math.Inf(1), 4, 5, errors.ErrCodeMeasurementRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := NewTriangle(tc.a, tc.b, tc.c)
			assert.Nil(t, tr)
			require.Error(t, err)

			var ge *errors.GeometryError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, tc.code, ge.Code)
		})
	}
}

func TestTriangleAreaHeron(t *testing.T) {
	testCases := []struct {
		name    string
		a, b, c float64
		area    float64
	}{
		{"right 3-4-5", 3, 4, 5, 6},
		{"equilateral unit", 1, 1, 1, math.Sqrt(3) / 4},
		{"scalene", 2, 3, 4, math.Sqrt(135) / 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := NewTriangle(tc.a, tc.b, tc.c)
			require.NoError(t, err)
			assert.InDelta(t, tc.area, tr.Area(), 1e-12)
		})
	}
}

func TestTriangleAreaOverflowsToInfinity(t *testing.T) {
	tr, err := NewTriangle(1e200, 1e200, 1e200)
	require.NoError(t, err)

	assert.True(t, math.IsInf(tr.Area(), 1))
}

func TestTriangleIsRightTriangle(t *testing.T) {
	testCases := []struct {
		name    string
		a, b, c float64
		want    Ternary
	}{
		{"right 3-4-5", 3, 4, 5, TernaryTrue},
		{"right 5-12-13", 5, 12, 13, TernaryTrue},
		{"right sides unordered", 13, 5, 12, TernaryTrue},
		{"not right 2-3-4", 2, 3, 4, TernaryFalse},
		{"equilateral", 1, 1, 1, TernaryFalse},
		{"overflowing sides", 1e200, 1e200, 1e200, TernaryUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := NewTriangle(tc.a, tc.b, tc.c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tr.IsRightTriangle())
		})
	}
}

func TestMeasurementsRoundTrip(t *testing.T) {
	c, err := NewCircle(7.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{7.25}, c.Measurements())

	tr, err := NewTriangle(5, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 3}, tr.Measurements())
}

func TestMeasurementsReturnsCopy(t *testing.T) {
	tr, err := NewTriangle(3, 4, 5)
	require.NoError(t, err)

	m := tr.Measurements()
	m[0] = 100

	assert.Equal(t, []float64{3, 4, 5}, tr.Measurements())
}

func TestTriangleSetMeasurementsKeepsStateOnFailure(t *testing.T) {
	tr, err := NewTriangle(3, 4, 5)
	require.NoError(t, err)

	require.Error(t, tr.SetMeasurements([]float64{1, 1, 3}))
	assert.Equal(t, []float64{3, 4, 5}, tr.Measurements())

	require.NoError(t, tr.SetMeasurements([]float64{6, 8, 10}))
	assert.Equal(t, []float64{6, 8, 10}, tr.Measurements())
}

func TestNew(t *testing.T) {
	s, err := New(KindCircle, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, KindCircle, s.Kind())

	s, err = New(KindTriangle, []float64{3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, KindTriangle, s.Kind())

	_, err = New(KindCircle, []float64{1, 2})
	require.Error(t, err)

	_, err = New(KindTriangle, []float64{3, 4})
	require.Error(t, err)

	_, err = New(Kind("pentagon"), []float64{1, 2, 3, 4, 5})
	require.Error(t, err)

	var ge *errors.GeometryError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, errors.ErrCodeUnknownShape, ge.Code)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("circle")
	require.NoError(t, err)
	assert.Equal(t, KindCircle, k)

	k, err = ParseKind("triangle")
	require.NoError(t, err)
	assert.Equal(t, KindTriangle, k)

	_, err = ParseKind("square")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestTernary(t *testing.T) {
	assert.Equal(t, "true", TernaryTrue.String())
	assert.Equal(t, "false", TernaryFalse.String())
	assert.Equal(t, "unknown", TernaryUnknown.String())
	assert.Equal(t, "invalid", Ternary(42).String())

	assert.True(t, TernaryTrue.Known())
	assert.True(t, TernaryFalse.Known())
	assert.False(t, TernaryUnknown.Known())

	v, known := TernaryTrue.Bool()
	assert.True(t, v)
	assert.True(t, known)

	v, known = TernaryFalse.Bool()
	assert.False(t, v)
	assert.True(t, known)

	_, known = TernaryUnknown.Bool()
	assert.False(t, known)
}
