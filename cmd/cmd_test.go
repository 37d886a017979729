package cmd

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/planimeter/internal/config"
	"github.com/conneroisu/planimeter/internal/errors"
	"github.com/conneroisu/planimeter/internal/shapes"
)

func TestParseMeasurements(t *testing.T) {
	m, err := parseMeasurements([]string{"3", "4.5", "1e2"})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4.5, 100}, m)

	_, err = parseMeasurements([]string{"3", "four"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "6", formatArea(6, -1))
	assert.Equal(t, "+Inf", formatArea(math.Inf(1), 6))
	assert.Equal(t, "3.14159", formatArea(math.Pi, 6))
}

func TestNewShapeReport(t *testing.T) {
	tr, err := shapes.NewTriangle(3, 4, 5)
	require.NoError(t, err)

	report := newShapeReport("gable", tr, -1)
	assert.Equal(t, "gable", report.Name)
	assert.Equal(t, "triangle", report.Kind)
	assert.Equal(t, []float64{3, 4, 5}, report.Measurements)
	assert.Equal(t, "6", report.Area)
	assert.Equal(t, "true", report.RightTriangle)

	c, err := shapes.NewCircle(1)
	require.NoError(t, err)

	report = newShapeReport("", c, 6)
	assert.Equal(t, "circle", report.Kind)
	assert.Empty(t, report.RightTriangle)
}

func TestRenderReportsText(t *testing.T) {
	var buf bytes.Buffer
	reports := []shapeReport{
		{Name: "wheel", Kind: "circle", Measurements: []float64{2.5}, Area: "19.635"},
		{Name: "gable", Kind: "triangle", Measurements: []float64{3, 4, 5}, Area: "6", RightTriangle: "true"},
	}

	require.NoError(t, renderReports(&buf, config.FormatText, reports))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "wheel")
	assert.Contains(t, out, "3, 4, 5")
	assert.Contains(t, out, "true")
}

func TestRenderReportsJSON(t *testing.T) {
	var buf bytes.Buffer
	reports := []shapeReport{
		{Kind: "circle", Measurements: []float64{1}, Area: "3.14159"},
	}

	require.NoError(t, renderReports(&buf, config.FormatJSON, reports))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "circle", decoded["kind"])
	assert.Equal(t, "3.14159", decoded["area"])
}

func TestRenderReportsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := renderReports(&buf, "csv", nil)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestRunAreaCircle(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	var buf bytes.Buffer
	areaCmd.SetOut(&buf)
	defer areaCmd.SetOut(nil)

	require.NoError(t, runArea(areaCmd, []string{"circle", "1"}))

	assert.Contains(t, buf.String(), "circle")
	assert.Contains(t, buf.String(), "3.14159")
}

func TestRunAreaRejectsInvalidShape(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	err := runArea(areaCmd, []string{"triangle", "1", "1", "3"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRunCheck(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	defer checkCmd.SetOut(nil)

	require.NoError(t, runCheck(checkCmd, []string{"3", "4", "5"}))
	assert.Contains(t, buf.String(), "right triangle: true")

	buf.Reset()
	require.NoError(t, runCheck(checkCmd, []string{"2", "3", "4"}))
	assert.Contains(t, buf.String(), "right triangle: false")

	buf.Reset()
	require.NoError(t, runCheck(checkCmd, []string{"1e200", "1e200", "1e200"}))
	assert.Contains(t, buf.String(), "right triangle: unknown")
}

func TestRunCompute(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
shapes:
  - name: wheel
    kind: circle
    measurements: [2.5]
  - name: gable
    kind: triangle
    measurements: [3, 4, 5]
`), 0644))

	var buf bytes.Buffer
	computeCmd.SetOut(&buf)
	defer computeCmd.SetOut(nil)

	require.NoError(t, runCompute(computeCmd, []string{path}))

	out := buf.String()
	assert.Contains(t, out, "wheel")
	assert.Contains(t, out, "gable")
	assert.Contains(t, out, "6")
}

func TestRunComputeMissingManifest(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	err := runCompute(computeCmd, []string{filepath.Join(t.TempDir(), "absent.yml")})
	require.Error(t, err)

	var ge *errors.GeometryError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, errors.ErrCodeManifestNotFound, ge.Code)
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	require.NoError(t, runVersion(versionCmd, nil))
	assert.Contains(t, buf.String(), "planimeter")
}
