package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/planimeter/internal/config"
	"github.com/conneroisu/planimeter/internal/errors"
	"github.com/conneroisu/planimeter/internal/shapes"
)

// shapeReport is the renderable result of one shape calculation. Area is
// kept as a formatted string so that +Inf results survive JSON encoding.
type shapeReport struct {
	Name          string    `json:"name,omitempty" yaml:"name,omitempty"`
	Kind          string    `json:"kind" yaml:"kind"`
	Measurements  []float64 `json:"measurements" yaml:"measurements"`
	Area          string    `json:"area" yaml:"area"`
	RightTriangle string    `json:"right_triangle,omitempty" yaml:"right_triangle,omitempty"`
}

// newShapeReport builds a report for a shape, including the three-valued
// right-triangle classification for triangles.
func newShapeReport(name string, s shapes.Shape, precision int) shapeReport {
	report := shapeReport{
		Name:         name,
		Kind:         s.Kind().String(),
		Measurements: s.Measurements(),
		Area:         formatArea(s.Area(), precision),
	}

	if t, ok := s.(*shapes.Triangle); ok {
		report.RightTriangle = t.IsRightTriangle().String()
	}

	return report
}

// formatArea renders an area with the configured number of significant
// digits. Infinite areas render as +Inf.
func formatArea(area float64, precision int) string {
	return strconv.FormatFloat(area, 'g', precision, 64)
}

// renderReports writes the reports in the requested format.
func renderReports(w io.Writer, format string, reports []shapeReport) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, reports)
	case config.FormatYAML:
		return renderYAML(w, reports)
	case config.FormatText:
		return renderTable(w, reports)
	default:
		return errors.NewConfigError(
			errors.ErrCodeConfigInvalid,
			"unsupported output format: "+format,
		)
	}
}

func renderJSON(w io.Writer, reports []shapeReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if len(reports) == 1 {
		return encoder.Encode(reports[0])
	}
	return encoder.Encode(reports)
}

func renderYAML(w io.Writer, reports []shapeReport) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if len(reports) == 1 {
		return encoder.Encode(reports[0])
	}
	return encoder.Encode(reports)
}

func renderTable(w io.Writer, reports []shapeReport) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tKIND\tMEASUREMENTS\tAREA\tRIGHT TRIANGLE")
	for _, r := range reports {
		name := r.Name
		if name == "" {
			name = "-"
		}
		right := r.RightTriangle
		if right == "" {
			right = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			name, r.Kind, formatMeasurements(r.Measurements), r.Area, right)
	}

	return tw.Flush()
}

func formatMeasurements(measurements []float64) string {
	parts := make([]string, len(measurements))
	for i, m := range measurements {
		parts[i] = strconv.FormatFloat(m, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// parseMeasurements converts command arguments into measurement values.
// Range validation is left to the shape constructors; this only rejects
// arguments that are not numbers at all.
func parseMeasurements(args []string) ([]float64, error) {
	measurements := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.NewValidationError(
				errors.ErrCodeMeasurementRange,
				"measurement is not a number: "+arg,
			).WithContext("argument", i)
		}
		measurements[i] = v
	}
	return measurements, nil
}
