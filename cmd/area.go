package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/planimeter/internal/config"
	"github.com/conneroisu/planimeter/internal/shapes"
)

var areaCmd = &cobra.Command{
	Use:     "area <kind> <measurement>...",
	Aliases: []string{"a"},
	Short:   "Compute the area of a shape from its measurements",
	Long: `Compute the area of a circle or triangle from raw measurements.

A circle takes one measurement (the radius), a triangle takes three (its
side lengths). Measurements are validated before the area is computed:
every value must be positive and finite, and triangle sides must satisfy
the strict triangle inequality.

Examples:
  planimeter area circle 2.5          # Circle area from a radius
  planimeter area triangle 3 4 5      # Triangle area via Heron's formula
  planimeter area triangle 3 4 5 -f json
  planimeter area circle 1 --precision 12`,
	Args: cobra.MinimumNArgs(2),
	RunE: runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)
}

func runArea(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	kind, err := shapes.ParseKind(args[0])
	if err != nil {
		return err
	}

	measurements, err := parseMeasurements(args[1:])
	if err != nil {
		return err
	}

	s, err := shapes.New(kind, measurements)
	if err != nil {
		return err
	}

	report := newShapeReport("", s, cfg.Output.Precision)
	return renderReports(cmd.OutOrStdout(), cfg.Output.Format, []shapeReport{report})
}
