package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/planimeter/internal/config"
	"github.com/conneroisu/planimeter/internal/shapes"
)

var checkCmd = &cobra.Command{
	Use:     "check <side> <side> <side>",
	Aliases: []string{"c"},
	Short:   "Classify a triangle as right, not right, or unknown",
	Long: `Check whether three side lengths form a right triangle.

The classification is three-valued: squaring very large sides overflows
to infinity, in which case the answer is "unknown" rather than a guess.
An unknown result is not an error; the command still exits successfully.

Examples:
  planimeter check 3 4 5     # true
  planimeter check 2 3 4     # false
  planimeter check 1e200 1e200 1e200   # unknown (squares overflow)`,
	Args: cobra.ExactArgs(3),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	measurements, err := parseMeasurements(args)
	if err != nil {
		return err
	}

	t, err := shapes.NewTriangle(measurements[0], measurements[1], measurements[2])
	if err != nil {
		return err
	}

	if cfg.Output.Format == config.FormatText {
		fmt.Fprintf(cmd.OutOrStdout(), "right triangle: %s\n", t.IsRightTriangle())
		return nil
	}

	report := newShapeReport("", t, cfg.Output.Precision)
	return renderReports(cmd.OutOrStdout(), cfg.Output.Format, []shapeReport{report})
}
