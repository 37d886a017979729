package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/planimeter/internal/config"
	"github.com/conneroisu/planimeter/internal/manifest"
)

var computeCmd = &cobra.Command{
	Use:     "compute <manifest>",
	Aliases: []string{"b"},
	Short:   "Compute areas for every shape in a YAML manifest",
	Long: `Compute areas for all shapes defined in a YAML manifest.

The manifest lists named shape entries:

  shapes:
    - name: wheel
      kind: circle
      measurements: [2.5]
    - name: gable
      kind: triangle
      measurements: [3, 4, 5]

Every entry is validated; the first invalid entry aborts the run with
its name in the error.

Examples:
  planimeter compute shapes.yml
  planimeter compute shapes.yml -f json
  planimeter compute shapes.yml --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return computeManifest(cmd.OutOrStdout(), cfg, args[0])
}

// computeManifest loads, validates, and renders one manifest. Shared by
// the compute and watch commands.
func computeManifest(w io.Writer, cfg *config.Config, path string) error {
	m, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}

	built, err := m.Build()
	if err != nil {
		return err
	}

	reports := make([]shapeReport, 0, len(built))
	for _, ns := range built {
		reports = append(reports, newShapeReport(ns.Name, ns.Shape, cfg.Output.Precision))
	}

	return renderReports(w, cfg.Output.Format, reports)
}
