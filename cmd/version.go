package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/planimeter/internal/version"
)

var versionJSON bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for planimeter including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  planimeter version           # Show version
  planimeter version --json    # Output as JSON`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output version information as JSON")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetBuildInfo()

	if versionJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "planimeter %s\n", info.Version)
	fmt.Fprintf(cmd.OutOrStdout(), "  commit:    %s\n", info.GitCommit)
	fmt.Fprintf(cmd.OutOrStdout(), "  built:     %s\n", info.BuildTime)
	fmt.Fprintf(cmd.OutOrStdout(), "  go:        %s\n", info.GoVersion)
	fmt.Fprintf(cmd.OutOrStdout(), "  platform:  %s\n", info.Platform)
	return nil
}
