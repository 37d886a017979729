package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "planimeter",
	Short: "Validated geometric shapes and area calculations",
	Long: `Planimeter validates shape measurements and computes areas for circles
and triangles, as a one-off calculation or in batch from a YAML manifest.

Shapes are validated at construction: a circle needs a positive finite
radius, a triangle needs three positive finite sides satisfying the
strict triangle inequality. Invalid measurements fail with a structured
validation error.

Quick Start:
  planimeter area circle 2.5      Compute a circle's area
  planimeter area triangle 3 4 5  Compute a triangle's area
  planimeter check 3 4 5          Right-triangle classification
  planimeter compute shapes.yml   Batch areas from a manifest
  planimeter watch shapes.yml     Recompute on manifest changes`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .planimeter.yml, can also use PLANIMETER_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().IntP("precision", "p", 0, "significant digits in formatted areas (-1 for shortest exact)")

	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output.precision", rootCmd.PersistentFlags().Lookup("precision"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. PLANIMETER_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .planimeter.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PLANIMETER_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".planimeter")
	}

	// Enable automatic environment variable binding with PLANIMETER_ prefix
	// Examples: PLANIMETER_OUTPUT_FORMAT, PLANIMETER_WATCH_DEBOUNCE_MS
	viper.SetEnvPrefix("PLANIMETER")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; viper falls back to defaults
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
