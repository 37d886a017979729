// Package cmd provides the command-line interface for planimeter.
//
// This package implements all CLI commands using the Cobra framework,
// exposing the validated shapes library for one-off and batch area
// calculations.
//
// # Available Commands
//
//   - area: Compute the area of a circle or triangle from measurements
//   - check: Classify a triangle as right/not-right/unknown
//   - compute: Compute areas for every shape in a YAML manifest
//   - watch: Recompute manifest areas whenever the file changes
//   - version: Show version information
//
// # Command Examples
//
//	// Circle area from a radius
//	planimeter area circle 2.5
//
//	// Triangle area from three sides, JSON output
//	planimeter area triangle 3 4 5 --format json
//
//	// Right-triangle classification (three-valued)
//	planimeter check 3 4 5
//
//	// Batch areas from a manifest
//	planimeter compute shapes.yml
//
//	// Watch a manifest and recompute on save
//	planimeter watch shapes.yml
//
// # Configuration Integration
//
// Commands respect configuration from multiple sources in order of
// precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (PLANIMETER_*)
//  3. Configuration file (.planimeter.yml)
//  4. Default values (lowest priority)
package cmd
