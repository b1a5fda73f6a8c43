// Package cli implements the gridatlas command-line interface.
//
// This package provides commands for embedding country-border graphs into
// grids, validating produced grids, rendering diagrams, inspecting grids in
// the terminal, and serving the HTTP API. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - embed: Embed a problem file into a grid
//   - validate: Check a grid against a problem file
//   - render: Generate DOT, SVG, or PNG artifacts
//   - show: Display a grid in the terminal, optionally interactively
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

// appName is the application name used for config lookup and display.
const appName = "gridatlas"
