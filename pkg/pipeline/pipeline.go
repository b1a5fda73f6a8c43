// Package pipeline provides the embed → validate → render pipeline shared
// by the CLI and HTTP entry points.
//
// Centralizing the pipeline keeps behavior identical across entry points:
// the same defaults, the same stage timing, and the same observability
// events regardless of who invokes an embedding.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Embed: classify the required-border graph and construct a grid
//  2. Validate: recompute the induced relation and compare (optional)
//  3. Render: produce DOT/SVG/PNG artifacts (optional)
//
// Only the embed stage always runs. Validation is optional because the
// embedder is explicitly best-effort - callers wanting raw output can skip
// the check - and rendering runs only for requested formats.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Problem:  problem,
//	    Validate: true,
//	    Formats:  []string{pipeline.FormatGridSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[pipeline.FormatGridSVG]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gridatlas/gridatlas/pkg/gridcheck"
	"github.com/gridatlas/gridatlas/pkg/gridio"
	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// Format constants for render artifacts.
const (
	// FormatDOT is the required-border graph as Graphviz DOT text.
	FormatDOT = "dot"
	// FormatSVG is the required-border graph rendered to SVG.
	FormatSVG = "svg"
	// FormatPNG is the required-border graph rendered to PNG.
	FormatPNG = "png"
	// FormatGridSVG is the produced grid rendered as an SVG cell raster.
	FormatGridSVG = "grid-svg"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatDOT:     true,
	FormatSVG:     true,
	FormatPNG:     true,
	FormatGridSVG: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, grid-svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Problem is the embedding input.
	Problem gridio.Problem `json:"problem"`

	// Validate runs the independent checker on the produced grid.
	Validate bool `json:"validate,omitempty"`

	// Formats selects the artifacts to render. Empty renders nothing.
	Formats []string `json:"formats,omitempty"`

	// GridNumbers draws country numbers in the grid-svg artifact.
	GridNumbers bool `json:"grid_numbers,omitempty"`

	// PositionCap overrides the placer's tracked-cells-per-country bound
	// for general-case graphs. Zero selects gridmap.DefaultPositionCap.
	PositionCap int `json:"position_cap,omitempty"`

	// Logger receives per-stage progress, overriding the Runner's own
	// logger when set (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option consistency and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and API responses.
	RunID string

	// Case is the construction family the classifier selected.
	Case gridmap.Case

	// Grid is the produced embedding.
	Grid gridmap.Grid

	// Report is the checker verdict, or nil when validation was skipped.
	Report *gridcheck.Report

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	N            int
	M            int
	K            int
	EmbedTime    time.Duration
	ValidateTime time.Duration
	RenderTime   time.Duration
}
