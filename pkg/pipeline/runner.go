package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gridatlas/gridatlas/pkg/gridcheck"
	"github.com/gridatlas/gridatlas/pkg/gridmap"
	"github.com/gridatlas/gridatlas/pkg/observability"
	"github.com/gridatlas/gridatlas/pkg/render/gridsvg"
	"github.com/gridatlas/gridatlas/pkg/render/nodelink"
)

// Runner executes embedding pipelines. It is stateless apart from its
// logger - results are never stored - so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger selects log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete embed → validate → render pipeline.
//
// Embedding errors are input errors (malformed edge arrays) and abort the
// run. A failed validation verdict does not: the grid, the report, and any
// artifacts are all returned, because the embedder is best-effort by
// contract and the caller decides what a failed report means.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	base := r.Logger
	if opts.Logger != nil {
		base = opts.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := base.With("run", result.RunID)

	p := opts.Problem
	observability.Embed().OnEmbedStart(ctx, p.N, p.M)

	// Stage 1: Embed
	embedStart := time.Now()
	g, err := p.Graph()
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	result.Case = gridmap.Classify(g)
	result.Grid = gridmap.EmbedGraphWithOptions(g, gridmap.PlacerOptions{PositionCap: opts.PositionCap})
	result.Stats.N = g.N()
	result.Stats.M = g.EdgeCount()
	result.Stats.K = result.Grid.K()
	result.Stats.EmbedTime = time.Since(embedStart)

	observability.Embed().OnEmbedComplete(ctx, p.N, p.M, result.Case.String(), result.Stats.K, result.Stats.EmbedTime)
	logger.Info("embedded graph",
		"case", result.Case,
		"countries", result.Stats.N,
		"borders", result.Stats.M,
		"k", result.Stats.K,
		"duration", result.Stats.EmbedTime)

	// Stage 2: Validate
	if opts.Validate {
		validateStart := time.Now()
		report := gridcheck.ValidateGraph(g, result.Grid)
		result.Report = &report
		result.Stats.ValidateTime = time.Since(validateStart)

		observability.Embed().OnValidateComplete(ctx, report.Pass, len(report.Diagnostics), result.Stats.ValidateTime)
		logger.Info("validated grid",
			"pass", report.Pass,
			"diagnostics", len(report.Diagnostics),
			"duration", result.Stats.ValidateTime)
	}

	// Stage 3: Render
	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		observability.Render().OnRenderStart(ctx, opts.Formats)
		err := r.renderArtifacts(ctx, g, result, opts)
		result.Stats.RenderTime = time.Since(renderStart)
		observability.Render().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}

		logger.Info("rendered artifacts",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// renderArtifacts fills result.Artifacts for every requested format.
func (r *Runner) renderArtifacts(ctx context.Context, g *gridmap.Graph, result *Result, opts Options) error {
	for _, format := range opts.Formats {
		switch format {
		case FormatDOT:
			result.Artifacts[format] = []byte(nodelink.ToDOT(g))
		case FormatSVG:
			svg, err := nodelink.RenderSVG(ctx, g)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			result.Artifacts[format] = svg
		case FormatPNG:
			png, err := nodelink.RenderPNG(ctx, g)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			result.Artifacts[format] = png
		case FormatGridSVG:
			result.Artifacts[format] = gridsvg.Render(result.Grid, g.N(), gridsvg.Options{Numbers: opts.GridNumbers})
		}
	}
	return nil
}
