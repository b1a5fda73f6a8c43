package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridatlas/gridatlas/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output base path (format extension is appended)
	formats []string // artifact formats: "dot", "svg", "png", "grid-svg"
	numbers bool     // draw country numbers in the grid-svg artifact
}

// newRenderCmd creates the render command. It embeds a problem and writes
// one artifact file per requested format.
//
// The node-link formats (dot, svg, png) draw the required-border graph
// itself; grid-svg draws the produced grid as a colored cell raster. File
// names are derived from the base path, e.g. -o map yields map.svg and
// map.grid.svg.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [problem-file]",
		Short: "Render a problem and its embedding to DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "map", "output base path")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "formats to render: dot, svg, png, grid-svg (default: config)")
	cmd.Flags().BoolVar(&opts.numbers, "numbers", false, "draw country numbers in grid-svg cells")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	problem, err := readProblemArg(path)
	if err != nil {
		return err
	}

	formats := opts.formats
	if len(formats) == 0 {
		formats = cfg.Render.Formats
	}
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", strings.Join(formats, ", ")))
	spinner.Start()

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Problem:     problem,
		Formats:     formats,
		GridNumbers: opts.numbers || cfg.Render.Numbers,
		PositionCap: cfg.Embed.PositionCap,
		Logger:      logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	printSuccess("Rendered %d artifacts (%s case, %dx%d grid)",
		len(result.Artifacts), result.Case, result.Grid.Rows(), result.Grid.Cols())
	for _, format := range formats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		target := artifactPath(opts.output, format)
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		printFile(target)
	}
	return nil
}

// artifactPath maps a base path and a format to a file name. The grid-svg
// format gets a .grid.svg suffix so it never collides with the node-link
// SVG of the same base.
func artifactPath(base, format string) string {
	if format == pipeline.FormatGridSVG {
		return base + ".grid.svg"
	}
	return base + "." + format
}
