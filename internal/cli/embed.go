package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridatlas/gridatlas/pkg/gridio"
	"github.com/gridatlas/gridatlas/pkg/pipeline"
)

// embedOpts holds the command-line flags for the embed command.
type embedOpts struct {
	output      string // output path ("" = stdout)
	text        bool   // plain-text rows instead of JSON
	check       bool   // run the validator on the result
	positionCap int    // placer tuning (0 = config/default)
}

// newEmbedCmd creates the embed command. It reads a problem JSON file
// (or stdin with "-"), embeds it, and writes the grid as JSON or plain
// text.
func newEmbedCmd() *cobra.Command {
	var opts embedOpts

	cmd := &cobra.Command{
		Use:   "embed [problem-file]",
		Short: "Embed a country-border problem into a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.text, "text", false, "write space-separated rows instead of JSON")
	cmd.Flags().BoolVar(&opts.check, "check", false, "validate the grid and fail on a bad embedding")
	cmd.Flags().IntVar(&opts.positionCap, "position-cap", 0, "tracked cells per country in the general placer (0 = config default)")

	return cmd
}

func runEmbed(ctx context.Context, path string, opts *embedOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	problem, err := readProblemArg(path)
	if err != nil {
		return err
	}

	positionCap := opts.positionCap
	if positionCap == 0 {
		positionCap = cfg.Embed.PositionCap
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Problem:     problem,
		Validate:    opts.check,
		PositionCap: positionCap,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Embedded %d countries", result.Stats.N))

	if err := writeGridArg(result, opts); err != nil {
		return err
	}

	printSuccess("Embedded %d countries, %d borders (%s case, %dx%d grid)",
		result.Stats.N, result.Stats.M, result.Case, result.Grid.Rows(), result.Grid.Cols())
	if opts.output != "" {
		printFile(opts.output)
	}

	if result.Report != nil && !result.Report.Pass {
		for _, d := range result.Report.Diagnostics {
			printDetail("%s", d)
		}
		return fmt.Errorf("embedding failed validation with %d diagnostics", len(result.Report.Diagnostics))
	}
	if result.Report != nil {
		printSuccess("Grid validated")
	}
	return nil
}

// readProblemArg reads a problem document from a file path, or from stdin
// when the path is "-".
func readProblemArg(path string) (gridio.Problem, error) {
	if path == "-" {
		return gridio.ReadProblem(os.Stdin)
	}
	return gridio.ReadProblemFile(path)
}

// writeGridArg writes the produced grid to the chosen destination in the
// chosen encoding.
func writeGridArg(result *pipeline.Result, opts *embedOpts) error {
	if opts.output == "" {
		if opts.text {
			fmt.Print(result.Grid.String())
			return nil
		}
		return gridio.WriteGrid(result.Grid, os.Stdout)
	}

	if opts.text {
		return os.WriteFile(opts.output, []byte(result.Grid.String()), 0o644)
	}
	return gridio.WriteGridFile(result.Grid, opts.output)
}
