package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridatlas/gridatlas/pkg/gridcheck"
	"github.com/gridatlas/gridatlas/pkg/gridio"
)

// newValidateCmd creates the validate command. It checks a grid file
// against a problem file independently of how the grid was produced.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [problem-file] [grid-file]",
		Short: "Check a grid against its country-border problem",
		Long: `Validate recomputes the touching relation induced by the grid and
compares it against the borders the problem requires, in both directions.
It accepts any grid file, not just ones produced by embed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0], args[1])
		},
	}
}

func runValidate(ctx context.Context, problemPath, gridPath string) error {
	logger := loggerFromContext(ctx)

	problem, err := readProblemArg(problemPath)
	if err != nil {
		return err
	}
	grid, err := gridio.ReadGridFile(gridPath)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	report := gridcheck.Validate(problem.N, problem.M, problem.A, problem.B, grid)
	prog.done(fmt.Sprintf("Checked %dx%d grid", grid.Rows(), grid.Cols()))

	if !report.Pass {
		printError("Grid does not match the required borders")
		for _, d := range report.Diagnostics {
			printDetail("%s", d)
		}
		return fmt.Errorf("validation failed with %d diagnostics", len(report.Diagnostics))
	}

	printSuccess("Grid matches all %d required borders", problem.M)
	printKeyValue("Countries", fmt.Sprintf("%d", problem.N))
	printKeyValue("Grid", fmt.Sprintf("%dx%d (K=%d)", grid.Rows(), grid.Cols(), grid.K()))
	return nil
}
