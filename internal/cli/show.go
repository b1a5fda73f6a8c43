package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridatlas/gridatlas/pkg/gridio"
	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	problem     string // optional problem file for border info
	interactive bool   // open the bubbletea inspector
}

// newShowCmd creates the show command. It prints a grid file as colored
// cells in the terminal, or opens an interactive inspector with -i.
func newShowCmd() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show [grid-file]",
		Short: "Display a grid in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.problem, "problem", "p", "", "problem file, enables required-border info")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "inspect cells interactively")

	return cmd
}

func runShow(ctx context.Context, gridPath string, opts *showOpts) error {
	grid, err := gridio.ReadGridFile(gridPath)
	if err != nil {
		return err
	}
	if grid.Rows() == 0 {
		printWarning("Grid is empty")
		return nil
	}

	var graph *gridmap.Graph
	if opts.problem != "" {
		problem, err := readProblemArg(opts.problem)
		if err != nil {
			return err
		}
		graph, err = problem.Graph()
		if err != nil {
			return err
		}
	}

	n := maxLabel(grid)
	if opts.interactive {
		model := newGridModel(grid, graph, n)
		if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
			return fmt.Errorf("inspector: %w", err)
		}
		return nil
	}

	fmt.Println(renderGridCells(grid, n))
	printKeyValue("Grid", fmt.Sprintf("%dx%d (K=%d)", grid.Rows(), grid.Cols(), grid.K()))
	if graph != nil {
		printKeyValue("Countries", fmt.Sprintf("%d", graph.N()))
		printKeyValue("Borders", fmt.Sprintf("%d", graph.EdgeCount()))
	}
	return nil
}

// renderGridCells renders the grid as colored two-column cells so cells
// come out roughly square in a terminal.
func renderGridCells(grid gridmap.Grid, n int) string {
	var b strings.Builder
	for _, row := range grid {
		for _, v := range row {
			b.WriteString(cellStyle(v, n).Render(fmt.Sprintf("%2d", v)))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// maxLabel returns the largest label in the grid, at least 1.
func maxLabel(grid gridmap.Grid) int {
	n := 1
	for _, row := range grid {
		for _, v := range row {
			if v > n {
				n = v
			}
		}
	}
	return n
}
