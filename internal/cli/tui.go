package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// =============================================================================
// gridModel - Interactive grid inspection
// =============================================================================

// gridModel is the bubbletea model for the grid inspector. Arrow keys (or
// hjkl) move the cursor; the status line shows the hovered country and, when
// a problem was supplied, its required neighbors.
type gridModel struct {
	grid  gridmap.Grid
	graph *gridmap.Graph // nil when no problem file was given
	n     int
	row   int
	col   int
}

// newGridModel creates a grid inspector model with the cursor at the origin.
func newGridModel(grid gridmap.Grid, graph *gridmap.Graph, n int) gridModel {
	return gridModel{grid: grid, graph: graph, n: n}
}

func (m gridModel) Init() tea.Cmd {
	return nil
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < m.grid.Rows()-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < m.grid.Cols()-1 {
			m.col++
		}
	case "g":
		m.row, m.col = 0, 0
	case "G":
		m.row, m.col = m.grid.Rows()-1, m.grid.Cols()-1
	}
	return m, nil
}

func (m gridModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Grid %dx%d", m.grid.Rows(), m.grid.Cols())))
	b.WriteString("\n\n")

	for r, row := range m.grid {
		for c, v := range row {
			style := cellStyle(v, m.n)
			if r == m.row && c == m.col {
				style = style.Reverse(true).Bold(true)
			}
			b.WriteString(style.Render(fmt.Sprintf("%2d", v)))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("arrows/hjkl move · g/G jump · q quit"))
	return b.String()
}

// statusLine describes the hovered cell.
func (m gridModel) statusLine() string {
	v := m.grid[m.row][m.col]
	line := fmt.Sprintf("(%d, %d) country %s", m.row, m.col, StyleHighlight.Render(fmt.Sprintf("%d", v)))
	if m.graph == nil || v < 1 || v > m.graph.N() {
		return line
	}

	neighbors := m.graph.Neighbors(v)
	if len(neighbors) == 0 {
		return line + StyleDim.Render("  no required borders")
	}
	parts := make([]string, len(neighbors))
	for i, u := range neighbors {
		parts[i] = fmt.Sprintf("%d", u)
	}
	return line + StyleDim.Render("  borders: "+strings.Join(parts, ", "))
}
