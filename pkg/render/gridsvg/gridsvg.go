// Package gridsvg renders a produced country grid as an SVG cell raster.
//
// Each cell becomes a colored square; cells of the same country share a
// color, so the multi-cell regions and mediating background labels of an
// embedding are visible at a glance. Colors are assigned by spacing hues
// evenly around the wheel, which keeps small label counts clearly distinct.
package gridsvg

import (
	"fmt"
	"math"
	"strings"

	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// Options controls the SVG output. The zero value selects the defaults.
type Options struct {
	// CellSize is the square cell edge in pixels. Values below 1 select
	// DefaultCellSize.
	CellSize int

	// Numbers draws the country number inside each cell. Readable up to
	// roughly 60 columns; off by default.
	Numbers bool
}

// DefaultCellSize is the default cell edge in pixels.
const DefaultCellSize = 18

// Render returns a complete SVG document for the grid. n is the total
// country count and fixes the color assignment, so grids of the same
// problem render with stable per-country colors regardless of which labels
// appear.
func Render(grid gridmap.Grid, n int, opts Options) []byte {
	size := opts.CellSize
	if size < 1 {
		size = DefaultCellSize
	}

	var sb strings.Builder
	w, h := grid.Cols()*size, grid.Rows()*size
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			v := grid[r][c]
			x, y := c*size, r*size
			fmt.Fprintf(&sb, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#ffffff" stroke-width="0.5"/>`+"\n",
				x, y, size, size, CellColor(v, n))
			if opts.Numbers {
				fmt.Fprintf(&sb, `  <text x="%d" y="%d" font-family="SF Mono, Menlo, monospace" font-size="%d" text-anchor="middle" fill="#1a1a1a">%d</text>`+"\n",
					x+size/2, y+size/2+size/5, size/2, v)
			}
		}
	}

	sb.WriteString("</svg>\n")
	return []byte(sb.String())
}

// CellColor returns the hex fill color for country v out of n. Unassigned
// cells (label 0, which should never survive post-processing) render as
// gray so they stand out.
func CellColor(v, n int) string {
	if v < 1 || v > n {
		return "#cccccc"
	}
	hue := float64(v-1) * 360.0 / float64(max(n, 1))
	r, g, b := hslToRGB(hue, 0.55, 0.72)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// hslToRGB converts an HSL triple (h in degrees, s and l in [0, 1]) to
// 8-bit RGB channels.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
