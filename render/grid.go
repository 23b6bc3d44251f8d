package render

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/mines/grid"
)

// Grid holds one Cell per board coordinate. It is a passive view: the
// board engine writes states into it and Format turns the whole thing
// into text on demand. No byte-offset surgery, no cached layout.
type Grid struct {
	geom  grid.Geometry
	cells []Cell
}

// NewGrid returns a rows x cols grid with every cell Hidden.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		geom:  grid.Geometry{Rows: rows, Cols: cols},
		cells: make([]Cell, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.geom.Rows }
func (g *Grid) Cols() int { return g.geom.Cols }

// At returns the state of c. Out-of-bounds coordinates read as Hidden.
func (g *Grid) At(c grid.Coord) Cell {
	if !g.geom.Contains(c) {
		return Hidden
	}
	return g.cells[g.geom.Index(c)]
}

// Set records a new state for c. Out-of-bounds coordinates are ignored.
func (g *Grid) Set(c grid.Coord, cell Cell) {
	if g.geom.Contains(c) {
		g.cells[g.geom.Index(c)] = cell
	}
}

// Format renders the grid as a framed text block: a header line with
// 1-based column numbers, then one line per row prefixed with its
// 1-based row number. Column widths grow with the label digit count so
// boards up to any size stay aligned.
func (g *Grid) Format() string {
	rowLabelWidth := digits(g.geom.Rows) + 1
	colLabelWidth := digits(g.geom.Cols) + 2

	var b strings.Builder
	b.Grow((g.geom.Rows + 1) * (g.geom.Cols*(colLabelWidth+1) + rowLabelWidth + 2))

	// Header: column numbers.
	pad(&b, rowLabelWidth+1+colLabelWidth, "1")
	b.WriteByte('|')
	for col := 2; col <= g.geom.Cols; col++ {
		pad(&b, colLabelWidth, strconv.Itoa(col))
		b.WriteByte('|')
	}
	b.WriteByte('\n')

	// One line per row.
	for row := 0; row < g.geom.Rows; row++ {
		pad(&b, rowLabelWidth, strconv.Itoa(row+1))
		b.WriteByte('|')
		for col := 0; col < g.geom.Cols; col++ {
			for i := 0; i < colLabelWidth; i++ {
				b.WriteByte(' ')
			}
			b.WriteRune(g.At(grid.Coord{Row: row, Col: col}).Rune())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// pad writes s right-aligned in a field of the given width.
func pad(b *strings.Builder, width int, s string) {
	for i := len(s); i < width; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}

func digits(n int) int {
	return len(strconv.Itoa(n))
}
