package grid

// Coord identifies a single cell by zero-based row and column.
// Coords are plain values: comparable, hashable, usable as map keys.
type Coord struct {
	Row, Col int
}

// Geometry is the fixed shape of a rectangular board. It never changes
// after the board is built.
type Geometry struct {
	Rows, Cols int
}

// Area returns the total cell count.
func (g Geometry) Area() int {
	return g.Rows * g.Cols
}

// Contains reports whether c lies on the board.
func (g Geometry) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// CoordOf maps a flat cell index in [0, Area) to its coordinate,
// scanning row-major.
func (g Geometry) CoordOf(index int) Coord {
	return Coord{Row: index / g.Cols, Col: index % g.Cols}
}

// Index is the inverse of CoordOf.
func (g Geometry) Index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// Neighbors appends the in-bounds 8-neighborhood of c to dst and returns
// the extended slice. Cells on an edge have 5 neighbors, corners 3.
// Callers reuse dst across calls to avoid churn.
func (g Geometry) Neighbors(c Coord, dst []Coord) []Coord {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			if g.Contains(n) {
				dst = append(dst, n)
			}
		}
	}
	return dst
}
