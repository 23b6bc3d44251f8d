package render

import "fmt"

// Cell is the visible state of one board position. Every value formats
// to exactly one character so the board text never reflows.
type Cell uint8

const (
	Hidden Cell = iota // not yet revealed
	Flagged
	Blank // revealed, zero mined neighbors
	Mine

	numberBase // Number(1) .. Number(8) follow
)

// Number returns the cell state for a revealed cell with n mined
// neighbors, 1 <= n <= 8. A 3x3 neighborhood caps n at 8.
func Number(n int) Cell {
	if n < 1 || n > 8 {
		panic(fmt.Sprintf("render: neighbor count %d out of range", n))
	}
	return numberBase + Cell(n)
}

// Count returns the neighbor count of a Number cell and true, or 0 and
// false for every other state.
func (c Cell) Count() (int, bool) {
	if c > numberBase && c <= numberBase+8 {
		return int(c - numberBase), true
	}
	return 0, false
}

// Rune is the single-width character a cell formats to.
func (c Cell) Rune() rune {
	switch c {
	case Hidden:
		return '.'
	case Flagged:
		return '>'
	case Blank:
		return ' '
	case Mine:
		return '*'
	}
	if n, ok := c.Count(); ok {
		return rune('0' + n)
	}
	return '?'
}
