package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lixenwraith/mines/grid"
)

func TestCellRunes(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want rune
	}{
		{"hidden", Hidden, '.'},
		{"flagged", Flagged, '>'},
		{"blank", Blank, ' '},
		{"mine", Mine, '*'},
		{"one", Number(1), '1'},
		{"eight", Number(8), '8'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Rune(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

// Every renderable state must occupy exactly one character, otherwise
// the framed layout would drift as the game progresses.
func TestCellRunesSingleWidth(t *testing.T) {
	states := []Cell{Hidden, Flagged, Blank, Mine}
	for n := 1; n <= 8; n++ {
		states = append(states, Number(n))
	}

	for _, s := range states {
		if size := utf8.RuneLen(s.Rune()); size != 1 {
			t.Errorf("Cell %d renders %q (%d bytes), want a single byte", s, s.Rune(), size)
		}
	}
}

func TestNumberRange(t *testing.T) {
	for _, n := range []int{0, 9, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected Number(%d) to panic", n)
				}
			}()
			Number(n)
		}()
	}

	for n := 1; n <= 8; n++ {
		got, ok := Number(n).Count()
		if !ok || got != n {
			t.Errorf("Number(%d).Count() = %d, %v", n, got, ok)
		}
	}
}

func TestGridSetAt(t *testing.T) {
	g := NewGrid(3, 3)
	c := grid.Coord{Row: 1, Col: 2}

	if g.At(c) != Hidden {
		t.Errorf("Expected fresh cell to be Hidden, got %d", g.At(c))
	}

	g.Set(c, Number(3))
	if g.At(c) != Number(3) {
		t.Errorf("Expected Number(3) after Set, got %d", g.At(c))
	}

	// Out-of-bounds writes are dropped, reads come back Hidden.
	out := grid.Coord{Row: 5, Col: 5}
	g.Set(out, Mine)
	if g.At(out) != Hidden {
		t.Errorf("Expected out-of-bounds read to be Hidden, got %d", g.At(out))
	}
}

func TestFormatLayout(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(grid.Coord{Row: 0, Col: 0}, Blank)
	g.Set(grid.Coord{Row: 0, Col: 1}, Number(2))
	g.Set(grid.Coord{Row: 1, Col: 2}, Flagged)

	want := "" +
		"     1|  2|  3|\n" +
		" 1|       2   .\n" +
		" 2|   .   .   >\n"

	if got := g.Format(); got != want {
		t.Errorf("Format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatStableWidth(t *testing.T) {
	g := NewGrid(4, 12)
	lines := strings.Split(strings.TrimRight(g.Format(), "\n"), "\n")

	if len(lines) != 5 {
		t.Fatalf("Expected header plus 4 rows, got %d lines", len(lines))
	}

	// All board rows must share one width; mutations never reflow.
	rowWidth := len(lines[1])
	for i, line := range lines[1:] {
		if len(line) != rowWidth {
			t.Errorf("Row line %d has width %d, want %d", i, len(line), rowWidth)
		}
	}

	g.Set(grid.Coord{Row: 2, Col: 11}, Mine)
	after := strings.Split(strings.TrimRight(g.Format(), "\n"), "\n")
	if len(after[3]) != rowWidth {
		t.Errorf("Row width changed after Set: %d, want %d", len(after[3]), rowWidth)
	}
}
