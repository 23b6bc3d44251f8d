package tui

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mines/grid"
	"github.com/lixenwraith/mines/render"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("SimulationScreen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)

	g, err := New(screen, 5, 5, 3, rand.New(rand.NewSource(11)), nil)
	if err != nil {
		t.Fatalf("New game failed: %v", err)
	}
	return g
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestCursorMovementClamps(t *testing.T) {
	g := newTestGame(t)

	if (g.cursor != grid.Coord{Row: 2, Col: 2}) {
		t.Fatalf("Expected cursor at board center, got %v", g.cursor)
	}

	// Vi keys and arrows both move; the edge stops the cursor.
	for i := 0; i < 10; i++ {
		g.handleEvent(key(tcell.KeyRune, 'h'))
	}
	if g.cursor.Col != 0 {
		t.Errorf("Expected cursor clamped at column 0, got %d", g.cursor.Col)
	}

	for i := 0; i < 10; i++ {
		g.handleEvent(key(tcell.KeyDown, 0))
	}
	if g.cursor.Row != 4 {
		t.Errorf("Expected cursor clamped at row 4, got %d", g.cursor.Row)
	}
}

func TestQuitKeys(t *testing.T) {
	g := newTestGame(t)

	if g.handleEvent(key(tcell.KeyRune, 'q')) {
		t.Error("Expected 'q' to stop the loop")
	}
	if g.handleEvent(key(tcell.KeyEscape, 0)) {
		t.Error("Expected Escape to stop the loop")
	}
	if !g.handleEvent(key(tcell.KeyRune, 'j')) {
		t.Error("Expected movement to keep the loop running")
	}
}

func TestFlagKeyTogglesCell(t *testing.T) {
	g := newTestGame(t)

	g.handleEvent(key(tcell.KeyRune, 'f'))
	if got := g.board.View().At(g.cursor); got != render.Flagged {
		t.Errorf("Expected Flagged at cursor, got %d", got)
	}
	if got := g.board.FlaggedCount(); got != 1 {
		t.Errorf("Expected 1 flag, got %d", got)
	}

	g.handleEvent(key(tcell.KeyRune, 'f'))
	if got := g.board.FlaggedCount(); got != 0 {
		t.Errorf("Expected flag removed, got %d", got)
	}
}

func TestRevealMarksGameOverOnMine(t *testing.T) {
	g := newTestGame(t)

	// Walk the cursor across every cell and reveal each one; with three
	// mines on a 5x5 board this must end the game eventually.
	for row := 0; row < 5 && !g.over; row++ {
		for col := 0; col < 5 && !g.over; col++ {
			g.cursor = grid.Coord{Row: row, Col: col}
			g.handleEvent(key(tcell.KeyRune, ' '))
		}
	}

	if !g.over {
		t.Fatal("Expected the game to end after revealing every cell")
	}

	// Further reveals and flags are ignored on a finished board.
	flags := g.board.FlaggedCount()
	g.handleEvent(key(tcell.KeyRune, 'f'))
	if g.board.FlaggedCount() != flags {
		t.Error("Expected flagging to be ignored after game over")
	}
}

func TestNewGameKeyResetsState(t *testing.T) {
	g := newTestGame(t)

	g.over = true
	g.won = true
	g.cursor = grid.Coord{Row: 0, Col: 0}

	g.handleEvent(key(tcell.KeyRune, 'n'))

	if g.over || g.won {
		t.Error("Expected a fresh game after 'n'")
	}
	if (g.cursor != grid.Coord{Row: 2, Col: 2}) {
		t.Errorf("Expected cursor recentered, got %v", g.cursor)
	}
	if got := g.board.FlaggedCount(); got != 0 {
		t.Errorf("Expected no flags on a fresh board, got %d", got)
	}
}

func TestAppearanceRunesMatchRenderModel(t *testing.T) {
	cells := []render.Cell{render.Hidden, render.Flagged, render.Mine, render.Number(1), render.Number(8)}
	for _, c := range cells {
		r, _ := appearance(c)
		if r != c.Rune() {
			t.Errorf("Cell %d draws %q but formats as %q", c, r, c.Rune())
		}
	}
}
