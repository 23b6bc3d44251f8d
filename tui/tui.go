// Package tui is the full-screen front end: a cursor on the board,
// single-key reveal and flag, and a status bar. The same board engine
// runs underneath; this layer only translates keys and draws cells.
package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mines/audio"
	"github.com/lixenwraith/mines/board"
	"github.com/lixenwraith/mines/grid"
	"github.com/lixenwraith/mines/render"
)

const (
	originX = 2 // board offset from the screen edge
	originY = 1
	cellW   = 2 // horizontal spacing per cell
)

type Game struct {
	screen tcell.Screen
	board  *board.Board
	rng    *rand.Rand
	sounds *audio.Player

	// Parameters reused for every new game started with 'n'.
	rows, cols, mines int

	cursor  grid.Coord
	status  string
	over    bool
	won     bool
	started time.Time
}

// New builds the first board and places the cursor at its center. The
// screen must already be initialized; the caller owns Fini.
func New(screen tcell.Screen, rows, cols, mines int, rng *rand.Rand, sounds *audio.Player) (*Game, error) {
	b, err := board.New(rows, cols, mines, rng)
	if err != nil {
		return nil, err
	}
	return &Game{
		screen:  screen,
		board:   b,
		rng:     rng,
		sounds:  sounds,
		rows:    rows,
		cols:    cols,
		mines:   mines,
		cursor:  grid.Coord{Row: rows / 2, Col: cols / 2},
		started: time.Now(),
	}, nil
}

// Run drives the event loop until the player quits.
func (g *Game) Run() {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- g.screen.PollEvent()
		}
	}()

	g.draw()
	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
			g.draw()
		case <-ticker.C:
			// Redraw on the tick so the play clock keeps moving.
			g.draw()
		}
	}
}

// handleEvent processes one event and reports whether to keep running.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.moveCursor(-1, 0)
		case tcell.KeyDown:
			g.moveCursor(1, 0)
		case tcell.KeyLeft:
			g.moveCursor(0, -1)
		case tcell.KeyRight:
			g.moveCursor(0, 1)
		case tcell.KeyEnter:
			g.reveal()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				g.moveCursor(-1, 0)
			case 'j':
				g.moveCursor(1, 0)
			case 'h':
				g.moveCursor(0, -1)
			case 'l':
				g.moveCursor(0, 1)
			case ' ', 'x':
				g.reveal()
			case 'f':
				g.flag()
			case 'n':
				g.newGame()
			}
		}
	}
	return true
}

func (g *Game) moveCursor(dr, dc int) {
	next := grid.Coord{Row: g.cursor.Row + dr, Col: g.cursor.Col + dc}
	if next.Row >= 0 && next.Row < g.board.Rows() && next.Col >= 0 && next.Col < g.board.Cols() {
		g.cursor = next
	}
}

func (g *Game) reveal() {
	if g.over {
		return
	}

	switch g.board.Enqueue(g.cursor) {
	case board.AlreadyClear:
		g.status = "already clear"
		return
	case board.InvalidCoordinate:
		return
	}

	for {
		switch g.board.Step() {
		case board.Ok:
		case board.EmptyFrontier:
			g.sounds.Reveal()
			g.status = ""
			return
		case board.Mined:
			g.sounds.Detonate()
			g.over = true
			g.status = "you hit a mine - 'n' for a new game"
			return
		case board.BoardClear:
			g.sounds.Fanfare()
			g.over = true
			g.won = true
			g.status = "all mines found - 'n' for a new game"
			return
		}
	}
}

func (g *Game) flag() {
	if g.over {
		return
	}
	if g.board.ToggleFlag(g.cursor) {
		g.sounds.Flag()
	}
}

func (g *Game) newGame() {
	b, err := board.New(g.rows, g.cols, g.mines, g.rng)
	if err != nil {
		// Parameters were validated for the first board already.
		return
	}
	g.board = b
	g.cursor = grid.Coord{Row: g.rows / 2, Col: g.cols / 2}
	g.over = false
	g.won = false
	g.status = ""
	g.started = time.Now()
}

func (g *Game) draw() {
	g.screen.Clear()

	for row := 0; row < g.board.Rows(); row++ {
		for col := 0; col < g.board.Cols(); col++ {
			c := grid.Coord{Row: row, Col: col}
			r, style := appearance(g.board.View().At(c))
			if c == g.cursor {
				style = style.Reverse(true)
			}
			g.screen.SetContent(originX+col*cellW, originY+row, r, nil, style)
		}
	}

	g.drawStatus()
	g.screen.Show()
}

func (g *Game) drawStatus() {
	_, height := g.screen.Size()
	y := originY + g.board.Rows() + 1
	if y >= height {
		y = height - 1
	}

	line := fmt.Sprintf("located %d of %d mines  %s  [space] reveal  [f] flag  [n] new  [q] quit",
		g.board.FlaggedCount(), g.board.MineCount(),
		formatClock(time.Since(g.started)))
	if g.status != "" {
		line += "  " + g.status
	}

	style := tcell.StyleDefault
	if g.over {
		if g.won {
			style = style.Foreground(tcell.ColorGreen)
		} else {
			style = style.Foreground(tcell.ColorRed)
		}
	}
	for i, r := range line {
		g.screen.SetContent(originX+i, y, r, nil, style)
	}
}

// appearance maps a cell state to its rune and color. Number colors
// follow the classic palette for the low counts.
func appearance(c render.Cell) (rune, tcell.Style) {
	base := tcell.StyleDefault
	switch c {
	case render.Hidden:
		return '.', base.Foreground(tcell.ColorGray)
	case render.Flagged:
		return '>', base.Foreground(tcell.ColorYellow)
	case render.Blank:
		return ' ', base
	case render.Mine:
		return '*', base.Foreground(tcell.ColorRed).Bold(true)
	}

	n, _ := c.Count()
	switch n {
	case 1:
		base = base.Foreground(tcell.ColorBlue)
	case 2:
		base = base.Foreground(tcell.ColorGreen)
	case 3:
		base = base.Foreground(tcell.ColorRed)
	default:
		base = base.Foreground(tcell.ColorPurple)
	}
	return c.Rune(), base
}

func formatClock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
