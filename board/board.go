package board

import (
	"github.com/lixenwraith/mines/grid"
	"github.com/lixenwraith/mines/render"
)

// RandSource yields uniformly distributed integers in [0, n). It is the
// board's only external dependency, injected so tests can script exact
// mine layouts. *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Board is the single-game state machine: mine layout fixed at
// construction, a FIFO frontier of cells queued for exploration, the
// explored and flagged sets, and a render grid kept in sync with every
// mutation. One owner drives it serially; it never calls out.
type Board struct {
	geom grid.Geometry

	minesAt map[grid.Coord]struct{}

	// The frontier is an explicit FIFO queue plus a membership set, so
	// exploration order is reproducible run to run. Popping in map
	// iteration order would make partial reveals nondeterministic.
	frontier []grid.Coord
	queued   map[grid.Coord]struct{}

	explored map[grid.Coord]struct{}
	flagged  map[grid.Coord]struct{}

	view  *render.Grid
	ended bool

	scratch []grid.Coord // neighbor buffer reused across steps
}

// New builds a rows x cols board and mines it by drawing mineCount cell
// indices from src with replacement. Duplicate draws collapse, so the
// realized mine count (MineCount) may come in under mineCount. That is
// long-standing behavior callers rely on, not a bug to fix here.
func New(rows, cols, mineCount int, src RandSource) (*Board, error) {
	geom := grid.Geometry{Rows: rows, Cols: cols}
	area := geom.Area()

	if area == 0 {
		return nil, ErrNullArea
	}
	if mineCount >= area {
		return nil, ErrTooManyMines
	}

	minesAt := make(map[grid.Coord]struct{}, mineCount)
	for i := 0; i < mineCount; i++ {
		minesAt[geom.CoordOf(src.Intn(area))] = struct{}{}
	}

	return &Board{
		geom:     geom,
		minesAt:  minesAt,
		queued:   make(map[grid.Coord]struct{}),
		explored: make(map[grid.Coord]struct{}, area-len(minesAt)),
		flagged:  make(map[grid.Coord]struct{}, len(minesAt)),
		view:     render.NewGrid(rows, cols),
		scratch:  make([]grid.Coord, 0, 8),
	}, nil
}

// Enqueue queues c for exploration. Already-revealed cells report
// AlreadyClear without touching state; a cell already waiting in the
// frontier is not queued twice.
func (b *Board) Enqueue(c grid.Coord) EnqueueResult {
	if !b.geom.Contains(c) {
		return InvalidCoordinate
	}
	if _, ok := b.explored[c]; ok {
		return AlreadyClear
	}
	if _, ok := b.queued[c]; !ok {
		b.queued[c] = struct{}{}
		b.frontier = append(b.frontier, c)
	}
	return Accepted
}

// Step processes the oldest queued cell and reports the transition.
// The caller drains it in a loop: EmptyFrontier pauses the game, Mined
// and BoardClear end it. Mine detection happens before any neighbor
// counting or label write, so a losing step reveals nothing else.
func (b *Board) Step() StepResult {
	if b.ended {
		return Mined
	}

	if len(b.frontier) == 0 {
		if b.geom.Area()-len(b.explored) == len(b.minesAt) {
			return BoardClear
		}
		return EmptyFrontier
	}

	c := b.frontier[0]
	b.frontier = b.frontier[1:]
	delete(b.queued, c)

	b.explored[c] = struct{}{}
	delete(b.flagged, c) // reveal clears any flag

	if _, mined := b.minesAt[c]; mined {
		b.revealMines()
		b.ended = true
		return Mined
	}

	b.scratch = b.geom.Neighbors(c, b.scratch[:0])
	mineNeighbors := 0
	for _, n := range b.scratch {
		if _, ok := b.minesAt[n]; ok {
			mineNeighbors++
		}
	}

	if mineNeighbors > 0 {
		// Boundary of the safe region: label and stop propagating.
		b.view.Set(c, render.Number(mineNeighbors))
		return Ok
	}

	b.view.Set(c, render.Blank)
	for _, n := range b.scratch {
		if _, ok := b.explored[n]; ok {
			continue
		}
		if _, ok := b.queued[n]; ok {
			continue
		}
		b.queued[n] = struct{}{}
		b.frontier = append(b.frontier, n)
	}
	return Ok
}

// ToggleFlag flips the flag on c. Revealed cells cannot be flagged and
// the flag count never exceeds the realized mine count; both cases are
// quiet no-ops. Only an out-of-range coordinate returns false.
func (b *Board) ToggleFlag(c grid.Coord) bool {
	if !b.geom.Contains(c) {
		return false
	}
	if _, ok := b.explored[c]; ok {
		return true
	}

	if _, ok := b.flagged[c]; ok {
		delete(b.flagged, c)
		b.view.Set(c, render.Hidden)
		return true
	}

	if len(b.flagged) < len(b.minesAt) {
		b.flagged[c] = struct{}{}
		b.view.Set(c, render.Flagged)
	}
	return true
}

func (b *Board) revealMines() {
	for c := range b.minesAt {
		b.view.Set(c, render.Mine)
	}
}

func (b *Board) Rows() int { return b.geom.Rows }
func (b *Board) Cols() int { return b.geom.Cols }

// MineCount is the realized number of mines, which may be below the
// count requested at construction.
func (b *Board) MineCount() int { return len(b.minesAt) }

func (b *Board) FlaggedCount() int { return len(b.flagged) }

// Ended reports whether a Step has detonated a mine.
func (b *Board) Ended() bool { return b.ended }

// View exposes the render grid for cell-level reads (the tcell front
// end draws from it). Callers must not write to it.
func (b *Board) View() *render.Grid { return b.view }

// Text renders the current board as a framed text block.
func (b *Board) Text() string { return b.view.Format() }
