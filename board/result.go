package board

import "errors"

// Construction failures. These are the only caller-visible errors; a
// failed New leaves nothing behind.
var (
	ErrNullArea     = errors.New("board has zero rows or columns")
	ErrTooManyMines = errors.New("mine count must be below the board area")
)

// EnqueueResult reports the outcome of queueing a cell for exploration.
type EnqueueResult uint8

const (
	Accepted EnqueueResult = iota
	InvalidCoordinate
	AlreadyClear // cell was revealed earlier; enqueue is a no-op
)

func (r EnqueueResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case InvalidCoordinate:
		return "invalid coordinate"
	case AlreadyClear:
		return "already clear"
	}
	return "unknown"
}

// StepResult reports one exploration step. Mined and BoardClear are
// terminal: the caller stops driving the board after either.
type StepResult uint8

const (
	Ok StepResult = iota
	EmptyFrontier // nothing queued; the safe region is exhausted
	Mined
	BoardClear
)

func (r StepResult) String() string {
	switch r {
	case Ok:
		return "ok"
	case EmptyFrontier:
		return "empty frontier"
	case Mined:
		return "mined"
	case BoardClear:
		return "board clear"
	}
	return "unknown"
}
