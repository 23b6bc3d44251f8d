// Package session is the line-oriented front end: a prompt, single
// letter commands with comma-separated arguments, and the drain loop
// that drives the board one step at a time. All coordinates are 1-based
// at this layer and translated before they reach the engine.
package session

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lixenwraith/mines/audio"
	"github.com/lixenwraith/mines/board"
	"github.com/lixenwraith/mines/grid"
)

const prompt = ">>"

const welcome = "\nWelcome to mines!\n" +
	"A default board of %dx%d cells and approximately %d mines has been created.\n" +
	"To start a new game with a different board, just type in the command 'n <rows>, <cols>, <mines>'\n" +
	"Type in 'h' or '?' at the prompt to list all the commands available.\n" +
	"Have fun!\n\n"

const help = "\nAvailable commands:\n\n" +
	"- n   rows, columns, mines  start a new game with the given board dimensions and mines.\n" +
	"- x   row, col              explore the cell at (row, col).\n" +
	"- f/> row, col              flag the cell at (row, col).\n" +
	"- h                         print this message.\n" +
	"- q                         quit the game.\n\n" +
	"Arguments to the 'n' and 'x' command are optional.\n" +
	"An appropriate value will be chosen at random for each missing argument.\n\n"

// Session owns one board at a time and replaces it wholesale on 'n'.
type Session struct {
	board   *board.Board
	rng     *rand.Rand
	in      *bufio.Scanner
	out     io.Writer
	sounds  *audio.Player // nil means muted
	first   [3]int        // starting board shape, echoed in the banner
	started time.Time
	now     func() time.Time
}

// New creates a session with its starting board. rng feeds both mine
// placement and the random defaults for omitted arguments.
func New(in io.Reader, out io.Writer, rows, cols, mines int, rng *rand.Rand, sounds *audio.Player) (*Session, error) {
	b, err := board.New(rows, cols, mines, rng)
	if err != nil {
		return nil, err
	}
	s := &Session{
		board:  b,
		rng:    rng,
		in:     bufio.NewScanner(in),
		out:    out,
		sounds: sounds,
		first:  [3]int{rows, cols, mines},
		now:    time.Now,
	}
	s.started = s.now()
	return s, nil
}

// Run loops until the player quits, wins, loses, or input ends.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, welcome, s.first[0], s.first[1], s.first[2])

	for {
		s.printStatus()

		if !s.in.Scan() {
			fmt.Fprintf(s.out, "\n%s End of input. Quitting the game...\n", prompt)
			return s.in.Err()
		}

		line := stripSpace(s.in.Text())
		if line == "" {
			continue
		}

		cmd := line[0]
		rest := line[1:]

		switch cmd {
		case 'n':
			s.newGame(rest)
		case 'x':
			if done := s.explore(rest); done {
				return nil
			}
		case 'f', '>':
			s.flag(cmd, rest)
		case 'h', '?':
			if rest != "" {
				fmt.Fprintf(s.out, "%s '%c': unknown command. Did you mean 'h'?\n\n", prompt, cmd)
				continue
			}
			fmt.Fprint(s.out, help)
		case 'q':
			if rest != "" {
				fmt.Fprintf(s.out, "%s '%c': unknown command. Did you mean 'q'?\n\n", prompt, cmd)
				continue
			}
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintf(s.out, "%s Unknown command '%c'.\n\n", prompt, cmd)
		}
	}
}

func (s *Session) printStatus() {
	fmt.Fprintf(s.out, "%s\nLocated %d of %d mines\nTotal playing time: %s\n\n%s ",
		s.board.Text(),
		s.board.FlaggedCount(), s.board.MineCount(),
		formatDuration(s.now().Sub(s.started)),
		prompt)
}

func (s *Session) newGame(rest string) {
	// Defaults keep the new board no larger than the current one.
	args := []int{
		1 + s.rng.Intn(s.board.Rows()),
		1 + s.rng.Intn(s.board.Cols()),
		0,
	}
	if area := args[0] * args[1]; area > 1 {
		args[2] = 1 + s.rng.Intn(area-1)
	}

	switch status, token := parseArgs(rest, args, false); status {
	case tooManyArguments:
		fmt.Fprintf(s.out, "%s 'n': too many arguments, expected three at most: '[rows]', '[columns]', and '[mine count]'.\n\n", prompt)
		return
	case invalidArgument:
		fmt.Fprintf(s.out, "%s 'n': '%s' is not a valid argument.\n\n", prompt, token)
		return
	}

	b, err := board.New(args[0], args[1], args[2], s.rng)
	switch err {
	case nil:
		fmt.Fprintf(s.out, "%s Starting a new game. The new board has %d rows, %d columns, and (approximately) %d mines.\n\n",
			prompt, args[0], args[1], args[2])
		s.board = b
		s.started = s.now()
	case board.ErrNullArea:
		fmt.Fprintf(s.out, "%s 'n': Cannot create a board with zero rows or columns!\n\n", prompt)
	case board.ErrTooManyMines:
		fmt.Fprintf(s.out, "%s 'n': Too many mines for such a small board!\n\n", prompt)
	}
}

// explore queues a cell and drains the board. The return value reports
// whether the game ended (win or loss).
func (s *Session) explore(rest string) bool {
	args := []int{
		1 + s.rng.Intn(s.board.Rows()),
		1 + s.rng.Intn(s.board.Cols()),
	}

	switch status, token := parseArgs(rest, args, false); status {
	case tooManyArguments:
		fmt.Fprintf(s.out, "%s 'x': too many arguments, expected two at most: '[row]', '[column]'.\n\n", prompt)
		return false
	case invalidArgument:
		fmt.Fprintf(s.out, "%s 'x': '%s' is not a valid coordinate.\n\n", prompt, token)
		return false
	}

	c := grid.Coord{Row: args[0] - 1, Col: args[1] - 1}

	switch s.board.Enqueue(c) {
	case board.InvalidCoordinate:
		fmt.Fprintf(s.out, "%s 'x': invalid cell coordinate (%d, %d).\n\n", prompt, args[0], args[1])
		return false
	case board.AlreadyClear:
		fmt.Fprintf(s.out, "%s 'x': the cell at (%d, %d) is clear.\n\n", prompt, args[0], args[1])
		return false
	}

	// Drain greedily: keep expanding clear neighborhoods until the
	// frontier runs dry or the game ends.
	for {
		switch s.board.Step() {
		case board.Ok:
		case board.EmptyFrontier:
			s.sounds.Reveal()
			return false
		case board.BoardClear:
			s.sounds.Fanfare()
			fmt.Fprintf(s.out, "%s Congratulations! All mines have been found!\n\n%s\n", prompt, s.board.Text())
			return true
		case board.Mined:
			s.sounds.Detonate()
			fmt.Fprintf(s.out, "%s The cell is mined!\n\n%s\nGame over!\n", prompt, s.board.Text())
			return true
		}
	}
}

func (s *Session) flag(cmd byte, rest string) {
	args := make([]int, 2)

	switch status, token := parseArgs(rest, args, true); status {
	case missingArgument:
		fmt.Fprintf(s.out, "%s '%c': too few arguments passed in.\n\n", prompt, cmd)
		return
	case tooManyArguments:
		fmt.Fprintf(s.out, "%s '%c': too many arguments, expected two at most: '[row]', '[column]'.\n\n", prompt, cmd)
		return
	case invalidArgument:
		fmt.Fprintf(s.out, "%s '%c': '%s' is not a valid coordinate.\n\n", prompt, cmd, token)
		return
	}

	if !s.board.ToggleFlag(grid.Coord{Row: args[0] - 1, Col: args[1] - 1}) {
		fmt.Fprintf(s.out, "%s '%c': invalid cell coordinate (%d, %d).\n\n", prompt, cmd, args[0], args[1])
		return
	}
	s.sounds.Flag()
}

// stripSpace removes all whitespace so "x 3 , 4" parses like "x3,4".
func stripSpace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

func formatDuration(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, (seconds%3600)/60, seconds%60)
}
