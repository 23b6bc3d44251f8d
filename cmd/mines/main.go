package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mines/audio"
	"github.com/lixenwraith/mines/session"
	"github.com/lixenwraith/mines/tui"
)

var (
	rowsFlag  = flag.Int("rows", 10, "board rows")
	colsFlag  = flag.Int("cols", 10, "board columns")
	minesFlag = flag.Int("mines", 50, "mines to place (approximate: duplicate draws collapse)")
	seedFlag  = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	tuiFlag   = flag.Bool("tui", false, "full-screen interface instead of the prompt")
	muteFlag  = flag.Bool("mute", false, "disable sound")
)

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var sounds *audio.Player
	if !*muteFlag {
		var err error
		if sounds, err = audio.NewPlayer(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without sound)", err)
			sounds = nil
		}
	}

	if *tuiFlag {
		runTUI(rng, sounds)
		return
	}

	s, err := session.New(os.Stdin, os.Stdout, *rowsFlag, *colsFlag, *minesFlag, rng, sounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create the board: %v\n", err)
		os.Exit(1)
	}
	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Input error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(rng *rand.Rand, sounds *audio.Player) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create the screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize the terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes, then surface the
	// panic where it is readable.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nmines crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	game, err := tui.New(screen, *rowsFlag, *colsFlag, *minesFlag, rng, sounds)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Cannot create the board: %v\n", err)
		os.Exit(1)
	}
	game.Run()
}
