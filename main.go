// emoji-chase is a terminal chase game: click the playfield to steer the
// turtle to its home before the enemies catch it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/game"
)

func main() {
	level := flag.Int("level", 1, "Starting level")
	flag.Parse()

	if err := run(*level); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(level int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	return game.Run(screen, game.Config{Level: level})
}
