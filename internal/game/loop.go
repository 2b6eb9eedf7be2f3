package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/assets"
	"emoji-chase/internal/render"
)

// Run drives games on the given screen until the player quits. When a game
// reaches a terminal state its banner stays up until the player restarts
// with r or quits with q.
func Run(screen tcell.Screen, cfg Config) error {
	for {
		again, err := runOnce(screen, cfg)
		if err != nil || !again {
			return err
		}
	}
}

// runOnce plays a single game to quit or restart. Ticks come from a
// wall-clock ticker; input events are pumped into a channel so the loop
// can select over both.
func runOnce(screen tcell.Screen, cfg Config) (again bool, err error) {
	term := render.NewTerminal(screen, WorldWidth, WorldHeight)
	g, err := New(term, cfg)
	if err != nil {
		return false, err
	}

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	interval := cfg.TickInterval
	if interval == 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.Tick()
			term.DrawFrame()
			switch g.State() {
			case StateWon:
				term.DrawBanner(assets.BannerWon)
			case StateLost:
				term.DrawBanner(assets.BannerLost)
			}
			term.Show()

		case ev, ok := <-events:
			if !ok {
				return false, nil // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				term.Sync()
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.Button1 != 0 {
					cx, cy := ev.Position()
					g.PointerClick(term.CellToWorld(cx, cy))
				}
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return false, nil
				case ev.Rune() == 'q' || ev.Rune() == 'Q':
					return false, nil
				case ev.Rune() == 'r' || ev.Rune() == 'R':
					if !g.IsRunning() {
						return true, nil
					}
				}
			}
		}
	}
}
