package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/assets"
	"emoji-chase/internal/canvas"
	"emoji-chase/internal/geom"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(100, 30)
	return NewTerminal(screen, 1000, 600), screen
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestDrawFrameProjectsShapes(t *testing.T) {
	term, screen := newTestTerminal(t)

	player := term.Create(canvas.Oval, tcell.ColorGreen)
	term.MoveTo(player, geom.Vec{X: 500, Y: 300}, 8, 8)

	hidden := term.Create(canvas.Cross, tcell.ColorGreen)
	term.MoveTo(hidden, geom.Vec{X: 100, Y: 100}, 10, 10)
	term.SetVisible(hidden, false)

	term.DrawFrame()
	term.Show()

	// World (500, 300) on a 100x30 grid lands on cell (50, 15).
	if got, want := cellRune(t, screen, 50, 15), []rune(assets.GlyphPlayer)[0]; got != want {
		t.Fatalf("cell (50,15) = %q, want the player glyph", got)
	}
	if got := cellRune(t, screen, 10, 5); got != ' ' {
		t.Fatalf("hidden shape was drawn: cell (10,5) = %q", got)
	}
}

func TestGlyphSelection(t *testing.T) {
	cases := []struct {
		name  string
		shape canvas.Shape
		want  string
	}{
		{"home", canvas.Shape{Kind: canvas.Rect, Color: tcell.ColorBrown}, assets.GlyphHome},
		{"waypoint", canvas.Shape{Kind: canvas.Cross, Color: tcell.ColorGreen}, assets.GlyphWaypoint},
		{"player", canvas.Shape{Kind: canvas.Oval, Color: tcell.ColorGreen}, assets.GlyphPlayer},
		{"walker", canvas.Shape{Kind: canvas.Oval, Color: tcell.ColorBlue}, assets.GlyphWalker},
		{"chaser", canvas.Shape{Kind: canvas.Oval, Color: tcell.ColorRed}, assets.GlyphChaser},
		{"fencer", canvas.Shape{Kind: canvas.Oval, Color: tcell.ColorYellow}, assets.GlyphFencer},
		{"dormant sentinel", canvas.Shape{Kind: canvas.Oval, Color: tcell.ColorWhite}, assets.GlyphCalm},
		{"unknown oval color", canvas.Shape{Kind: canvas.Oval, Color: tcell.ColorPurple}, assets.GlyphFallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := glyphFor(tc.shape); got != tc.want {
				t.Fatalf("glyphFor = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCellToWorldRoundTrip(t *testing.T) {
	term, _ := newTestTerminal(t)

	x, y := term.CellToWorld(50, 15)
	if x != 505 || y != 310 {
		t.Fatalf("CellToWorld(50, 15) = (%v, %v), want cell-center (505, 310)", x, y)
	}
	if cx, cy := term.worldToCell(x, y); cx != 50 || cy != 15 {
		t.Fatalf("worldToCell(%v, %v) = (%d, %d), want (50, 15)", x, y, cx, cy)
	}

	// Out-of-range positions clamp to the grid.
	if cx, cy := term.worldToCell(-50, 9000); cx != 0 || cy != 29 {
		t.Fatalf("clamped cell = (%d, %d), want (0, 29)", cx, cy)
	}
}
