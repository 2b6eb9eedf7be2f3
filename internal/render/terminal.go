// Package render draws the playfield onto a tcell screen. The world is a
// fixed-size continuous plane; every frame it is projected onto whatever
// cell grid the terminal currently has, so resizing just rescales the view.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"emoji-chase/assets"
	"emoji-chase/internal/canvas"
)

// Terminal is a Canvas whose frames are drawn to a tcell screen. It embeds
// a Memory canvas for shape bookkeeping; the simulation draws into that,
// and DrawFrame projects the result onto the screen.
type Terminal struct {
	*canvas.Memory
	screen tcell.Screen
	worldW float64
	worldH float64
}

// NewTerminal creates a Terminal for the given screen and world extent.
func NewTerminal(screen tcell.Screen, worldW, worldH float64) *Terminal {
	return &Terminal{
		Memory: canvas.NewMemory(worldW, worldH),
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// drawnShape holds sorting info for one frame's draw pass.
type drawnShape struct {
	z     int
	shape canvas.Shape
}

// DrawFrame clears the screen and draws every visible shape, lowest Z
// first so raised shapes end up on top.
func (t *Terminal) DrawFrame() {
	t.screen.Clear()

	var shapes []drawnShape
	t.Each(func(_ canvas.Handle, s canvas.Shape) {
		if s.Visible {
			shapes = append(shapes, drawnShape{z: s.Z, shape: s})
		}
	})
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].z < shapes[j].z })

	for _, d := range shapes {
		sx, sy := t.worldToCell(d.shape.Center.X, d.shape.Center.Y)
		style := tcell.StyleDefault.Foreground(d.shape.Color).Background(tcell.ColorBlack)
		t.putGlyph(sx, sy, glyphFor(d.shape), style)
	}
}

// DrawBanner centers the given title over the playfield with the restart
// hint below it. Drawn on top of the current frame.
func (t *Terminal) DrawBanner(title string) {
	cols, rows := t.screen.Size()
	y := rows / 2

	t.drawCentered(title, cols, y-1, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	t.drawCentered(assets.BannerHint, cols, y+1, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// Show flushes the frame to the terminal.
func (t *Terminal) Show() { t.screen.Show() }

// Sync forces a full repaint, used after resize events.
func (t *Terminal) Sync() { t.screen.Sync() }

// CellToWorld converts a screen cell (mouse click) to world coordinates at
// the cell's center.
func (t *Terminal) CellToWorld(cx, cy int) (x, y float64) {
	cols, rows := t.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	x = (float64(cx) + 0.5) / float64(cols) * t.worldW
	y = (float64(cy) + 0.5) / float64(rows) * t.worldH
	return x, y
}

// worldToCell projects world coordinates onto the current cell grid.
func (t *Terminal) worldToCell(x, y float64) (cx, cy int) {
	cols, rows := t.screen.Size()
	cx = int(x / t.worldW * float64(cols))
	cy = int(y / t.worldH * float64(rows))
	if cx < 0 {
		cx = 0
	}
	if cx > cols-1 {
		cx = cols - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy > rows-1 {
		cy = rows - 1
	}
	return cx, cy
}

// glyphFor picks the emoji for a shape. Rects and crosses are unique on
// the field; ovals are told apart by color.
func glyphFor(s canvas.Shape) string {
	switch s.Kind {
	case canvas.Rect:
		return assets.GlyphHome
	case canvas.Cross:
		return assets.GlyphWaypoint
	default:
		return assets.OvalGlyph(s.Color)
	}
}

// drawCentered draws a string centered on row y.
func (t *Terminal) drawCentered(msg string, cols, y int, style tcell.Style) {
	x := (cols - runewidth.StringWidth(msg)) / 2
	if x < 0 {
		x = 0
	}
	for _, r := range msg {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at cell (x, y).
func (t *Terminal) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	t.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		t.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
