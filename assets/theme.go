// Package assets holds the visual theme: the emoji glyph assigned to each
// element on the playfield.
package assets

import "github.com/gdamore/tcell/v2"

// Emoji constants used as element glyphs.
const (
	GlyphPlayer   = "🐢"
	GlyphHome     = "🏠"
	GlyphWaypoint = "❌"
	GlyphWalker   = "🔵"
	GlyphChaser   = "🔴"
	GlyphFencer   = "🟡"
	GlyphCalm     = "⚪"
	GlyphFallback = "⬜"
)

// OvalGlyphs maps an oval's fill color to its emoji. Ovals are the mobile
// actors; the color doubles as the actor's identity on the wire between
// the simulation and the renderer.
var OvalGlyphs = map[tcell.Color]string{
	tcell.ColorGreen:  GlyphPlayer,
	tcell.ColorBlue:   GlyphWalker,
	tcell.ColorRed:    GlyphChaser,
	tcell.ColorYellow: GlyphFencer,
	tcell.ColorWhite:  GlyphCalm,
}

// OvalGlyph returns the emoji for an oval of the given color.
func OvalGlyph(c tcell.Color) string {
	if g, ok := OvalGlyphs[c]; ok {
		return g
	}
	return GlyphFallback
}

// Banner text for the terminal states.
const (
	BannerWon  = "🎉 You Win 🎉"
	BannerLost = "💥 You Lose 💥"
	BannerHint = "[R] Play Again   [Q] Quit"
)
