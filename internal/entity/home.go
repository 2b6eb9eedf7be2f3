package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/canvas"
	"emoji-chase/internal/geom"
)

// Home is the static rectangular goal zone. Immutable after creation.
type Home struct {
	pos  geom.Vec
	size float64
	rect canvas.Handle
}

// NewHome creates a Home centered at pos with the given square size.
func NewHome(pos geom.Vec, size float64) (*Home, error) {
	if size <= 0 {
		return nil, fmt.Errorf("home size must be positive, got %v", size)
	}
	return &Home{pos: pos, size: size}, nil
}

// Pos returns the center of the home zone.
func (h *Home) Pos() geom.Vec { return h.pos }

// Size returns the square extent of the home zone.
func (h *Home) Size() float64 { return h.size }

// Contains reports whether (x, y) lies within the home rectangle.
// The boundary counts as inside.
func (h *Home) Contains(x, y float64) bool {
	half := h.size / 2
	return x >= h.pos.X-half && x <= h.pos.X+half &&
		y >= h.pos.Y-half && y <= h.pos.Y+half
}

// Create allocates the outline rectangle.
func (h *Home) Create(c canvas.Canvas) {
	h.rect = c.Create(canvas.Rect, tcell.ColorBrown)
}

// Update does nothing — home never moves.
func (h *Home) Update() {}

// Render syncs the rectangle to the home bounds.
func (h *Home) Render(c canvas.Canvas) {
	c.MoveTo(h.rect, h.pos, h.size/2, h.size/2)
}

// Delete releases the rectangle.
func (h *Home) Delete(c canvas.Canvas) {
	c.Delete(h.rect)
	h.rect = canvas.None
}
