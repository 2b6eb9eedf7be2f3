package canvas

import (
	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/geom"
)

// Shape is the stored state of one canvas shape.
type Shape struct {
	Kind    ShapeKind
	Color   tcell.Color
	Center  geom.Vec
	HalfW   float64
	HalfH   float64
	Visible bool
	Z       int // draw order; higher draws later (on top)
}

// Memory is a Canvas that keeps all shape state in memory. It backs the
// terminal renderer's bookkeeping and stands in for a real surface in tests.
type Memory struct {
	width, height float64
	nextHandle    Handle
	nextZ         int
	shapes        map[Handle]*Shape
}

// NewMemory creates an empty Memory canvas with the given playfield size.
func NewMemory(width, height float64) *Memory {
	return &Memory{
		width:      width,
		height:     height,
		nextHandle: 1,
		shapes:     make(map[Handle]*Shape),
	}
}

// Create allocates a new visible shape at the origin.
func (m *Memory) Create(kind ShapeKind, color tcell.Color) Handle {
	h := m.nextHandle
	m.nextHandle++
	m.nextZ++
	m.shapes[h] = &Shape{Kind: kind, Color: color, Visible: true, Z: m.nextZ}
	return h
}

// MoveTo positions a shape's bounding box. Unknown handles are ignored.
func (m *Memory) MoveTo(h Handle, center geom.Vec, halfW, halfH float64) {
	if s := m.shapes[h]; s != nil {
		s.Center = center
		s.HalfW = halfW
		s.HalfH = halfH
	}
}

// SetColor changes a shape's color.
func (m *Memory) SetColor(h Handle, color tcell.Color) {
	if s := m.shapes[h]; s != nil {
		s.Color = color
	}
}

// SetVisible shows or hides a shape.
func (m *Memory) SetVisible(h Handle, visible bool) {
	if s := m.shapes[h]; s != nil {
		s.Visible = visible
	}
}

// Raise moves a shape above every other shape.
func (m *Memory) Raise(h Handle) {
	if s := m.shapes[h]; s != nil {
		m.nextZ++
		s.Z = m.nextZ
	}
}

// Delete releases a shape.
func (m *Memory) Delete(h Handle) {
	delete(m.shapes, h)
}

// Size reports the playfield extent.
func (m *Memory) Size() (w, h float64) { return m.width, m.height }

// Shape returns a copy of the stored shape state, or false if the handle
// is unknown. Used by the renderer and by tests.
func (m *Memory) Shape(h Handle) (Shape, bool) {
	s := m.shapes[h]
	if s == nil {
		return Shape{}, false
	}
	return *s, true
}

// Len reports how many shapes are currently allocated.
func (m *Memory) Len() int { return len(m.shapes) }

// Each calls fn for every allocated shape.
func (m *Memory) Each(fn func(Handle, Shape)) {
	for h, s := range m.shapes {
		fn(h, *s)
	}
}
