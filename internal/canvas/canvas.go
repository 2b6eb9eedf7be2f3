// Package canvas defines the drawing-surface capability the simulation
// draws through. Shapes are addressed by opaque handles; the simulation
// never touches pixels or terminal cells directly.
package canvas

import (
	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/geom"
)

// Handle identifies one shape on a Canvas.
type Handle uint64

// None is the zero Handle — no valid shape has this handle.
const None Handle = 0

// ShapeKind selects the primitive a shape is drawn as.
type ShapeKind uint8

const (
	Rect  ShapeKind = iota // axis-aligned rectangle outline
	Oval                   // filled oval
	Cross                  // two crossed diagonal lines
)

// Canvas is implemented by every drawing surface the game runs on.
type Canvas interface {
	// Create allocates a shape of the given kind and color at the origin
	// with zero extent, initially visible.
	Create(kind ShapeKind, color tcell.Color) Handle

	// MoveTo positions a shape's bounding box by center and half extents.
	MoveTo(h Handle, center geom.Vec, halfW, halfH float64)

	// SetColor changes a shape's fill color.
	SetColor(h Handle, color tcell.Color)

	// SetVisible shows or hides a shape without releasing it.
	SetVisible(h Handle, visible bool)

	// Raise moves a shape above all others in draw order.
	Raise(h Handle)

	// Delete releases a shape. The handle is dead afterwards.
	Delete(h Handle)

	// Size reports the playfield extent in world units.
	Size() (w, h float64)
}
