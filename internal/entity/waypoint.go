package entity

import (
	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/canvas"
	"emoji-chase/internal/geom"
)

// waypointExtent is the half-extent of the drawn X marker.
const waypointExtent = 10

// Waypoint holds the player's current navigation target. While inactive it
// has no effect on player motion and its marker is hidden.
type Waypoint struct {
	pos    geom.Vec
	active bool
	mark   canvas.Handle
}

// NewWaypoint creates an inactive waypoint at the origin.
func NewWaypoint() *Waypoint {
	return &Waypoint{}
}

// Activate points the waypoint at (x, y) and makes it active. Any finite
// coordinate is accepted; a prior target is simply overwritten.
func (w *Waypoint) Activate(x, y float64) {
	w.pos = geom.Vec{X: x, Y: y}
	w.active = true
}

// Deactivate marks the waypoint inactive.
func (w *Waypoint) Deactivate() { w.active = false }

// Active reports whether the waypoint currently steers the player.
func (w *Waypoint) Active() bool { return w.active }

// Pos returns the waypoint's target position.
func (w *Waypoint) Pos() geom.Vec { return w.pos }

// Create allocates the X marker, hidden until the first activation.
func (w *Waypoint) Create(c canvas.Canvas) {
	w.mark = c.Create(canvas.Cross, tcell.ColorGreen)
	c.SetVisible(w.mark, false)
}

// Update does nothing — a waypoint only changes through Activate/Deactivate.
func (w *Waypoint) Update() {}

// Render shows the marker at the target while active, raised above every
// other shape, and hides it while inactive.
func (w *Waypoint) Render(c canvas.Canvas) {
	if w.active {
		c.SetVisible(w.mark, true)
		c.Raise(w.mark)
		c.MoveTo(w.mark, w.pos, waypointExtent, waypointExtent)
	} else {
		c.SetVisible(w.mark, false)
	}
}

// Delete releases the marker.
func (w *Waypoint) Delete(c canvas.Canvas) {
	c.Delete(w.mark)
	w.mark = canvas.None
}
