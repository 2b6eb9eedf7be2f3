package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/canvas"
	"emoji-chase/internal/geom"
)

// playerExtent is the half-extent of the player's drawn shape. Display
// only — the player is a point for containment and hit tests.
const playerExtent = 8

// Player is the controlled entity. It steers toward the active waypoint at
// constant speed and signals the win when it reaches home.
type Player struct {
	pos      geom.Vec
	speed    float64
	waypoint *Waypoint
	home     *Home
	referee  Referee
	shape    canvas.Handle
}

// NewPlayer creates a player at pos moving speed world units per tick.
func NewPlayer(pos geom.Vec, speed float64, waypoint *Waypoint, home *Home, referee Referee) (*Player, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("player speed must be positive, got %v", speed)
	}
	if waypoint == nil || home == nil || referee == nil {
		return nil, fmt.Errorf("player requires waypoint, home, and referee")
	}
	return &Player{pos: pos, speed: speed, waypoint: waypoint, home: home, referee: referee}, nil
}

// Pos returns the player's current position.
func (p *Player) Pos() geom.Vec { return p.pos }

// Speed returns the player's per-tick speed.
func (p *Player) Speed() float64 { return p.speed }

// Create allocates the player shape.
func (p *Player) Create(c canvas.Canvas) {
	p.shape = c.Create(canvas.Oval, tcell.ColorGreen)
}

// Update advances the player one tick: arrival at home wins and stops all
// further motion; otherwise the player steps toward the active waypoint,
// deactivating it once within one speed-step (snap arrival, so the player
// never oscillates around the target).
func (p *Player) Update() {
	if p.home.Contains(p.pos.X, p.pos.Y) {
		p.referee.Win()
		return
	}
	if !p.waypoint.Active() {
		return
	}
	heading := geom.Heading(p.pos, p.waypoint.Pos())
	p.pos = p.pos.Add(geom.Step(heading).Scale(p.speed))
	if geom.Dist(p.pos, p.waypoint.Pos()) < p.speed {
		p.waypoint.Deactivate()
	}
}

// Render syncs the player shape to its position.
func (p *Player) Render(c canvas.Canvas) {
	c.MoveTo(p.shape, p.pos, playerExtent, playerExtent)
}

// Delete releases the player shape.
func (p *Player) Delete(c canvas.Canvas) {
	c.Delete(p.shape)
	p.shape = canvas.None
}
