package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/canvas"
	"emoji-chase/internal/geom"
)

// Enemy holds the size, color, and references shared by every enemy
// variant. Size and color are immutable after construction; position is
// advanced each tick by the owning variant's motion rule.
type Enemy struct {
	pos     geom.Vec
	size    float64
	color   tcell.Color
	player  *Player
	referee Referee
	shape   canvas.Handle
}

func newEnemy(pos geom.Vec, size float64, color tcell.Color, player *Player, referee Referee) (Enemy, error) {
	if size <= 0 {
		return Enemy{}, fmt.Errorf("enemy size must be positive, got %v", size)
	}
	if player == nil || referee == nil {
		return Enemy{}, fmt.Errorf("enemy requires player and referee")
	}
	return Enemy{pos: pos, size: size, color: color, player: player, referee: referee}, nil
}

// Pos returns the enemy's current position.
func (e *Enemy) Pos() geom.Vec { return e.pos }

// Size returns the square hit-box extent.
func (e *Enemy) Size() float64 { return e.size }

// HitsPlayer reports whether the player's position lies strictly inside
// the enemy's square hit-box. Boundary-exact points do not hit.
func (e *Enemy) HitsPlayer() bool {
	p := e.player.Pos()
	half := e.size / 2
	return p.X > e.pos.X-half && p.X < e.pos.X+half &&
		p.Y > e.pos.Y-half && p.Y < e.pos.Y+half
}

// checkHit signals the loss if the enemy currently overlaps the player.
// Every variant calls this at the end of its update.
func (e *Enemy) checkHit() {
	if e.HitsPlayer() {
		e.referee.Lose()
	}
}

// Create allocates the enemy's oval.
func (e *Enemy) Create(c canvas.Canvas) {
	e.shape = c.Create(canvas.Oval, e.color)
}

// Render syncs the oval to the enemy's position.
func (e *Enemy) Render(c canvas.Canvas) {
	c.MoveTo(e.shape, e.pos, e.size/2, e.size/2)
}

// Delete releases the oval.
func (e *Enemy) Delete(c canvas.Canvas) {
	c.Delete(e.shape)
	e.shape = canvas.None
}
