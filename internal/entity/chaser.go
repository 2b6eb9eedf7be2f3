package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/geom"
)

// Chaser pursues the player in a straight line, advancing a fixed step
// along the normalized direction toward the player every tick. No discrete
// states — continuous pursuit.
type Chaser struct {
	Enemy
	step float64
}

// NewChaser creates a chaser advancing step units per tick.
func NewChaser(pos geom.Vec, size float64, color tcell.Color, step float64,
	player *Player, referee Referee) (*Chaser, error) {
	if step <= 0 {
		return nil, fmt.Errorf("chaser step must be positive, got %v", step)
	}
	base, err := newEnemy(pos, size, color, player, referee)
	if err != nil {
		return nil, err
	}
	return &Chaser{Enemy: base, step: step}, nil
}

// Update steps toward the player and runs the hit test. When the chaser
// and player coincide the direction is degenerate and movement is skipped
// for the tick.
func (c *Chaser) Update() {
	if dir, ok := c.player.Pos().Sub(c.pos).Normalize(); ok {
		c.pos = c.pos.Add(dir.Scale(c.step))
	}
	c.checkHit()
}
