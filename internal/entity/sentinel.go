package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/canvas"
	"emoji-chase/internal/geom"
)

// Sentinel sits still and watches. It alerts when the player comes within
// its detection radius and calms down again once the player leaves. The
// alert only changes the sentinel's color; its hit test runs every tick
// regardless of state.
type Sentinel struct {
	Enemy
	radius     float64
	alerted    bool
	calmColor  tcell.Color
	alertColor tcell.Color
}

// NewSentinel creates a sentinel with the given detection radius. calm and
// alert are the colors shown in the two detection states.
func NewSentinel(pos geom.Vec, size float64, calm, alert tcell.Color, radius float64,
	player *Player, referee Referee) (*Sentinel, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sentinel detection radius must be positive, got %v", radius)
	}
	base, err := newEnemy(pos, size, calm, player, referee)
	if err != nil {
		return nil, err
	}
	return &Sentinel{Enemy: base, radius: radius, calmColor: calm, alertColor: alert}, nil
}

// Alerted reports whether the sentinel currently detects the player.
func (s *Sentinel) Alerted() bool { return s.alerted }

// Update flips the detection state: alerted while the player is strictly
// within the radius, dormant at or beyond it. No motion.
func (s *Sentinel) Update() {
	d := geom.Dist(s.player.Pos(), s.pos)
	if !s.alerted && d < s.radius {
		s.alerted = true
	} else if s.alerted && d >= s.radius {
		s.alerted = false
	}
	s.checkHit()
}

// Render recolors the shape to match the detection state, then syncs
// position like any enemy.
func (s *Sentinel) Render(c canvas.Canvas) {
	if s.alerted {
		c.SetColor(s.shape, s.alertColor)
	} else {
		c.SetColor(s.shape, s.calmColor)
	}
	s.Enemy.Render(c)
}
