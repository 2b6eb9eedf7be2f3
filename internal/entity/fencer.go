package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/geom"
)

// PatrolPhase is a fencer's position in its four-phase cycle.
type PatrolPhase uint8

const (
	PatrolRight PatrolPhase = iota
	PatrolDown
	PatrolLeft
	PatrolUp
)

// Fencer walks the perimeter of the square bounding the home zone in a
// fixed right→down→left→up cycle. The bounds are derived from the home
// every tick; home is immutable, so the patrol square is static. Instances
// at different speeds desynchronize naturally since only phase duration
// depends on speed.
type Fencer struct {
	Enemy
	speed float64
	phase PatrolPhase
	home  *Home
}

// NewFencer creates a fencer patrolling home's bounds at speed units per
// tick, starting in the rightward phase.
func NewFencer(pos geom.Vec, size float64, color tcell.Color, speed float64,
	home *Home, player *Player, referee Referee) (*Fencer, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("fencer speed must be positive, got %v", speed)
	}
	if home == nil {
		return nil, fmt.Errorf("fencer requires a home to patrol")
	}
	base, err := newEnemy(pos, size, color, player, referee)
	if err != nil {
		return nil, err
	}
	return &Fencer{Enemy: base, speed: speed, home: home}, nil
}

// Phase returns the current patrol phase.
func (f *Fencer) Phase() PatrolPhase { return f.phase }

// Update advances one patrol step. Each phase moves along a single axis
// until the relevant home bound is reached, then yields to the next phase
// without moving that tick.
func (f *Fencer) Update() {
	half := f.home.Size() / 2
	hp := f.home.Pos()
	switch f.phase {
	case PatrolRight:
		if f.pos.X < hp.X+half {
			f.pos.X += f.speed
		} else {
			f.phase = PatrolDown
		}
	case PatrolDown:
		if f.pos.Y < hp.Y+half {
			f.pos.Y += f.speed
		} else {
			f.phase = PatrolLeft
		}
	case PatrolLeft:
		if f.pos.X > hp.X-half {
			f.pos.X -= f.speed
		} else {
			f.phase = PatrolUp
		}
	case PatrolUp:
		if f.pos.Y > hp.Y-half {
			f.pos.Y -= f.speed
		} else {
			f.phase = PatrolRight
		}
	}
	f.checkHit()
}
