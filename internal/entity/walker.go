package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/geom"
)

// HDir is a walker's horizontal direction state.
type HDir uint8

const (
	DirRight HDir = iota // x increasing
	DirLeft              // x decreasing
)

// VDir is a walker's vertical direction state.
type VDir uint8

const (
	DirUp   VDir = iota // y decreasing (toward the viewport top)
	DirDown             // y increasing
)

// RandomWalker bounces diagonally around the playfield. Each axis is its
// own two-state machine that flips when the position crosses the playfield
// bound on that axis. On top of the bounce, every tick adds a constant
// +1/+1 drift; the compound motion is deliberate (see DESIGN.md).
type RandomWalker struct {
	Enemy
	speed  float64
	hdir   HDir
	vdir   VDir
	width  float64
	height float64
}

// NewRandomWalker creates a walker moving speed units per tick on each
// axis, bouncing inside the width×height playfield. Initial motion is
// right and up.
func NewRandomWalker(pos geom.Vec, size float64, color tcell.Color, speed float64,
	width, height float64, player *Player, referee Referee) (*RandomWalker, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("walker speed must be positive, got %v", speed)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("walker playfield must be positive, got %vx%v", width, height)
	}
	base, err := newEnemy(pos, size, color, player, referee)
	if err != nil {
		return nil, err
	}
	return &RandomWalker{Enemy: base, speed: speed, width: width, height: height}, nil
}

// HorizontalDir returns the current horizontal state.
func (w *RandomWalker) HorizontalDir() HDir { return w.hdir }

// VerticalDir returns the current vertical state.
func (w *RandomWalker) VerticalDir() VDir { return w.vdir }

// Update applies the constant drift, then one bounce step per axis, then
// the hit test.
func (w *RandomWalker) Update() {
	w.pos = w.pos.Add(geom.Vec{X: 1, Y: 1})
	w.stepHorizontal()
	w.stepVertical()
	w.checkHit()
}

func (w *RandomWalker) stepHorizontal() {
	switch w.hdir {
	case DirRight:
		w.pos.X += w.speed
		if w.pos.X > w.width {
			w.hdir = DirLeft
		}
	case DirLeft:
		w.pos.X -= w.speed
		if w.pos.X < 0 {
			w.hdir = DirRight
		}
	}
}

func (w *RandomWalker) stepVertical() {
	switch w.vdir {
	case DirUp:
		w.pos.Y -= w.speed
		if w.pos.Y < 0 {
			w.vdir = DirDown
		}
	case DirDown:
		w.pos.Y += w.speed
		if w.pos.Y > w.height {
			w.vdir = DirUp
		}
	}
}
