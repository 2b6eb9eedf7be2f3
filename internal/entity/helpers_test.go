package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/geom"
)

// fakeReferee counts terminal-state signals.
type fakeReferee struct {
	wins, losses int
}

func (r *fakeReferee) Win()  { r.wins++ }
func (r *fakeReferee) Lose() { r.losses++ }

// farHome returns a home nowhere near the action so player updates never
// trigger a win by accident.
func farHome(t *testing.T) *Home {
	t.Helper()
	h, err := NewHome(geom.Vec{X: 5000, Y: 5000}, 20)
	if err != nil {
		t.Fatalf("NewHome: %v", err)
	}
	return h
}

// stillPlayer returns a player parked at pos with an inactive waypoint,
// plus the waypoint for steering and the referee for assertions.
func stillPlayer(t *testing.T, pos geom.Vec, speed float64) (*Player, *Waypoint, *fakeReferee) {
	t.Helper()
	wp := NewWaypoint()
	ref := &fakeReferee{}
	p, err := NewPlayer(pos, speed, wp, farHome(t), ref)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p, wp, ref
}

var testColor = tcell.ColorBlue
