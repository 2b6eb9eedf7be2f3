// Package geom provides the float64 vector math used by the simulation.
package geom

import "math"

// Vec is a point or displacement in world space.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec) float64 { return b.Sub(a).Len() }

// Heading returns the angle in radians from a toward b.
func Heading(a, b Vec) float64 { return math.Atan2(b.Y-a.Y, b.X-a.X) }

// Step returns the unit displacement for the given heading angle.
func Step(heading float64) Vec {
	return Vec{math.Cos(heading), math.Sin(heading)}
}

// Normalize returns v scaled to unit length. A zero vector is returned
// unchanged with ok=false so callers can skip degenerate movement.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 {
		return v, false
	}
	return Vec{v.X / l, v.Y / l}, true
}
