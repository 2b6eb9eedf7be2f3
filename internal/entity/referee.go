// Package entity implements the simulated game objects: the player's
// waypoint and home, the player itself, and the four enemy variants. Every
// type implements arena.Element; cross-references between entities are
// read-only pointers injected at construction, never ownership.
package entity

// Referee receives terminal-state signals raised during an update pass.
// The game coordinator implements it; the transition is one-way and only
// the first signal has any effect.
type Referee interface {
	Win()
	Lose()
}
