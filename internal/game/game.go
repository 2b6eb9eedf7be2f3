// Package game owns the simulation: it registers every element, drives
// the per-tick update/render dispatch, schedules enemy waves, and tracks
// the terminal win/lose state.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"emoji-chase/internal/arena"
	"emoji-chase/internal/canvas"
	"emoji-chase/internal/entity"
	"emoji-chase/internal/geom"
	"emoji-chase/internal/sched"
)

// World extent in world units. The canvas maps these onto whatever surface
// it draws to.
const (
	WorldWidth  = 1000
	WorldHeight = 600
)

// DefaultTickInterval is the wall-clock period between simulation ticks.
const DefaultTickInterval = 50 * time.Millisecond

// defaultPlayerSpeed is the player's per-tick step in world units.
const defaultPlayerSpeed = 5

// homeSize is the square extent of the home zone.
const homeSize = 20

// State is the game's terminal-state machine.
type State uint8

const (
	StateRunning State = iota
	StateWon
	StateLost
)

// Config carries the knobs for one game.
type Config struct {
	Level        int           // level number, 0 means 1
	PlayerSpeed  float64       // world units per tick, 0 means the default
	TickInterval time.Duration // 0 means DefaultTickInterval
	Seed         int64         // rng seed, 0 means time-based
	Schedule     []Wave        // enemy waves, nil means ReferenceSchedule(level)
}

// Game is the coordinator. It exclusively owns the lifetime of every
// element; elements hold read-only references to each other.
type Game struct {
	canvas       canvas.Canvas
	arena        *arena.Arena
	timers       *sched.Queue
	rng          *rand.Rand
	level        int
	tickInterval time.Duration
	state        State

	waypoint *entity.Waypoint
	home     *entity.Home
	player   *entity.Player
}

// New builds a game on the given canvas and registers the waypoint, home,
// and player, in that order. Registration order is dispatch order, which
// keeps the player's update ahead of every enemy's reads within a tick.
func New(c canvas.Canvas, cfg Config) (*Game, error) {
	if cfg.Level == 0 {
		cfg.Level = 1
	}
	if cfg.PlayerSpeed == 0 {
		cfg.PlayerSpeed = defaultPlayerSpeed
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := &Game{
		canvas:       c,
		arena:        arena.New(c),
		timers:       &sched.Queue{},
		rng:          rand.New(rand.NewSource(cfg.Seed)),
		level:        cfg.Level,
		tickInterval: cfg.TickInterval,
		state:        StateRunning,
	}

	w, h := c.Size()
	g.waypoint = entity.NewWaypoint()

	home, err := entity.NewHome(geom.Vec{X: w - 100, Y: h / 2}, homeSize)
	if err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}
	g.home = home

	player, err := entity.NewPlayer(geom.Vec{X: 50, Y: h / 2}, cfg.PlayerSpeed, g.waypoint, g.home, g)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	g.player = player

	g.arena.Add(g.waypoint)
	g.arena.Add(g.home)
	g.arena.Add(g.player)

	NewGenerator(cfg.Level, cfg.Schedule).Schedule(g, g.timers)
	return g, nil
}

// Tick advances the simulation by one step: due enemy waves fire first,
// then every element updates, then every element renders, all in
// registration order. Once the game is terminal, Tick is a no-op — pending
// waves simply never fire.
func (g *Game) Tick() {
	if g.state != StateRunning {
		return
	}
	g.timers.Advance(g.tickInterval)
	g.arena.Update()
	g.arena.Render()
}

// PointerClick points the waypoint at world coordinates (x, y).
func (g *Game) PointerClick(x, y float64) {
	g.waypoint.Activate(x, y)
}

// AddElement registers an element for per-tick dispatch. Registration on a
// terminal game is ignored.
func (g *Game) AddElement(e arena.Element) arena.ID {
	if g.state != StateRunning {
		return arena.NilID
	}
	return g.arena.Add(e)
}

// Win transitions the game to won. The transition is one-way; signals
// after the first terminal transition are ignored.
func (g *Game) Win() {
	if g.state == StateRunning {
		g.state = StateWon
	}
}

// Lose transitions the game to lost, one-way like Win.
func (g *Game) Lose() {
	if g.state == StateRunning {
		g.state = StateLost
	}
}

// State returns the current terminal-state machine value.
func (g *Game) State() State { return g.state }

// IsRunning reports whether the simulation still accepts ticks.
func (g *Game) IsRunning() bool { return g.state == StateRunning }

// IsWon reports whether the player reached home.
func (g *Game) IsWon() bool { return g.state == StateWon }

// IsLost reports whether an enemy caught the player.
func (g *Game) IsLost() bool { return g.state == StateLost }

// Level returns the level number the game was started with.
func (g *Game) Level() int { return g.level }

// Player returns the player entity.
func (g *Game) Player() *entity.Player { return g.player }

// Home returns the home zone.
func (g *Game) Home() *entity.Home { return g.home }

// Waypoint returns the player's navigation target.
func (g *Game) Waypoint() *entity.Waypoint { return g.waypoint }

// Elements reports how many elements are registered.
func (g *Game) Elements() int { return g.arena.Len() }

// PendingWaves reports how many scheduled waves have not fired yet.
func (g *Game) PendingWaves() int { return g.timers.Pending() }
