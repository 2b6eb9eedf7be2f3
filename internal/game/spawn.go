package game

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"emoji-chase/internal/entity"
	"emoji-chase/internal/geom"
	"emoji-chase/internal/sched"
)

// Enemy parameters shared by every wave.
const (
	walkerSize  = 20
	chaserSize  = 20
	fencerSize  = 10
	sentinelSize = 50

	chaserStep     = 1.2
	sentinelRadius = 100
)

const (
	walkerColor   = tcell.ColorBlue
	chaserColor   = tcell.ColorRed
	fencerColor   = tcell.ColorYellow
	sentinelCalm  = tcell.ColorWhite
	sentinelAlert = tcell.ColorRed
)

// Batch is a batch-spawn action: it instantiates one wave's worth of
// enemies against the coordinator using the given randomness source.
type Batch func(g *Game, rng *rand.Rand)

// Wave pairs a delay from game start with the batch that fires then.
type Wave struct {
	Delay time.Duration
	Batch Batch
}

// Generator schedules timed enemy waves. It holds no state beyond the
// schedule; every entry fires exactly once.
type Generator struct {
	level int
	waves []Wave
}

// NewGenerator builds a generator for the given level. A nil schedule
// selects ReferenceSchedule(level).
func NewGenerator(level int, waves []Wave) *Generator {
	if waves == nil {
		waves = ReferenceSchedule(level)
	}
	return &Generator{level: level, waves: waves}
}

// Level returns the generator's level number.
func (gen *Generator) Level() int { return gen.level }

// Schedule registers every wave on the queue. Waves with equal delays fire
// in schedule order.
func (gen *Generator) Schedule(g *Game, q *sched.Queue) {
	for _, w := range gen.waves {
		w := w
		q.After(w.Delay, func() { w.Batch(g, g.rng) })
	}
}

// ReferenceSchedule is the standard wave table. The level is accepted so a
// future table can diverge per level; for now every level uses the same
// counts and delays.
func ReferenceSchedule(level int) []Wave {
	_ = level
	return []Wave{
		{Delay: 1000 * time.Millisecond, Batch: WalkerBatch(5)},
		{Delay: 1500 * time.Millisecond, Batch: ChaserBatch(4)},
		{Delay: 3000 * time.Millisecond, Batch: SentinelBatch(5)},
		{Delay: 3500 * time.Millisecond, Batch: FencerBatch(1, 3, 4)},
	}
}

// fieldPos picks a uniform random placement inside the spawn
// sub-rectangle of the playfield.
func fieldPos(rng *rand.Rand) geom.Vec {
	return geom.Vec{
		X: 200 + rng.Float64()*400,
		Y: 100 + rng.Float64()*400,
	}
}

// homeCorner is the fencers' fixed placement: the top-left corner of the
// home zone.
func homeCorner(h *entity.Home) geom.Vec {
	return geom.Vec{
		X: h.Pos().X - h.Size()/2,
		Y: h.Pos().Y - h.Size()/2,
	}
}

// WalkerBatch spawns n random walkers at random placements, each with a
// per-instance speed uniform in [6, 10].
func WalkerBatch(n int) Batch {
	return func(g *Game, rng *rand.Rand) {
		w, h := g.canvas.Size()
		for i := 0; i < n; i++ {
			speed := float64(6 + rng.Intn(5))
			e, err := entity.NewRandomWalker(fieldPos(rng), walkerSize, walkerColor, speed, w, h, g.player, g)
			if err != nil {
				continue
			}
			g.AddElement(e)
		}
	}
}

// ChaserBatch spawns n chasers at random placements.
func ChaserBatch(n int) Batch {
	return func(g *Game, rng *rand.Rand) {
		for i := 0; i < n; i++ {
			e, err := entity.NewChaser(fieldPos(rng), chaserSize, chaserColor, chaserStep, g.player, g)
			if err != nil {
				continue
			}
			g.AddElement(e)
		}
	}
}

// SentinelBatch spawns n sentinels at random placements.
func SentinelBatch(n int) Batch {
	return func(g *Game, rng *rand.Rand) {
		for i := 0; i < n; i++ {
			e, err := entity.NewSentinel(fieldPos(rng), sentinelSize, sentinelCalm, sentinelAlert, sentinelRadius, g.player, g)
			if err != nil {
				continue
			}
			g.AddElement(e)
		}
	}
}

// FencerBatch spawns one fencer per speed, all starting at home's corner.
// Different speeds desynchronize the patrols.
func FencerBatch(speeds ...float64) Batch {
	return func(g *Game, rng *rand.Rand) {
		for _, speed := range speeds {
			e, err := entity.NewFencer(homeCorner(g.home), fencerSize, fencerColor, speed, g.home, g.player, g)
			if err != nil {
				continue
			}
			g.AddElement(e)
		}
	}
}
