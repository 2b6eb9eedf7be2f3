package game

import (
	"math/rand"
	"testing"

	"emoji-chase/internal/arena"
	"emoji-chase/internal/canvas"
	"emoji-chase/internal/entity"
	"emoji-chase/internal/geom"
	"emoji-chase/internal/sched"
)

type probeElement struct{ created bool }

func (p *probeElement) Create(canvas.Canvas) { p.created = true }
func (p *probeElement) Update()              {}
func (p *probeElement) Render(canvas.Canvas) {}
func (p *probeElement) Delete(canvas.Canvas) {}

func TestFieldPosStaysInSpawnRect(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		pos := fieldPos(rng)
		if pos.X < 200 || pos.X >= 600 {
			t.Fatalf("spawn x = %v, want [200, 600)", pos.X)
		}
		if pos.Y < 100 || pos.Y >= 500 {
			t.Fatalf("spawn y = %v, want [100, 500)", pos.Y)
		}
	}
}

func TestHomeCornerIsTopLeft(t *testing.T) {
	home, err := entity.NewHome(geom.Vec{X: 300, Y: 300}, 20)
	if err != nil {
		t.Fatalf("NewHome: %v", err)
	}
	if got := homeCorner(home); got != (geom.Vec{X: 290, Y: 290}) {
		t.Fatalf("homeCorner = %+v, want (290, 290)", got)
	}
}

func TestReferenceScheduleOrdering(t *testing.T) {
	waves := ReferenceSchedule(1)
	if len(waves) != 4 {
		t.Fatalf("reference schedule has %d waves, want 4", len(waves))
	}
	for i, w := range waves {
		if w.Batch == nil {
			t.Fatalf("wave %d has no batch", i)
		}
		if i > 0 && w.Delay <= waves[i-1].Delay {
			t.Fatalf("wave %d delay %v not after %v", i, w.Delay, waves[i-1].Delay)
		}
	}
}

func TestGeneratorDefaultsToReferenceSchedule(t *testing.T) {
	gen := NewGenerator(2, nil)
	if gen.Level() != 2 {
		t.Fatalf("level = %d, want 2", gen.Level())
	}
	g := newTestGame(t, Config{Schedule: []Wave{}})
	q := &sched.Queue{}
	gen.Schedule(g, q)
	if got := q.Pending(); got != 4 {
		t.Fatalf("scheduled %d waves, want 4", got)
	}
}

func TestBatchesSpawnExpectedCounts(t *testing.T) {
	cases := []struct {
		name  string
		batch Batch
		count int
	}{
		{"walkers", WalkerBatch(5), 5},
		{"chasers", ChaserBatch(4), 4},
		{"sentinels", SentinelBatch(5), 5},
		{"fencers", FencerBatch(1, 3, 4), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, Config{Seed: 1, Schedule: []Wave{}})
			before := g.Elements()
			tc.batch(g, rand.New(rand.NewSource(9)))
			if got := g.Elements() - before; got != tc.count {
				t.Fatalf("batch added %d elements, want %d", got, tc.count)
			}
		})
	}
}

func TestAddElementIgnoredWhenTerminal(t *testing.T) {
	g := newTestGame(t, Config{Seed: 1, Schedule: []Wave{}})
	g.Lose()

	probe := &probeElement{}
	if id := g.AddElement(probe); id != arena.NilID {
		t.Fatalf("AddElement on a terminal game returned %v", id)
	}
	if probe.created {
		t.Fatal("element should not be created on a terminal game")
	}
	if g.Elements() != 3 {
		t.Fatalf("elements = %d, want 3", g.Elements())
	}
}
