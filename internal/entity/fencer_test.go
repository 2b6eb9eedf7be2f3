package entity

import (
	"testing"

	"emoji-chase/internal/geom"
)

func newTestFencer(t *testing.T, speed float64) (*Fencer, *Home) {
	t.Helper()
	home, err := NewHome(geom.Vec{X: 300, Y: 300}, 20)
	if err != nil {
		t.Fatalf("NewHome: %v", err)
	}
	p, _, ref := stillPlayer(t, geom.Vec{X: 5000, Y: 5000}, 5)
	corner := geom.Vec{X: home.Pos().X - home.Size()/2, Y: home.Pos().Y - home.Size()/2}
	f, err := NewFencer(corner, 10, testColor, speed, home, p, ref)
	if err != nil {
		t.Fatalf("NewFencer: %v", err)
	}
	return f, home
}

// phaseOrder runs the fencer through one full patrol cycle and returns the
// distinct phases in the order they were entered.
func phaseOrder(f *Fencer, maxTicks int) []PatrolPhase {
	phases := []PatrolPhase{f.Phase()}
	for i := 0; i < maxTicks; i++ {
		f.Update()
		if cur := f.Phase(); cur != phases[len(phases)-1] {
			phases = append(phases, cur)
		}
		if len(phases) == 5 {
			break
		}
	}
	return phases
}

func TestFencerCyclesWithoutSkippingPhases(t *testing.T) {
	want := []PatrolPhase{PatrolRight, PatrolDown, PatrolLeft, PatrolUp, PatrolRight}

	for _, speed := range []float64{1, 3, 4, 5} {
		f, _ := newTestFencer(t, speed)
		got := phaseOrder(f, 500)
		if len(got) != len(want) {
			t.Fatalf("speed %v: expected full cycle, got %v", speed, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("speed %v: phase %d = %v, want %v", speed, i, got[i], want[i])
			}
		}
	}
}

func TestFencerReturnsToStartingCorner(t *testing.T) {
	// Speed 5 divides the 20-unit side evenly, so the patrol is exact.
	f, home := newTestFencer(t, 5)
	start := f.Pos()

	// 4 moves + 1 transition tick per side.
	for i := 0; i < 20; i++ {
		f.Update()
	}
	if f.Phase() != PatrolRight {
		t.Fatalf("expected to be back in the rightward phase, got %v", f.Phase())
	}
	if f.Pos() != start {
		t.Fatalf("expected to return to %+v, got %+v", start, f.Pos())
	}
	_ = home
}

func TestFencerHitTestRunsInEveryPhase(t *testing.T) {
	home, err := NewHome(geom.Vec{X: 300, Y: 300}, 20)
	if err != nil {
		t.Fatalf("NewHome: %v", err)
	}
	// Park the player right on the fencer's path.
	p, _, ref := stillPlayer(t, geom.Vec{X: 300, Y: 290}, 5)
	f, err := NewFencer(geom.Vec{X: 290, Y: 290}, 10, testColor, 5, home, p, ref)
	if err != nil {
		t.Fatalf("NewFencer: %v", err)
	}

	for i := 0; i < 4 && ref.losses == 0; i++ {
		f.Update()
	}
	if ref.losses == 0 {
		t.Fatal("fencer should have hit the player on its path")
	}
}
