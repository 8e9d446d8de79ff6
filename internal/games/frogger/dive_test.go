package frogger

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

func testDiveTable() *DiveTable {
	return NewDiveTable(config.DiveConfig{
		SurfaceMs:   4000,
		DivingMs:    1500,
		SubmergedMs: 2500,
		RisingMs:    1500,
		JitterMs:    1500,
		GraceMs:     300,
	})
}

func TestDiveCycleOrder(t *testing.T) {
	table := testDiveTable()
	s := &DiveState{Phase: DiveSurface, TimerMs: 4000}

	want := []DivePhase{DiveDiving, DiveSubmerged, DiveRising, DiveSurface, DiveDiving}
	for i, phase := range want {
		// Drain the current phase exactly.
		table.Advance(s, s.TimerMs, nil)
		if s.Phase != phase {
			t.Fatalf("transition %d: phase = %v, want %v", i, s.Phase, phase)
		}
	}
}

func TestDiveNoTransitionWhileTimerPositive(t *testing.T) {
	table := testDiveTable()
	s := &DiveState{Phase: DiveSurface, TimerMs: 4000}

	table.Advance(s, 3999, nil)
	if s.Phase != DiveSurface {
		t.Errorf("phase = %v, want %v", s.Phase, DiveSurface)
	}
	if s.TimerMs != 1 {
		t.Errorf("timer = %f, want 1", s.TimerMs)
	}
}

func TestDiveUnderflowCarriesIntoNextPhase(t *testing.T) {
	table := testDiveTable()
	s := &DiveState{Phase: DiveSurface, TimerMs: 10}

	// 60ms against a 10ms remainder: one transition, 50ms deducted
	// from the next phase.
	table.Advance(s, 60, nil)

	if s.Phase != DiveDiving {
		t.Fatalf("phase = %v, want %v (exactly one transition)", s.Phase, DiveDiving)
	}
	if s.TimerMs != 1500-50 {
		t.Errorf("timer = %f, want %f", s.TimerMs, float64(1500-50))
	}
}

func TestDiveSingleTransitionPerAdvance(t *testing.T) {
	table := testDiveTable()
	s := &DiveState{Phase: DiveSurface, TimerMs: 10}

	// An absurdly long frame still advances at most one phase.
	table.Advance(s, 100000, nil)

	if s.Phase != DiveDiving {
		t.Errorf("phase = %v, want %v", s.Phase, DiveDiving)
	}
}

func TestDiveJitterOnlyOnSurfaceReentry(t *testing.T) {
	table := testDiveTable()
	rng := rand.New(rand.NewSource(1))

	s := &DiveState{Phase: DiveDiving, TimerMs: 5}
	table.Advance(s, 5, rng)
	if s.Phase != DiveSubmerged || s.TimerMs != 2500 {
		t.Errorf("non-surface transition should be exact: phase=%v timer=%f", s.Phase, s.TimerMs)
	}

	s = &DiveState{Phase: DiveRising, TimerMs: 5}
	table.Advance(s, 5, rng)
	if s.Phase != DiveSurface {
		t.Fatalf("phase = %v, want %v", s.Phase, DiveSurface)
	}
	if s.TimerMs < 4000 || s.TimerMs > 4000+1500 {
		t.Errorf("surface re-entry timer = %f, want within [4000, 5500]", s.TimerMs)
	}
}

func TestDiveSafety(t *testing.T) {
	table := testDiveTable()

	tests := []struct {
		name  string
		state *DiveState
		level int
		want  bool
	}{
		{"nil state is solid ground", nil, 1, true},
		{"surface", &DiveState{Phase: DiveSurface, TimerMs: 100}, 2, true},
		{"diving", &DiveState{Phase: DiveDiving, TimerMs: 100}, 2, true},
		{"rising", &DiveState{Phase: DiveRising, TimerMs: 100}, 2, true},
		{"submerged", &DiveState{Phase: DiveSubmerged, TimerMs: 1000}, 2, false},
		{"submerged level 1 mid-phase", &DiveState{Phase: DiveSubmerged, TimerMs: 1000}, 1, false},
		{"submerged level 1 just entered", &DiveState{Phase: DiveSubmerged, TimerMs: 2400}, 1, true},
		{"submerged level 1 about to rise", &DiveState{Phase: DiveSubmerged, TimerMs: 200}, 1, true},
		{"submerged level 2 just entered", &DiveState{Phase: DiveSubmerged, TimerMs: 2400}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Safe(tt.state, tt.level); got != tt.want {
				t.Errorf("Safe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiveNewStateHeadStart(t *testing.T) {
	table := testDiveTable()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		s := table.NewState(rng)
		if s.Phase != DiveSurface {
			t.Fatalf("fresh state phase = %v, want %v", s.Phase, DiveSurface)
		}
		if s.TimerMs < 1000 || s.TimerMs > 4000 {
			t.Errorf("head start timer = %f, want within [1000, 4000]", s.TimerMs)
		}
	}
}
