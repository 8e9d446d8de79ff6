package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// DivePhase is one state of a submersible platform's cycle.
type DivePhase int

const (
	DiveSurface DivePhase = iota
	DiveDiving
	DiveSubmerged
	DiveRising
)

// String returns a human-readable phase name.
func (p DivePhase) String() string {
	switch p {
	case DiveSurface:
		return "surface"
	case DiveDiving:
		return "diving"
	case DiveSubmerged:
		return "submerged"
	case DiveRising:
		return "rising"
	default:
		return "unknown"
	}
}

// DiveState is the per-hazard cycle position: current phase and the
// milliseconds remaining in it.
type DiveState struct {
	Phase   DivePhase
	TimerMs float64
}

// phaseSpec is one row of the data-driven cycle table.
type phaseSpec struct {
	durationMs float64
	next       DivePhase
}

// DiveTable holds the configured phase durations and transition order:
// surface -> diving -> submerged -> rising -> surface.
type DiveTable struct {
	specs    [4]phaseSpec
	jitterMs float64
	graceMs  float64
}

// NewDiveTable builds the cycle table from configuration.
func NewDiveTable(cfg config.DiveConfig) *DiveTable {
	return &DiveTable{
		specs: [4]phaseSpec{
			DiveSurface:   {durationMs: cfg.SurfaceMs, next: DiveDiving},
			DiveDiving:    {durationMs: cfg.DivingMs, next: DiveSubmerged},
			DiveSubmerged: {durationMs: cfg.SubmergedMs, next: DiveRising},
			DiveRising:    {durationMs: cfg.RisingMs, next: DiveSurface},
		},
		jitterMs: cfg.JitterMs,
		graceMs:  cfg.GraceMs,
	}
}

// NewState returns a fresh dive state starting on the surface, with a
// randomized head start so same-lane platforms do not cycle in sync.
func (t *DiveTable) NewState(rng *rand.Rand) *DiveState {
	timer := t.specs[DiveSurface].durationMs
	if rng != nil {
		timer = timer * (0.25 + 0.75*rng.Float64())
	}
	return &DiveState{Phase: DiveSurface, TimerMs: timer}
}

// Advance counts the timer down by elapsed milliseconds and applies at
// most one phase transition. Leftover negative time is carried into the
// next phase's countdown, so a long stall still steps through the cycle
// one phase per frame rather than cascading.
func (t *DiveTable) Advance(s *DiveState, elapsedMs float64, rng *rand.Rand) {
	if s == nil {
		return
	}
	s.TimerMs -= elapsedMs
	if s.TimerMs > 0 {
		return
	}

	leftover := s.TimerMs // <= 0
	next := t.specs[s.Phase].next
	s.Phase = next
	s.TimerMs = t.specs[next].durationMs + leftover
	if next == DiveSurface && rng != nil {
		// Jitter only on surface re-entry, so platforms drift out of
		// sync over time.
		s.TimerMs += rng.Float64() * t.jitterMs
	}
}

// Safe reports whether the platform can be stood on. Only the submerged
// phase is unsafe; on level 1 a short grace window at either end of the
// submerged phase still counts as safe.
func (t *DiveTable) Safe(s *DiveState, level int) bool {
	if s == nil {
		return true
	}
	if s.Phase != DiveSubmerged {
		return true
	}
	if level == 1 {
		elapsedInPhase := t.specs[DiveSubmerged].durationMs - s.TimerMs
		if elapsedInPhase <= t.graceMs || s.TimerMs <= t.graceMs {
			return true
		}
	}
	return false
}

// Progress returns the fraction completed of the current phase, for
// rendering dive transitions. Clamped to [0, 1].
func (t *DiveTable) Progress(s *DiveState) float64 {
	if s == nil {
		return 0
	}
	d := t.specs[s.Phase].durationMs
	if d <= 0 {
		return 1
	}
	p := 1 - s.TimerMs/d
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
