package frogger

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// laneFactory builds and respawns the hazard set for each lane,
// enforcing the spacing rules per level.
type laneFactory struct {
	cfg        config.FroggerConfig
	board      *Board
	dive       *DiveTable
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

func newLaneFactory(cfg config.FroggerConfig, board *Board, dive *DiveTable, diff *config.DifficultyManager, rng *rand.Rand) *laneFactory {
	return &laneFactory{
		cfg:        cfg,
		board:      board,
		dive:       dive,
		difficulty: diff,
		rng:        rng,
	}
}

// minRoadGap returns the road minimum gap for the given level.
// Level 1 is widened to guarantee learnable openings; later levels
// narrow toward a level-independent floor.
func (f *laneFactory) minRoadGap(level int) float64 {
	gap := f.cfg.Hazards.RoadBaseGap
	if level <= 1 {
		gap += f.cfg.Hazards.RoadLevelBonus
	} else {
		gap -= float64(level-1) * f.cfg.Hazards.RoadGapShrink
	}
	gap -= f.difficulty.GapReduction(level, 0)
	// A collapsed or negative gap would produce guaranteed-unfair
	// overlaps; clamp to the floor instead.
	if gap < f.cfg.Hazards.RoadGapFloor {
		gap = f.cfg.Hazards.RoadGapFloor
	}
	return gap
}

// requiredGap returns the minimum spacing between hazards in a lane.
// Water platforms use a fixed tile-aligned gap; the gap-exempt road
// kind is allowed a fraction of the full road gap.
func (f *laneFactory) requiredGap(spec LaneSpec, level int) float64 {
	if spec.Type == LaneWater {
		return float64(f.cfg.Hazards.WaterGapTiles * f.board.TileSize)
	}
	gap := f.minRoadGap(level)
	if spec.Kind.Spec().GapExempt {
		gap *= f.cfg.Hazards.FastKindGapFrac
	}
	return gap
}

// hazardSpeed returns the final per-hazard speed scalar: lane base
// speed times the per-kind multiplier times the per-level scale.
func (f *laneFactory) hazardSpeed(spec LaneSpec, level int) float64 {
	return spec.Speed * spec.Kind.Spec().SpeedMult * f.difficulty.SpeedScale(level, 0)
}

// Populate fills a lane with its initial hazard set for the level.
// Enough hazards are created to cover the visible width plus the wrap
// buffer on both sides at the required spacing; if the spacing would
// leave holes, the object count widens rather than the gap shrinking.
func (f *laneFactory) Populate(lane *Lane, level int) {
	lane.Hazards = lane.Hazards[:0]

	spec := lane.Spec
	if spec.Kind == KindNone || (spec.Type != LaneRoad && spec.Type != LaneWater) {
		return
	}

	ks := spec.Kind.Spec()
	gap := f.requiredGap(spec, level)
	buf := float64(f.cfg.Board.WrapBuffer)
	span := f.board.WidthPx + 2*buf
	pitch := ks.Width + gap

	count := int(math.Ceil(span / pitch))
	if count < 1 {
		count = 1
	}

	// Random phase staggers lanes of the same kind so they do not
	// visually synchronize.
	phase := f.rng.Float64() * pitch
	speed := f.hazardSpeed(spec, level)

	for i := 0; i < count; i++ {
		h := &Hazard{
			X:       -buf + phase + float64(i)*pitch,
			Row:     spec.Row,
			Width:   ks.Width,
			Speed:   speed,
			Dir:     spec.Dir,
			Kind:    spec.Kind,
			Variant: f.rng.Intn(ks.Variants),
		}
		if ks.Submersible {
			h.Dive = f.dive.NewState(f.rng)
		}
		lane.Hazards = append(lane.Hazards, h)
	}
}

// PopulateAll regenerates every lane's hazards for the level.
func (f *laneFactory) PopulateAll(lanes []*Lane, level int) {
	for _, lane := range lanes {
		f.Populate(lane, level)
	}
}

// wrapExited re-inserts hazards that fully left the visible area plus
// the wrap buffer at the opposite edge, strictly behind the rearmost
// hazard in the lane. Hazards are processed in original index order so
// simultaneous wraps land consecutively and never overlap.
func (f *laneFactory) wrapExited(lane *Lane, level int) int {
	gap := f.requiredGap(lane.Spec, level)
	buf := float64(f.cfg.Board.WrapBuffer)
	wrapped := 0

	for _, h := range lane.Hazards {
		if h.Dir > 0 {
			if h.X <= f.board.WidthPx+buf {
				continue
			}
			// Re-enter on the left; rearmost is the smallest X.
			x := -buf - h.Width
			for _, o := range lane.Hazards {
				if o == h {
					continue
				}
				if behind := o.X - gap - h.Width; behind < x {
					x = behind
				}
			}
			h.X = x
		} else {
			if h.X+h.Width >= -buf {
				continue
			}
			// Re-enter on the right; rearmost is the largest right edge.
			x := f.board.WidthPx + buf
			for _, o := range lane.Hazards {
				if o == h {
					continue
				}
				if behind := o.X + o.Width + gap; behind > x {
					x = behind
				}
			}
			h.X = x
		}
		wrapped++
	}
	return wrapped
}

// enforceRoadGaps pushes any road hazard that crept closer than the
// minimum gap to the hazard ahead of it back to the legal distance.
// Pairs where both hazards are the gap-exempt kind may stay close.
func (f *laneFactory) enforceRoadGaps(lane *Lane, level int) {
	if lane.Spec.Type != LaneRoad || len(lane.Hazards) < 2 {
		return
	}
	gap := f.minRoadGap(level)

	hs := append([]*Hazard(nil), lane.Hazards...)
	// Front-most first in the direction of travel.
	sort.Slice(hs, func(i, j int) bool {
		if lane.Spec.Dir > 0 {
			return hs[i].X > hs[j].X
		}
		return hs[i].X < hs[j].X
	})

	for i := 1; i < len(hs); i++ {
		ahead, h := hs[i-1], hs[i]
		if ahead.Kind.Spec().GapExempt && h.Kind.Spec().GapExempt {
			continue
		}
		if lane.Spec.Dir > 0 {
			if limit := ahead.X - gap - h.Width; h.X > limit {
				h.X = limit
			}
		} else {
			if limit := ahead.X + ahead.Width + gap; h.X < limit {
				h.X = limit
			}
		}
	}
}
