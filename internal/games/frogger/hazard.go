package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// HazardKind identifies a moving object type. Road kinds are lethal;
// water kinds are platforms the actor stands on.
type HazardKind int

const (
	KindNone HazardKind = iota
	KindCarCompact
	KindCarSedan
	KindCarSport // Fast and small; exempt from the full road gap
	KindTruck
	KindBulldozer
	KindLogShort
	KindLogMedium
	KindLogLong
	KindTurtleDuo  // Submersible
	KindTurtleTrio // Submersible
)

// KindSpec is the static per-kind table: width, relative speed, spacing
// exemption, dive behavior and visual variants.
type KindSpec struct {
	Name        string
	Width       float64 // Pixels
	SpeedMult   float64 // Applied on top of the lane base speed
	GapExempt   bool    // May sit closer than the road minimum gap
	Submersible bool
	Variants    int // Color variants for visual (not felt) variety
}

// kindTable maps each hazard kind to its spec. Smaller road kinds move
// faster so that visual variety maps to felt difficulty.
var kindTable = map[HazardKind]KindSpec{
	KindNone:       {Name: "", Width: 0, SpeedMult: 1.0, Variants: 1},
	KindCarCompact: {Name: "car_compact", Width: 30, SpeedMult: 1.1, Variants: 3},
	KindCarSedan:   {Name: "car_sedan", Width: 34, SpeedMult: 1.0, Variants: 3},
	KindCarSport:   {Name: "car_sport", Width: 26, SpeedMult: 1.35, GapExempt: true, Variants: 2},
	KindTruck:      {Name: "truck", Width: 62, SpeedMult: 0.8, Variants: 2},
	KindBulldozer:  {Name: "bulldozer", Width: 40, SpeedMult: 0.9, Variants: 2},
	KindLogShort:   {Name: "log_short", Width: 64, SpeedMult: 1.0, Variants: 1},
	KindLogMedium:  {Name: "log_medium", Width: 96, SpeedMult: 1.0, Variants: 1},
	KindLogLong:    {Name: "log_long", Width: 128, SpeedMult: 1.0, Variants: 1},
	KindTurtleDuo:  {Name: "turtle_duo", Width: 64, SpeedMult: 1.0, Submersible: true, Variants: 1},
	KindTurtleTrio: {Name: "turtle_trio", Width: 96, SpeedMult: 1.0, Submersible: true, Variants: 1},
}

// Spec returns the static table entry for the kind.
func (k HazardKind) Spec() KindSpec {
	if s, ok := kindTable[k]; ok {
		return s
	}
	return kindTable[KindNone]
}

// KindByName resolves a config tag to a hazard kind.
// Unknown tags resolve to KindNone (the lane spawns no hazards).
func KindByName(name string) HazardKind {
	for k, s := range kindTable {
		if s.Name == name && name != "" {
			return k
		}
	}
	return KindNone
}

// Hazard is one moving object in a lane. X is continuous in pixels; Y
// is fixed by the lane's row.
type Hazard struct {
	X       float64
	Row     int
	Width   float64
	Speed   float64 // Scalar, pixels per reference frame, already kind- and level-scaled
	Dir     int
	Kind    HazardKind
	Variant int
	Dive    *DiveState // Non-nil only for submersible kinds
}

// Span returns the hazard's horizontal extent.
func (h *Hazard) Span() core.Span {
	return core.Span{X: h.X, W: h.Width}
}

// Lane is the runtime instance of a lane descriptor: the spec plus its
// current hazard list. Safe and home lanes never hold hazards.
type Lane struct {
	Spec    LaneSpec
	Hazards []*Hazard
}
