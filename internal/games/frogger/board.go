// Package frogger implements the lane-crossing arcade game simulation.
// The actor hops across road and river lanes to fill the home slots at
// the top of the board while hazards stream through each lane.
package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
)

// LaneType classifies a board row's hazard policy.
type LaneType int

const (
	LaneSafe  LaneType = iota // No hazards, always survivable
	LaneRoad                  // Hazards are lethal on contact
	LaneWater                 // Hazards are supports; their absence is lethal
	LaneHome                  // Goal slots
)

// String returns the config tag for the lane type.
func (t LaneType) String() string {
	switch t {
	case LaneRoad:
		return "road"
	case LaneWater:
		return "water"
	case LaneHome:
		return "home"
	default:
		return "safe"
	}
}

// laneTypeByName maps config tags to lane types. Unknown tags fall back
// to safe so a malformed lane renders empty and poses no hazard.
func laneTypeByName(s string) LaneType {
	switch s {
	case "road":
		return LaneRoad
	case "water":
		return LaneWater
	case "home":
		return LaneHome
	default:
		return LaneSafe
	}
}

// LaneSpec is the static descriptor for one board row.
type LaneSpec struct {
	Row   int
	Type  LaneType
	Kind  HazardKind
	Speed float64 // Base speed, pixels per reference frame
	Dir   int     // +1 rightward, -1 leftward
}

// HomeSpot is one goal slot on the home row.
type HomeSpot struct {
	X      float64 // Left edge of the slot tile
	Filled bool
}

// Board is the immutable pixel-space playfield: geometry plus the
// ordered lane descriptors. Hazard lists live on the runtime Lanes.
type Board struct {
	TileSize int
	Columns  int
	Rows     int
	WidthPx  float64

	Specs []LaneSpec // Indexed by row; row 0 is the home row

	HomeRow   int
	MedianRow int // Mid-board safe row where power-ups appear
	StartRow  int // Bottom safe row where the actor spawns
	HomeSlots int
}

// NewBoard builds a board from configuration. Rows not present in the
// lane list become safe lanes.
func NewBoard(cfg config.FroggerConfig) *Board {
	rows := 0
	for _, lc := range cfg.Lanes {
		if lc.Row+1 > rows {
			rows = lc.Row + 1
		}
	}
	if rows == 0 {
		rows = 1
	}

	b := &Board{
		TileSize:  cfg.Board.TileSize,
		Columns:   cfg.Board.Columns,
		Rows:      rows,
		WidthPx:   float64(cfg.Board.TileSize * cfg.Board.Columns),
		Specs:     make([]LaneSpec, rows),
		StartRow:  rows - 1,
		HomeSlots: cfg.Board.HomeSlots,
	}

	for row := range b.Specs {
		b.Specs[row] = LaneSpec{Row: row, Type: LaneSafe}
	}
	for _, lc := range cfg.Lanes {
		spec := LaneSpec{
			Row:   lc.Row,
			Type:  laneTypeByName(lc.Type),
			Kind:  KindByName(lc.Kind),
			Speed: lc.Speed,
			Dir:   lc.Dir,
		}
		if spec.Dir == 0 {
			spec.Dir = 1
		}
		// A hazard lane with no recognized kind is treated as empty,
		// not as an error.
		if spec.Type == LaneSafe || spec.Type == LaneHome {
			spec.Kind = KindNone
		}
		if spec.Type == LaneHome {
			b.HomeRow = lc.Row
		}
		b.Specs[lc.Row] = spec
	}

	// The median row is the first interior safe row (between water and
	// road bands); power-up pickups happen there.
	b.MedianRow = b.StartRow
	for row := 1; row < b.StartRow; row++ {
		if b.Specs[row].Type == LaneSafe {
			b.MedianRow = row
			break
		}
	}

	return b
}

// RowY returns the pixel y of a row's top edge.
func (b *Board) RowY(row int) float64 {
	return float64(row * b.TileSize)
}

// RowOf returns the row index containing the pixel y.
func (b *Board) RowOf(y float64) int {
	row := int(y) / b.TileSize
	if row < 0 {
		return 0
	}
	if row >= b.Rows {
		return b.Rows - 1
	}
	return row
}

// StartX returns the actor's spawn x (left edge, tile-aligned, centered
// on the board).
func (b *Board) StartX() float64 {
	return float64((b.Columns / 2) * b.TileSize)
}

// NewHomeSpots returns the empty home slot set for a fresh level.
// Slots are tile-aligned and spread evenly across the home row.
func (b *Board) NewHomeSpots() []HomeSpot {
	spots := make([]HomeSpot, b.HomeSlots)
	if b.HomeSlots == 0 {
		return spots
	}
	// Evenly spaced slot columns, first and last inset by one tile.
	span := b.Columns - 2
	for i := range spots {
		col := 1
		if b.HomeSlots > 1 {
			col = 1 + i*(span-1)/(b.HomeSlots-1)
		}
		spots[i] = HomeSpot{X: float64(col * b.TileSize)}
	}
	return spots
}
