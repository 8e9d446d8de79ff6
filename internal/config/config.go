// Package config provides YAML-based game configuration loading and
// difficulty management for the frogger platform.
package config

// FroggerConfig contains all configuration for the frogger game.
type FroggerConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Lanes      []LaneConfig     `yaml:"lanes"`
	Player     PlayerConfig     `yaml:"player"`
	Hazards    HazardRules      `yaml:"hazards"`
	Dive       DiveConfig       `yaml:"dive"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Run        RunConfig        `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the pixel-space playfield geometry and timing.
type BoardConfig struct {
	TileSize         int     `yaml:"tile_size"`          // Pixels per grid tile
	Columns          int     `yaml:"columns"`            // Board width in tiles
	HomeSlots        int     `yaml:"home_slots"`         // Goal slots on the home row
	WrapBuffer       int     `yaml:"wrap_buffer"`        // Off-screen margin before wrap, pixels
	ReferenceFrameMs float64 `yaml:"reference_frame_ms"` // Speeds are pixels per this many ms
	StallThresholdMs float64 `yaml:"stall_threshold_ms"` // Elapsed above this skips position updates
}

// LaneConfig describes one board row. Rows not listed default to safe.
type LaneConfig struct {
	Row   int     `yaml:"row"`   // 0 = home row, highest = start row
	Type  string  `yaml:"type"`  // road, water, safe, home
	Kind  string  `yaml:"kind"`  // Hazard kind tag; empty means no hazards
	Speed float64 `yaml:"speed"` // Base speed, pixels per reference frame
	Dir   int     `yaml:"dir"`   // +1 rightward, -1 leftward
}

// PlayerConfig defines actor dimensions and movement.
type PlayerConfig struct {
	Width   int     `yaml:"width"`    // Actor hitbox width, pixels
	HopStep float64 `yaml:"hop_step"` // Interpolation step per reference frame, pixels
	InsetPx float64 `yaml:"inset_px"` // Forgiving inset for road collision, pixels
}

// HazardRules defines spacing and speed-scaling policy for lane hazards.
type HazardRules struct {
	RoadBaseGap     float64 `yaml:"road_base_gap"`      // Minimum road gap, pixels
	RoadLevelBonus  float64 `yaml:"road_level_bonus"`   // Extra gap on level 1
	RoadGapShrink   float64 `yaml:"road_gap_shrink"`    // Gap reduction per level after 1
	RoadGapFloor    float64 `yaml:"road_gap_floor"`     // Gap never shrinks below this
	FastKindGapFrac float64 `yaml:"fast_kind_gap_frac"` // Gap fraction for the gap-exempt kind
	WaterGapTiles   int     `yaml:"water_gap_tiles"`    // Platform gap in tiles
	ProgressiveMin  float64 `yaml:"progressive_min"`    // Speed multiplier at the start row
	GlobalMult      float64 `yaml:"global_mult"`        // Fixed multiplier on all hazard motion
	CarryFactor     float64 `yaml:"carry_factor"`       // Actor carry speed vs platform speed
}

// DiveConfig defines submersible-platform phase timing in milliseconds.
type DiveConfig struct {
	SurfaceMs   float64 `yaml:"surface_ms"`
	DivingMs    float64 `yaml:"diving_ms"`
	SubmergedMs float64 `yaml:"submerged_ms"`
	RisingMs    float64 `yaml:"rising_ms"`
	JitterMs    float64 `yaml:"jitter_ms"` // Random extra dwell on surface re-entry
	GraceMs     float64 `yaml:"grace_ms"`  // Level-1 safe window at submerged boundaries
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	ForwardHop    int `yaml:"forward_hop"`     // First visit to a new forward row
	ReachHome     int `yaml:"reach_home"`      // Filling one home slot
	AllHomesBonus int `yaml:"all_homes_bonus"` // Filling the last slot
	LevelBonus    int `yaml:"level_bonus"`     // Extra per level on completion
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	SpawnChance     float64 `yaml:"spawn_chance"`     // Roll at level start and per home fill
	PickupRadius    float64 `yaml:"pickup_radius"`    // Pixels from actor center
	InvincibilityMs float64 `yaml:"invincibility_ms"` // Effect duration
	MaxLives        int     `yaml:"max_lives"`        // Cap for the extra-life pickup
}

// RunConfig defines run lifecycle parameters.
type RunConfig struct {
	Lives        int     `yaml:"lives"`         // Lives at run start
	MaxContinues int     `yaml:"max_continues"` // Continues before a run is final
	DeathPauseMs float64 `yaml:"death_pause_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Game level/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	GapReduction    int     `yaml:"gap_reduction"`    // Road gap reduction at max difficulty, pixels
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
