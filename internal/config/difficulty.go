package config

import "math"

// DifficultyManager calculates dynamic game parameters based on the
// current game level (or elapsed ticks).
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// gameLevel is the 1-based run level; ticks is total elapsed ticks.
func (d *DifficultyManager) Level(gameLevel int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(gameLevel-1) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedScale returns the hazard speed multiplier for the current
// difficulty level. At minimum difficulty this is 1.0.
func (d *DifficultyManager) SpeedScale(gameLevel int, ticks int) float64 {
	level := d.Level(gameLevel, ticks)
	return 1.0 + level*d.cfg.Scaling.SpeedMultiplier
}

// GapReduction returns how many pixels to shave off road gaps for the
// current difficulty level. The factory clamps to its configured floor.
func (d *DifficultyManager) GapReduction(gameLevel int, ticks int) float64 {
	level := d.Level(gameLevel, ticks)
	return level * float64(d.cfg.Scaling.GapReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
