package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default frogger configuration.
// Kept in sync with defaults/frogger.yaml as a fallback if the embedded
// YAML fails to parse.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Board: BoardConfig{
			TileSize:         32,
			Columns:          14,
			HomeSlots:        5,
			WrapBuffer:       160,
			ReferenceFrameMs: 16.67,
			StallThresholdMs: 250,
		},
		Lanes: []LaneConfig{
			{Row: 0, Type: "home"},
			{Row: 1, Type: "water", Kind: "log_medium", Speed: 1.4, Dir: 1},
			{Row: 2, Type: "water", Kind: "turtle_duo", Speed: 1.1, Dir: -1},
			{Row: 3, Type: "water", Kind: "log_long", Speed: 1.9, Dir: 1},
			{Row: 4, Type: "water", Kind: "log_short", Speed: 1.3, Dir: 1},
			{Row: 5, Type: "water", Kind: "turtle_trio", Speed: 1.0, Dir: -1},
			{Row: 6, Type: "safe"},
			{Row: 7, Type: "road", Kind: "truck", Speed: 1.2, Dir: -1},
			{Row: 8, Type: "road", Kind: "car_sport", Speed: 2.4, Dir: 1},
			{Row: 9, Type: "road", Kind: "car_sedan", Speed: 1.5, Dir: -1},
			{Row: 10, Type: "road", Kind: "bulldozer", Speed: 1.1, Dir: 1},
			{Row: 11, Type: "road", Kind: "car_compact", Speed: 1.3, Dir: -1},
			{Row: 12, Type: "safe"},
		},
		Player: PlayerConfig{
			Width:   24,
			HopStep: 8,
			InsetPx: 4,
		},
		Hazards: HazardRules{
			RoadBaseGap:     110,
			RoadLevelBonus:  40,
			RoadGapShrink:   8,
			RoadGapFloor:    48,
			FastKindGapFrac: 0.35,
			WaterGapTiles:   2,
			ProgressiveMin:  0.75,
			GlobalMult:      1.05,
			CarryFactor:     0.85,
		},
		Dive: DiveConfig{
			SurfaceMs:   4000,
			DivingMs:    1500,
			SubmergedMs: 2500,
			RisingMs:    1500,
			JitterMs:    1500,
			GraceMs:     300,
		},
		Scoring: ScoringConfig{
			ForwardHop:    10,
			ReachHome:     50,
			AllHomesBonus: 1000,
			LevelBonus:    200,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:     0.25,
			PickupRadius:    16,
			InvincibilityMs: 5000,
			MaxLives:        5,
		},
		Run: RunConfig{
			Lives:        3,
			MaxContinues: 3,
			DeathPauseMs: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				GapReduction:    24,
			},
		},
	}
}
