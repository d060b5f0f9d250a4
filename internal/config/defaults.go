package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// It mirrors defaults/runner.yaml and is the last fallback if the embed fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			Lanes:       3,
			FarDepth:    900,
			BehindDepth: -60,
		},
		Speed: SpeedConfig{
			Base:           300,
			Accel:          5,
			MultiplierStep: 2000,
			MaxMultiplier:  5,
			DistanceRate:   0.1,
		},
		Spawn: SpawnConfig{
			LayoutMin:       200,
			LayoutMax:       300,
			BoostMin:        800,
			BoostMax:        1400,
			BandNear:        0.80,
			BandFar:         0.90,
			CollectibleLead: 60,
			CollectibleGap:  30,
			Layouts: []LayoutConfig{
				{
					Name:         "center-block",
					Weight:       4,
					Obstacles:    []ObstacleConfig{{Type: "block", Lanes: []int{1}}},
					Collectibles: 3,
				},
				{
					Name:   "side-blocks",
					Weight: 3,
					Obstacles: []ObstacleConfig{
						{Type: "block", Lanes: []int{0}},
						{Type: "block", Lanes: []int{2}},
					},
					Collectibles: 2,
				},
				{
					Name:         "side-pits",
					Weight:       2,
					Obstacles:    []ObstacleConfig{{Type: "pit", Lanes: []int{0, 2}}},
					Collectibles: 4,
				},
			},
			Collectibles: []CollectibleConfig{
				{Name: "coin", Value: 50, Weight: 8},
				{Name: "bonk", Value: 60, Weight: 5},
				{Name: "rome", Value: 70, Weight: 4},
				{Name: "wif", Value: 80, Weight: 3},
				{Name: "gem", Value: 120, Weight: 1},
			},
		},
		Combo: ComboConfig{
			ChargesNeeded: 3,
			MaxCount:      10,
			Window:        0.8,
		},
		Boosts: BoostConfig{
			ChargesNeeded:   3,
			DoubleDuration:  10,
			ShieldDuration:  8,
			MagnetDuration:  8,
			MagnetRange:     300,
			MagnetLaneSpeed: 4,
			MagnetSnap:      0.08,
		},
		Whale: WhaleConfig{
			UnlockBoosts:          4,
			UnlockDistance:        4000,
			FirstMin:              300,
			FirstMax:              600,
			TrailThreshold:        4,
			ManipulationThreshold: 4,
			ThresholdStep:         6,
			ManipulationDuration:  4,
			ManipulationCooldown:  Range{Min: 2000, Max: 3000},
			TrailCooldown:         Range{Min: 3000, Max: 5000},
			TrailLength:           10,
			TrailStartDepth:       180,
			TrailPitTolerance:     60,
			TokenValue:            500,
			TokenDepth:            240,
		},
		Collision: CollisionConfig{
			WindowAhead:            120,
			WindowBehind:           60,
			PickupReach:            40,
			ObstacleBand:           18,
			Forgiveness:            1.0,
			ShieldInvincibility:    1.0,
			ExtraLifeInvincibility: 1.5,
		},
		Player: PlayerConfig{
			StartLane:     1,
			JumpVelocity:  800,
			Gravity:       2000,
			SlideDuration: 0.6,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `trench config` style dumps.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
