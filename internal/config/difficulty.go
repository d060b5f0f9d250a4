package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means "keep the config's preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets scale starting speed, acceleration and hitbox forgiveness; they never
// touch scoring so runs stay comparable on the leaderboard.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base *= 0.85
		cfg.Speed.Accel *= 0.75
		cfg.Collision.Forgiveness *= 1.3
	case DifficultyHard:
		cfg.Speed.Base *= 1.15
		cfg.Speed.Accel *= 1.5
		cfg.Collision.Forgiveness *= 0.8
	case DifficultyNormal:
	default:
		return
	}
	cfg.Difficulty.Preset = string(preset)
}

// Progression calculates speed and multiplier from distance travelled.
// Both only ever grow during a run.
type Progression struct {
	cfg SpeedConfig
}

// NewProgression creates a progression for the given speed config.
func NewProgression(cfg SpeedConfig) Progression {
	return Progression{cfg: cfg}
}

// Multiplier returns min(max, 1 + distance/step).
func (p Progression) Multiplier(distance float64) float64 {
	if distance < 0 || math.IsNaN(distance) {
		distance = 0
	}
	return clampF(1+distance/p.cfg.MultiplierStep, 1, p.cfg.MaxMultiplier)
}

// NextSpeed applies one tick of acceleration. Speed never decreases.
func (p Progression) NextSpeed(speed, dt float64) float64 {
	if dt <= 0 {
		return speed
	}
	return speed + p.cfg.Accel*dt
}

// BaseSpeed returns the speed at run start.
func (p Progression) BaseSpeed() float64 {
	return p.cfg.Base
}

// DistancePoints converts a distance delta into distance score.
func (p Progression) DistancePoints(delta float64) float64 {
	if delta <= 0 {
		return 0
	}
	return delta * p.cfg.DistanceRate
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
