// Package config provides YAML-based run configuration loading and difficulty
// presets for the runner. Every tunable constant the simulation uses lives here
// and is fixed for the duration of a run.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for a run.
type RunnerConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Speed      SpeedConfig      `yaml:"speed"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Combo      ComboConfig      `yaml:"combo"`
	Boosts     BoostConfig      `yaml:"boosts"`
	Whale      WhaleConfig      `yaml:"whale"`
	Collision  CollisionConfig  `yaml:"collision"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrackConfig defines the lane/depth coordinate space.
type TrackConfig struct {
	Lanes       int     `yaml:"lanes"`
	FarDepth    float64 `yaml:"far_depth"`    // Spawn horizon
	BehindDepth float64 `yaml:"behind_depth"` // Negative; past this an entity is gone
}

// SpeedConfig defines forward motion and the distance multiplier.
type SpeedConfig struct {
	Base           float64 `yaml:"base"`            // Meters per second at run start
	Accel          float64 `yaml:"accel"`           // Meters per second gained each second
	MultiplierStep float64 `yaml:"multiplier_step"` // Distance per +1 multiplier
	MaxMultiplier  float64 `yaml:"max_multiplier"`
	DistanceRate   float64 `yaml:"distance_rate"` // Points per meter travelled
}

// SpawnConfig defines procedural spawning cadence and content.
type SpawnConfig struct {
	LayoutMin       float64             `yaml:"layout_min"` // Distance between layouts
	LayoutMax       float64             `yaml:"layout_max"`
	BoostMin        float64             `yaml:"boost_min"` // Distance between boost pickups
	BoostMax        float64             `yaml:"boost_max"`
	BandNear        float64             `yaml:"band_near"` // Fraction of far depth
	BandFar         float64             `yaml:"band_far"`
	CollectibleLead float64             `yaml:"collectible_lead"` // Depth behind the layout row
	CollectibleGap  float64             `yaml:"collectible_gap"`
	Layouts         []LayoutConfig      `yaml:"layouts"`
	Collectibles    []CollectibleConfig `yaml:"collectibles"`
}

// LayoutConfig is one weighted chunk template.
type LayoutConfig struct {
	Name         string           `yaml:"name"`
	Weight       int              `yaml:"weight"`
	Obstacles    []ObstacleConfig `yaml:"obstacles"`
	Collectibles int              `yaml:"collectibles"`
}

// ObstacleConfig places one obstacle type across lanes.
type ObstacleConfig struct {
	Type  string `yaml:"type"` // "pit" or "block"
	Lanes []int  `yaml:"lanes"`
}

// CollectibleConfig is one rarity tier of collectible.
type CollectibleConfig struct {
	Name   string `yaml:"name"`
	Value  int    `yaml:"value"`
	Weight int    `yaml:"weight"`
}

// ComboConfig defines the combo meter.
type ComboConfig struct {
	ChargesNeeded int     `yaml:"charges_needed"` // Pickups per combo step
	MaxCount      int     `yaml:"max_count"`
	Window        float64 `yaml:"window"` // Seconds before the combo decays
}

// BoostConfig defines boost charging and effects.
type BoostConfig struct {
	ChargesNeeded   int     `yaml:"charges_needed"`
	DoubleDuration  float64 `yaml:"double_duration"`
	ShieldDuration  float64 `yaml:"shield_duration"`
	MagnetDuration  float64 `yaml:"magnet_duration"`
	MagnetRange     float64 `yaml:"magnet_range"`      // Depth within which items are pulled
	MagnetLaneSpeed float64 `yaml:"magnet_lane_speed"` // Lanes per second
	MagnetSnap      float64 `yaml:"magnet_snap"`       // Lane tolerance for snapping
}

// WhaleConfig defines the whale event state machine.
type WhaleConfig struct {
	UnlockBoosts          int     `yaml:"unlock_boosts"`
	UnlockDistance        float64 `yaml:"unlock_distance"`
	FirstMin              float64 `yaml:"first_min"`
	FirstMax              float64 `yaml:"first_max"`
	TrailThreshold        int     `yaml:"trail_threshold"`
	ManipulationThreshold int     `yaml:"manipulation_threshold"`
	ThresholdStep         int     `yaml:"threshold_step"`
	ManipulationDuration  float64 `yaml:"manipulation_duration"`
	ManipulationCooldown  Range   `yaml:"manipulation_cooldown"`
	TrailCooldown         Range   `yaml:"trail_cooldown"`
	TrailLength           int     `yaml:"trail_length"`
	TrailStartDepth       float64 `yaml:"trail_start_depth"`
	TrailPitTolerance     float64 `yaml:"trail_pit_tolerance"`
	TokenValue            int     `yaml:"token_value"`
	TokenDepth            float64 `yaml:"token_depth"`
}

// Range is an inclusive uniform draw range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// CollisionConfig defines hit-test windows and post-save invincibility.
type CollisionConfig struct {
	WindowAhead            float64 `yaml:"window_ahead"`  // Ignore entities farther than this
	WindowBehind           float64 `yaml:"window_behind"` // Ignore entities further behind than this
	PickupReach            float64 `yaml:"pickup_reach"`  // Collectibles trigger in [0, reach]
	ObstacleBand           float64 `yaml:"obstacle_band"` // Obstacles hit within +/- band
	Forgiveness            float64 `yaml:"forgiveness"`   // >1 shrinks the obstacle band
	ShieldInvincibility    float64 `yaml:"shield_invincibility"`
	ExtraLifeInvincibility float64 `yaml:"extra_life_invincibility"`
}

// PlayerConfig defines player motion.
type PlayerConfig struct {
	StartLane     int     `yaml:"start_lane"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	Gravity       float64 `yaml:"gravity"`
	SlideDuration float64 `yaml:"slide_duration"`
}

// DifficultyConfig records which preset was applied.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}

// ObstacleBandEffective returns the obstacle band after forgiveness scaling.
func (c CollisionConfig) ObstacleBandEffective() float64 {
	if c.Forgiveness <= 0 {
		return c.ObstacleBand
	}
	return c.ObstacleBand / c.Forgiveness
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid runner config")

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Track.Lanes <= 0 {
		return fail("track.lanes must be positive, got %d", c.Track.Lanes)
	}
	if c.Track.FarDepth <= 0 || c.Track.BehindDepth >= 0 {
		return fail("track depths must satisfy behind < 0 < far")
	}
	if c.Track.BehindDepth <= -c.Track.FarDepth/4 {
		return fail("track.behind_depth %g must stay above the near plane (-far/4)", c.Track.BehindDepth)
	}
	if c.Speed.Base <= 0 || c.Speed.MultiplierStep <= 0 || c.Speed.MaxMultiplier < 1 {
		return fail("speed base, multiplier_step and max_multiplier must be positive")
	}
	if c.Spawn.LayoutMin <= 0 || c.Spawn.LayoutMax < c.Spawn.LayoutMin {
		return fail("spawn layout range [%g, %g] is invalid", c.Spawn.LayoutMin, c.Spawn.LayoutMax)
	}
	if c.Spawn.BoostMin <= 0 || c.Spawn.BoostMax < c.Spawn.BoostMin {
		return fail("spawn boost range [%g, %g] is invalid", c.Spawn.BoostMin, c.Spawn.BoostMax)
	}
	if len(c.Spawn.Layouts) == 0 {
		return fail("spawn.layouts is empty")
	}
	if len(c.Spawn.Collectibles) == 0 {
		return fail("spawn.collectibles is empty")
	}
	for _, l := range c.Spawn.Layouts {
		if l.Weight < 0 {
			return fail("layout %q has negative weight", l.Name)
		}
		for _, o := range l.Obstacles {
			if o.Type != "pit" && o.Type != "block" {
				return fail("layout %q has unknown obstacle type %q", l.Name, o.Type)
			}
			for _, lane := range o.Lanes {
				if lane < 0 || lane >= c.Track.Lanes {
					return fail("layout %q places an obstacle in lane %d", l.Name, lane)
				}
			}
		}
	}
	if c.Combo.ChargesNeeded <= 0 || c.Combo.MaxCount <= 0 || c.Combo.Window <= 0 {
		return fail("combo charges_needed, max_count and window must be positive")
	}
	if c.Boosts.ChargesNeeded <= 0 {
		return fail("boosts.charges_needed must be positive")
	}
	if c.Boosts.DoubleDuration <= 0 || c.Boosts.ShieldDuration <= 0 || c.Boosts.MagnetDuration <= 0 {
		return fail("boost durations must be positive")
	}
	if c.Whale.TrailLength <= 0 || c.Whale.ManipulationDuration <= 0 {
		return fail("whale trail_length and manipulation_duration must be positive")
	}
	if c.Player.StartLane < 0 || c.Player.StartLane >= c.Track.Lanes {
		return fail("player.start_lane %d is outside the track", c.Player.StartLane)
	}
	return nil
}
