package runner

import (
	"math"

	"github.com/vovakirdan/trench-runner/internal/config"
	"github.com/vovakirdan/trench-runner/internal/core"
)

// Track is the lane/depth coordinate space. Lanes are slots 0..Lanes-1; depth runs
// from Far (the spawn horizon) through 0 (the player) down to Behind (passed).
type Track struct {
	Lanes  int
	Far    float64
	Behind float64
}

// NewTrack builds the geometry from config.
func NewTrack(cfg config.TrackConfig) Track {
	return Track{Lanes: cfg.Lanes, Far: cfg.FarDepth, Behind: cfg.BehindDepth}
}

// Point is a player-relative position produced by Project.
type Point struct {
	X     float64 // Lanes from the track centre, negative = left
	Z     float64 // Normalised depth: 0 at player, 1 at the horizon
	Scale float64 // Perspective scale: 1 at the player, shrinking toward the horizon
}

// ClampLane keeps a (possibly fractional) lane on the track.
func (t Track) ClampLane(lane float64) float64 {
	return core.ClampF(lane, 0, float64(t.Lanes-1))
}

// LaneIndex rounds a fractional lane to its slot.
func (t Track) LaneIndex(lane float64) int {
	return core.Clamp(int(math.Round(t.ClampLane(lane))), 0, t.Lanes-1)
}

// ClampDepth keeps a depth inside [Behind, Far].
func (t Track) ClampDepth(depth float64) float64 {
	return core.ClampF(depth, t.Behind, t.Far)
}

// Passed reports whether an entity at depth has left the relevant range.
func (t Track) Passed(depth float64) bool {
	return depth < t.Behind
}

// Center returns the fractional lane at the middle of the track.
func (t Track) Center() float64 {
	return float64(t.Lanes-1) / 2
}

// Project maps (lane, depth) to a player-relative point.
// The near plane sits at a quarter of the far depth, so the horizon renders at 1/5 scale.
func (t Track) Project(lane, depth float64) Point {
	depth = t.ClampDepth(depth)
	near := t.Far / 4
	scale := near / (near + depth)
	return Point{
		X:     t.ClampLane(lane) - t.Center(),
		Z:     depth / t.Far,
		Scale: scale,
	}
}

// HorizonScale is the perspective scale at the far depth.
func (t Track) HorizonScale() float64 {
	return t.Project(t.Center(), t.Far).Scale
}
