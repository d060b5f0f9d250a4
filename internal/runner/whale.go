package runner

import (
	"github.com/vovakirdan/trench-runner/internal/config"
)

// WhaleMode is the whale event state.
type WhaleMode uint8

const (
	WhaleLocked WhaleMode = iota
	WhaleIdle
	WhaleManipulation
	WhaleTrail
)

// String returns the mode name.
func (m WhaleMode) String() string {
	switch m {
	case WhaleLocked:
		return "locked"
	case WhaleIdle:
		return "idle"
	case WhaleManipulation:
		return "manipulation"
	case WhaleTrail:
		return "trail"
	default:
		return "unknown"
	}
}

// WhaleState drives the whale encounter: locked until enough boosts have been
// used far enough into the run, then alternating trails and manipulations.
type WhaleState struct {
	cfg config.WhaleConfig

	Unlocked                   bool
	NextEventDistance          float64
	TrailBoostThreshold        int
	ManipulationBoostThreshold int
	LastEventWasTrail          bool

	// Manipulation. ControlsReversed is the only reversal flag in the game;
	// lane input consults it through Sim.ControlsReversed.
	ControlsReversed bool
	AlertTimer       float64

	// Trail
	TrailActive   bool
	TrailPath     []Waypoint
	TrailProgress int
	LeaderDepth   float64
	LeaderLane    float64
	leaderStart   float64

	Manipulations int
	Trails        int
}

// NewWhaleState returns a locked state machine.
func NewWhaleState(cfg config.WhaleConfig) WhaleState {
	return WhaleState{
		cfg:                        cfg,
		TrailBoostThreshold:        cfg.TrailThreshold,
		ManipulationBoostThreshold: cfg.ManipulationThreshold,
	}
}

// Mode reports the current state.
func (w WhaleState) Mode() WhaleMode {
	switch {
	case !w.Unlocked:
		return WhaleLocked
	case w.ControlsReversed:
		return WhaleManipulation
	case w.TrailActive:
		return WhaleTrail
	default:
		return WhaleIdle
	}
}

// Update advances the state machine by one tick. It runs after collision, so a
// bubble that crossed the player this tick has already had its chance to be collected.
func (w *WhaleState) Update(ctx *Context) error {
	switch w.Mode() {
	case WhaleLocked:
		w.tryUnlock(ctx)
	case WhaleManipulation:
		w.AlertTimer -= ctx.Dt
		if w.AlertTimer <= timerEpsilon {
			w.endManipulation(ctx)
		}
	case WhaleTrail:
		return w.updateTrail(ctx)
	case WhaleIdle:
		if ctx.Run.Distance < w.NextEventDistance {
			return nil
		}
		used := ctx.Boosts.Used
		switch {
		case used >= w.TrailBoostThreshold && !w.LastEventWasTrail:
			return w.startTrail(ctx)
		case used >= w.ManipulationBoostThreshold && w.LastEventWasTrail:
			w.startManipulation(ctx)
		}
	}
	return nil
}

func (w *WhaleState) tryUnlock(ctx *Context) {
	if ctx.Boosts.Used < w.cfg.UnlockBoosts || ctx.Run.Distance < w.cfg.UnlockDistance {
		return
	}
	w.Unlocked = true
	w.NextEventDistance = ctx.Run.Distance + uniform(ctx.Rand, w.cfg.FirstMin, w.cfg.FirstMax)
	ctx.Emit(WhaleUnlocked{NextEvent: w.NextEventDistance})
	ctx.Logger.Info("whale unlocked", "distance", ctx.Run.Distance, "next", w.NextEventDistance)
}

func (w *WhaleState) startManipulation(ctx *Context) {
	w.ControlsReversed = true
	w.AlertTimer = w.cfg.ManipulationDuration
	w.LastEventWasTrail = false
	w.ManipulationBoostThreshold += w.cfg.ThresholdStep
	w.Manipulations++
	ctx.Emit(ManipulationStarted{Duration: w.cfg.ManipulationDuration})
}

func (w *WhaleState) endManipulation(ctx *Context) {
	w.ControlsReversed = false
	w.AlertTimer = 0
	if ctx.Run.Active {
		ctx.Run.ExtraLife = true
		ctx.Emit(ExtraLifeGranted{})
	}
	w.NextEventDistance = ctx.Run.Distance + uniform(ctx.Rand, w.cfg.ManipulationCooldown.Min, w.cfg.ManipulationCooldown.Max)
	ctx.Emit(ManipulationEnded{NextEvent: w.NextEventDistance})
}

// Abort drops whatever sub-state is active and falls back to idle with the
// long cooldown. Used when the whale tick fails.
func (w *WhaleState) Abort(ctx *Context) {
	w.ControlsReversed = false
	w.AlertTimer = 0
	if w.TrailActive {
		w.clearTrail(ctx)
	}
	if w.Unlocked {
		w.NextEventDistance = ctx.Run.Distance + uniform(ctx.Rand, w.cfg.TrailCooldown.Min, w.cfg.TrailCooldown.Max)
	}
}
