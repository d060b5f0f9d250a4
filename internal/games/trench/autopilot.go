package trench

import (
	"math"

	"github.com/vovakirdan/trench-runner/internal/runner"
)

// Autopilot is a simple bot that dodges, jumps, spends boosts and chases trails.
// It behaves like a player at the keyboard: it sees the reversed-controls state
// and compensates for it itself.
type Autopilot struct {
	Lookahead float64 // Depth within which obstacles are avoided
	JumpLead  float64 // Seconds before contact at which it jumps
	Cooldown  int     // Ticks between lane changes

	wait int
}

// NewAutopilot returns an autopilot with default reflexes.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 180, JumpLead: 0.3, Cooldown: 6}
}

// Decide returns the intents for the next tick.
func (a *Autopilot) Decide(sim *runner.Sim) []runner.Intent {
	if sim.Phase() != runner.PhaseRunning || sim.Paused() {
		return nil
	}
	if a.wait > 0 {
		a.wait--
	}

	var out []runner.Intent
	inv := sim.Boosts()
	for _, b := range runner.BoostTypes {
		if inv.Slot(b).Available > 0 {
			out = append(out, runner.ActivateBoost(b))
		}
	}

	p := sim.Player()
	lanes := sim.Track().Lanes
	ahead := obstacleDepths(sim, lanes)

	target := p.Lane
	if w := sim.Whale(); w.TrailActive && w.TrailProgress < len(w.TrailPath) {
		target = w.TrailPath[w.TrailProgress].Lane
	} else if ahead[p.Lane] < a.Lookahead {
		best := ahead[p.Lane]
		for _, l := range []int{p.Lane - 1, p.Lane + 1} {
			if l >= 0 && l < lanes && ahead[l] > best {
				best, target = ahead[l], l
			}
		}
	}

	if target != p.Lane && a.wait == 0 {
		dir := int8(1)
		if target < p.Lane {
			dir = -1
		}
		if sim.ControlsReversed() {
			dir = -dir
		}
		out = append(out, runner.MoveLane(dir))
		a.wait = a.Cooldown
		return out
	}

	if ahead[p.Lane] <= sim.Run().Speed*a.JumpLead {
		out = append(out, runner.Jump())
	}
	return out
}

// obstacleDepths returns the nearest obstacle depth ahead of the player per lane.
func obstacleDepths(sim *runner.Sim, lanes int) []float64 {
	ahead := make([]float64, lanes)
	for i := range ahead {
		ahead[i] = math.Inf(1)
	}
	track := sim.Track()
	sim.Arena().Each(func(e *runner.Entity) {
		if e.Kind != runner.KindObstacle || e.Depth < 0 {
			return
		}
		l := track.LaneIndex(e.Lane)
		if e.Depth < ahead[l] {
			ahead[l] = e.Depth
		}
	})
	return ahead
}
