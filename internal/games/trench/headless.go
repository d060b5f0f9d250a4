package trench

import (
	"github.com/vovakirdan/trench-runner/internal/config"
	"github.com/vovakirdan/trench-runner/internal/core"
	"github.com/vovakirdan/trench-runner/internal/replay"
	"github.com/vovakirdan/trench-runner/internal/runner"
)

// Stop ends the current run from outside and finalizes its recording.
func (g *Game) Stop() {
	if g.sim.Phase() != runner.PhaseRunning {
		return
	}
	g.sim.Stop()
	g.absorb(g.sim.Tick(0))
}

// Simulate plays one run with the autopilot and no rendering. The run ends on a
// crash or after maxTicks, whichever comes first.
func Simulate(cfg config.RunnerConfig, rt core.RuntimeConfig, maxTicks int, opts ...Option) (runner.Breakdown, replay.Recording) {
	g := New(cfg, append(opts, WithAutopilot(NewAutopilot()))...)
	g.Reset(rt)

	frame := core.NewInputFrame()
	for i := 0; i < maxTicks; i++ {
		if g.Step(frame).Ended {
			break
		}
	}
	g.Stop()

	rec, _ := g.Recording()
	return g.Breakdown(), rec
}
