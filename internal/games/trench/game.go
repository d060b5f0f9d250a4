// Package trench is the playable runner: it translates platform actions into
// simulation intents, scrolls the track, records the run for replay and draws
// the pseudo-3D view, HUD and game-over breakdown.
package trench

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trench-runner/internal/config"
	"github.com/vovakirdan/trench-runner/internal/core"
	"github.com/vovakirdan/trench-runner/internal/replay"
	"github.com/vovakirdan/trench-runner/internal/runner"
	"github.com/vovakirdan/trench-runner/internal/tier"
)

// Game implements the runner on top of the simulation core.
type Game struct {
	cfg     config.RunnerConfig
	logger  *log.Logger
	sim     *runner.Sim
	runtime core.RuntimeConfig

	seed     int64
	runID    string
	tier     tier.Tier
	recorder *replay.Recorder
	final    *replay.Recording

	banners   banners
	frame     int // Animation counter, advances every tick
	newBest   bool
	autopilot *Autopilot
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger passed down to the simulation.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithAutopilot lets the game steer itself, for attract mode and headless runs.
func WithAutopilot(a *Autopilot) Option {
	return func(g *Game) { g.autopilot = a }
}

// New creates a game for a run configuration. Reset must be called before Step.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.sim = runner.New(cfg, runner.WithLogger(g.logger))
	return g
}

// ID returns the identifier used for storage.
func (g *Game) ID() string {
	return "trench"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Trench Runner"
}

// SetBest seeds the simulation with the persisted best score.
func (g *Game) SetBest(best int) {
	g.sim = runner.New(g.cfg, runner.WithLogger(g.logger), runner.WithBest(best), runner.WithTier(g.tier))
}

// Reset starts a fresh run. The holder tier is read once here from the balance.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.seed = runtime.Seed

	t := tier.FromBalance(runtime.Balance)
	if t != g.tier || g.sim == nil {
		g.tier = t
		g.sim = runner.New(g.cfg, runner.WithLogger(g.logger), runner.WithBest(g.bestOrZero()), runner.WithTier(t))
	}

	g.sim.Stop()
	g.sim.Reseed(g.seed)
	g.sim.Start()

	g.runID = replay.NewRunID()
	g.recorder = replay.NewRecorder(g.runID, runtime.Player, g.seed, runtime.TickRate, g.cfg)
	g.final = nil
	g.banners = banners{}
	g.frame = 0
	g.newBest = false
}

func (g *Game) bestOrZero() int {
	if g.sim == nil {
		return 0
	}
	return g.sim.Best()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		rt := g.runtime
		rt.Seed = g.seed + 1
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	if g.sim.Phase() != runner.PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.sim.Paused() {
			g.sim.Resume()
		} else {
			g.sim.Pause()
		}
	}
	if g.sim.Paused() {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	g.banners.tick()

	intents := Intents(in)
	if g.autopilot != nil {
		intents = append(intents, g.autopilot.Decide(g.sim)...)
	}
	g.recorder.Record(intents)
	events := replay.Step(g.sim, intents, g.runtime.Dt())

	ended := g.absorb(events)
	return core.StepResult{State: g.State(), Ended: ended}
}

// Intents maps platform actions onto simulation intents in arrival order.
// Lane directions are passed through raw; the simulation handles reversal.
func Intents(in core.InputFrame) []runner.Intent {
	var out []runner.Intent
	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			out = append(out, runner.MoveLane(-1))
		case core.ActionRight:
			out = append(out, runner.MoveLane(1))
		case core.ActionJump:
			out = append(out, runner.Jump())
		case core.ActionSlide:
			out = append(out, runner.Slide())
		case core.ActionBoostDouble:
			out = append(out, runner.ActivateBoost(runner.BoostDouble))
		case core.ActionBoostShield:
			out = append(out, runner.ActivateBoost(runner.BoostShield))
		case core.ActionBoostMagnet:
			out = append(out, runner.ActivateBoost(runner.BoostMagnet))
		}
	}
	return out
}

// absorb turns simulation events into banners and reports whether the run ended.
func (g *Game) absorb(events []runner.Event) bool {
	ended := false
	for _, ev := range events {
		g.banners.push(ev)
		if over, ok := ev.(runner.GameOver); ok {
			ended = true
			g.newBest = over.NewBest
			rec := g.recorder.Finish(over.Breakdown.Score)
			g.final = &rec
		}
	}
	return ended
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.Phase() == runner.PhaseGameOver,
		Paused:   g.sim.Paused(),
	}
}

// Sim exposes the simulation for HUD queries and tests.
func (g *Game) Sim() *runner.Sim {
	return g.sim
}

// RunID returns the identifier of the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Tier returns the holder tier read at Reset.
func (g *Game) Tier() tier.Tier {
	return g.tier
}

// Recording returns the finished recording once the run is over.
func (g *Game) Recording() (replay.Recording, bool) {
	if g.final == nil {
		return replay.Recording{}, false
	}
	return *g.final, true
}

// Breakdown returns the final breakdown once the run is over, or the running one.
func (g *Game) Breakdown() runner.Breakdown {
	if g.sim.Phase() == runner.PhaseGameOver {
		return g.sim.Final()
	}
	return g.sim.Breakdown()
}
