// Package runner is the endless-runner simulation: distance and speed progression,
// procedural spawning, collision, scoring, boosts and the whale event.
//
// The simulation is single-threaded and driven by an external clock through Tick.
// It never advances entity depth itself; the rendering collaborator scrolls the
// Arena before each Tick, and the simulation treats depth as input.
package runner

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trench-runner/internal/config"
	"github.com/vovakirdan/trench-runner/internal/core"
	"github.com/vovakirdan/trench-runner/internal/tier"
)

// Phase is the run lifecycle state.
type Phase uint8

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// RunState is the progression of the current run.
type RunState struct {
	Distance   float64
	Speed      float64
	Multiplier float64
	Active     bool

	Elapsed         float64
	Ticks           uint64
	ExtraLife       bool    // One-shot save granted by surviving a manipulation
	InvincibleTimer float64 // Post-save window during which obstacles are ignored
}

// Invincible reports whether a post-save window is open.
func (r *RunState) Invincible() bool {
	return r.InvincibleTimer > 0
}

// Context is the state each component reads and writes during a tick.
type Context struct {
	Cfg     config.RunnerConfig
	Track   Track
	Rand    Source
	Arena   *Arena
	Run     *RunState
	Player  *Player
	Boosts  *Inventory
	Score   *Scoring
	Spawner *Spawner
	Whale   *WhaleState
	Dt      float64
	Logger  *log.Logger

	events []Event
}

// Emit queues an event for the current tick.
func (c *Context) Emit(e Event) {
	c.events = append(c.events, e)
}

// Sim is the run lifecycle controller. It owns every piece of run state and
// orchestrates the components once per tick.
type Sim struct {
	cfg         config.RunnerConfig
	progression config.Progression
	resolver    Resolver
	logger      *log.Logger

	src   Source
	arena *Arena

	run     RunState
	player  Player
	boosts  Inventory
	score   Scoring
	spawner Spawner
	whale   WhaleState
	ctx     Context

	phase  Phase
	paused bool
	best   int
	tier   tier.Tier
	final  Breakdown
	runs   int
}

// Option configures a Sim.
type Option func(*Sim)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource injects the random source.
func WithSource(src Source) Option {
	return func(s *Sim) {
		if src != nil {
			s.src = src
		}
	}
}

// WithSeed seeds a fresh PCG source.
func WithSeed(seed int64) Option {
	return func(s *Sim) { s.src = NewSource(seed) }
}

// WithBest sets the previously persisted best score.
func WithBest(best int) Option {
	return func(s *Sim) { s.best = core.Max(best, 0) }
}

// WithTier sets the holder tier read once for the run's tint.
func WithTier(t tier.Tier) Option {
	return func(s *Sim) { s.tier = t }
}

// New creates a simulation in the Ready phase.
func New(cfg config.RunnerConfig, opts ...Option) *Sim {
	s := &Sim{
		cfg:         cfg,
		progression: config.NewProgression(cfg.Speed),
		resolver:    NewResolver(cfg.Collision),
		logger:      log.New(io.Discard),
		arena:       NewArena(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = NewSource(1)
	}

	s.ctx = Context{
		Cfg:     cfg,
		Track:   NewTrack(cfg.Track),
		Rand:    s.src,
		Arena:   s.arena,
		Run:     &s.run,
		Player:  &s.player,
		Boosts:  &s.boosts,
		Score:   &s.score,
		Spawner: &s.spawner,
		Whale:   &s.whale,
		Logger:  s.logger,
	}
	s.resetState()
	return s
}

// Reseed replaces the random source. It takes effect for the next Start.
func (s *Sim) Reseed(seed int64) {
	s.src = NewSource(seed)
	s.ctx.Rand = s.src
}

func (s *Sim) resetState() {
	s.arena.Reset()
	s.run = RunState{
		Speed:      s.progression.BaseSpeed(),
		Multiplier: 1,
	}
	s.player = NewPlayer(s.cfg.Player, s.cfg.Track.Lanes)
	s.boosts = NewInventory(s.cfg.Boosts)
	s.score = NewScoring(s.cfg.Combo)
	s.spawner = NewSpawner(s.cfg.Spawn)
	s.whale = NewWhaleState(s.cfg.Whale)
	s.final = Breakdown{}
	s.paused = false
	s.ctx.events = nil
}

// Start resets every component and begins a run.
func (s *Sim) Start() {
	s.resetState()
	s.spawner.Reset(s.src)
	s.run.Active = true
	s.phase = PhaseRunning
	s.runs++
	s.logger.Info("run started", "run", s.runs, "speed", s.run.Speed, "tier", s.tier)
}

// Restart cancels the current run, if any, and starts a new one.
func (s *Sim) Restart() {
	s.Stop()
	s.Start()
}

const reasonStopped = "stopped"

// Stop ends the run from outside, e.g. on a restart request. It goes through the
// same path as a fatal crash, so no tick or spawn happens afterwards, but the
// score is not compared against best.
func (s *Sim) Stop() {
	s.end(reasonStopped)
}

// Pause halts ticking without changing run state.
func (s *Sim) Pause() {
	if s.run.Active {
		s.paused = true
	}
}

// Resume continues a paused run.
func (s *Sim) Resume() {
	s.paused = false
}

// Tick advances the run by dt seconds and returns the events it produced,
// including any queued by Apply since the previous tick.
func (s *Sim) Tick(dt float64) []Event {
	if !s.run.Active || s.paused || dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return s.flush()
	}
	ctx := &s.ctx
	ctx.Dt = dt

	s.arena.Sweep()
	s.run.Ticks++
	s.run.Elapsed += dt

	prev := s.run.Distance
	s.run.Distance += s.run.Speed * dt
	s.score.AddDistance(s.progression.DistancePoints(s.run.Distance - prev))
	s.run.Speed = s.progression.NextSpeed(s.run.Speed, dt)
	s.run.Multiplier = s.progression.Multiplier(s.run.Distance)

	s.tickTimers(dt)
	s.spawner.Advance(ctx)
	s.resolver.Resolve(ctx, s)
	if !s.run.Active {
		return s.flush()
	}
	s.tickWhale()
	s.attract(dt)

	s.arena.RemoveIf(func(e *Entity) bool { return ctx.Track.Passed(e.Depth) })
	s.arena.Sweep()
	return s.flush()
}

func (s *Sim) flush() []Event {
	out := s.ctx.events
	s.ctx.events = nil
	return out
}

func (s *Sim) tickTimers(dt float64) {
	for _, b := range s.boosts.Tick(dt) {
		s.ctx.Emit(BoostExpired{Boost: b})
	}
	if lost := s.score.Tick(dt); lost > 0 {
		s.ctx.Emit(ComboLost{Count: lost})
	}
	if s.run.InvincibleTimer > 0 {
		s.run.InvincibleTimer -= dt
		if s.run.InvincibleTimer <= timerEpsilon {
			s.run.InvincibleTimer = 0
		}
	}
	s.player.Update(dt)
}

// tickWhale runs the whale update behind a recovery boundary: an error or panic
// resets the whale to idle and the run continues.
func (s *Sim) tickWhale() {
	mode := s.whale.Mode()
	defer func() {
		if r := recover(); r != nil {
			s.whaleFault(mode, fmt.Errorf("whale: panic in %s: %v", mode, r))
		}
	}()
	if err := s.whale.Update(&s.ctx); err != nil {
		s.whaleFault(mode, err)
	}
}

func (s *Sim) whaleFault(mode WhaleMode, err error) {
	s.logger.Error("whale tick failed", "mode", mode, "err", err)
	s.whale.Abort(&s.ctx)
	s.ctx.Emit(WhaleFault{Err: err})
}

// attract pulls collectibles in magnet range toward the player's lane.
func (s *Sim) attract(dt float64) {
	if !s.boosts.HasMagnet {
		return
	}
	cfg := s.cfg.Boosts
	target := float64(s.player.Lane)
	step := cfg.MagnetLaneSpeed * dt

	s.arena.Each(func(e *Entity) {
		if e.Kind != KindCollectible && e.Kind != KindWhaleToken {
			return
		}
		if e.Depth < 0 || e.Depth > cfg.MagnetRange {
			return
		}
		lane, _ := core.Approach(e.Lane, target, step)
		if math.Abs(lane-target) <= cfg.MagnetSnap {
			lane = target
		}
		e.Lane = s.ctx.Track.ClampLane(lane)
	})
}

// end is the single point where a run stops.
func (s *Sim) end(reason string) {
	if !s.run.Active {
		return
	}
	s.run.Active = false
	s.paused = false
	s.phase = PhaseGameOver

	b := s.Breakdown()
	// A cancelled run never counts toward best.
	newBest := reason != reasonStopped && b.Score > s.best
	if newBest {
		s.best = b.Score
	}
	b.Best = s.best
	s.final = b

	s.ctx.Emit(GameOver{Breakdown: b, NewBest: newBest})
	s.logger.Info("run over", "reason", reason, "score", b.Score, "distance", b.Distance, "best", s.best)
}

// FatalHit applies shield, then extra life, then ends the run.
func (s *Sim) FatalHit(e *Entity) {
	switch {
	case s.boosts.ConsumeShield():
		s.save(e, SaveShield, s.cfg.Collision.ShieldInvincibility)
	case s.run.ExtraLife:
		s.run.ExtraLife = false
		s.save(e, SaveExtraLife, s.cfg.Collision.ExtraLifeInvincibility)
	default:
		s.end("crash into " + e.Obstacle.String())
	}
}

func (s *Sim) save(e *Entity, kind SaveKind, invincible float64) {
	s.run.InvincibleTimer = invincible
	s.arena.Remove(e)
	s.ctx.Emit(Save{Kind: kind, Invincible: invincible, ObstacleType: e.Obstacle})
	s.logger.Info("fatal hit absorbed", "by", kind, "distance", s.run.Distance)
}

// CollectItem scores a collectible.
func (s *Sim) CollectItem(e *Entity) {
	s.arena.Remove(e)
	points := s.score.Collect(e.Value, s.run.Multiplier, s.boosts.Double())
	s.ctx.Emit(Pickup{Item: e.Item, Points: wholePoints(points), Combo: s.score.Combo.Count})
}

// CollectBubble forwards a trail bubble to the whale.
func (s *Sim) CollectBubble(e *Entity) {
	s.whale.CollectBubble(&s.ctx, e)
}

// CollectWhaleToken scores the whale reward.
func (s *Sim) CollectWhaleToken(e *Entity) {
	s.arena.Remove(e)
	points := s.score.WhaleToken(s.cfg.Whale.TokenValue, s.run.Multiplier, s.boosts.Double())
	s.ctx.Emit(WhaleToken{Points: wholePoints(points)})
}

// CollectBoost adds a boost charge.
func (s *Sim) CollectBoost(e *Entity) {
	s.arena.Remove(e)
	ready := s.boosts.Pickup(e.Boost)
	slot := s.boosts.Slot(e.Boost)
	s.ctx.Emit(BoostCharged{Boost: e.Boost, Charge: slot.Charge, Available: slot.Available, Ready: ready})
}

// Phase returns the lifecycle phase.
func (s *Sim) Phase() Phase {
	return s.phase
}

// Recovering reports whether the run is inside a post-save invincibility window.
func (s *Sim) Recovering() bool {
	return s.run.Active && s.run.Invincible()
}

// Paused reports whether ticking is halted.
func (s *Sim) Paused() bool {
	return s.paused
}

// ControlsReversed reports whether lane input is currently inverted.
// Input translation must not invert on its own; Apply does it.
func (s *Sim) ControlsReversed() bool {
	return s.whale.ControlsReversed
}

// Run returns the run progression.
func (s *Sim) Run() RunState { return s.run }

// Player returns the player state.
func (s *Sim) Player() Player { return s.player }

// Combo returns the combo meter.
func (s *Sim) Combo() ComboState { return s.score.Combo }

// Boosts returns the boost inventory.
func (s *Sim) Boosts() Inventory { return s.boosts }

// Whale returns the whale state.
func (s *Sim) Whale() WhaleState { return s.whale }

// Arena exposes the entity collection to the collaborator that scrolls and draws it.
func (s *Sim) Arena() *Arena { return s.arena }

// Track returns the track geometry.
func (s *Sim) Track() Track { return s.ctx.Track }

// Config returns the run configuration.
func (s *Sim) Config() config.RunnerConfig { return s.cfg }

// Best returns the best score seen, including the persisted one.
func (s *Sim) Best() int { return s.best }

// Tier returns the holder tier.
func (s *Sim) Tier() tier.Tier { return s.tier }

// Tint suggests the player color from the holder tier.
func (s *Sim) Tint() core.Color { return s.tier.Tint() }

// Score returns the current total score.
func (s *Sim) Score() int { return wholePoints(s.score.Total()) }

// Final returns the breakdown frozen at game over.
func (s *Sim) Final() Breakdown { return s.final }
