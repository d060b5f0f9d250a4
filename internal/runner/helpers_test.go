package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trench-runner/internal/config"
)

// scriptedSource replays fixed draws, then returns zeros.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		return n - 1
	}
	return v
}

// testContext wires standalone components the way Sim does.
func testContext(cfg config.RunnerConfig, src Source) *Context {
	run := &RunState{Speed: cfg.Speed.Base, Multiplier: 1, Active: true}
	player := NewPlayer(cfg.Player, cfg.Track.Lanes)
	boosts := NewInventory(cfg.Boosts)
	score := NewScoring(cfg.Combo)
	spawner := NewSpawner(cfg.Spawn)
	whale := NewWhaleState(cfg.Whale)
	return &Context{
		Cfg:     cfg,
		Track:   NewTrack(cfg.Track),
		Rand:    src,
		Arena:   NewArena(),
		Run:     run,
		Player:  &player,
		Boosts:  &boosts,
		Score:   &score,
		Spawner: &spawner,
		Whale:   &whale,
		Dt:      1.0 / 60.0,
		Logger:  log.New(io.Discard),
	}
}

// drive plays the rendering collaborator's part: scroll, then tick.
func drive(s *Sim, dt float64) []Event {
	s.Arena().Scroll(s.Run().Speed * dt)
	return s.Tick(dt)
}

func countKind(a *Arena, k Kind) int {
	n := 0
	a.Each(func(e *Entity) {
		if e.Kind == k {
			n++
		}
	})
	return n
}

func findEvent[T Event](events []Event) (T, bool) {
	for _, e := range events {
		if got, ok := e.(T); ok {
			return got, true
		}
	}
	var zero T
	return zero, false
}
