package runner

import (
	"testing"

	"github.com/vovakirdan/trench-runner/internal/config"
)

func TestSpawnerFirstLayout(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ctx := testContext(cfg, NewSource(7))
	ctx.Spawner.Reset(ctx.Rand)

	if ctx.Spawner.NextBoost < cfg.Spawn.BoostMin || ctx.Spawner.NextBoost >= cfg.Spawn.BoostMax {
		t.Fatalf("NextBoost = %g outside [%g, %g)", ctx.Spawner.NextBoost, cfg.Spawn.BoostMin, cfg.Spawn.BoostMax)
	}

	ctx.Spawner.Advance(ctx)
	ctx.Arena.Sweep()

	if ctx.Spawner.Layouts != 1 {
		t.Fatalf("Layouts = %d, expected 1", ctx.Spawner.Layouts)
	}
	next := ctx.Spawner.NextLayout
	if next < cfg.Spawn.LayoutMin || next >= cfg.Spawn.LayoutMax {
		t.Errorf("NextLayout = %g outside [%g, %g)", next, cfg.Spawn.LayoutMin, cfg.Spawn.LayoutMax)
	}

	lo, hi := cfg.Track.FarDepth*cfg.Spawn.BandNear, cfg.Track.FarDepth*cfg.Spawn.BandFar
	ctx.Arena.Each(func(e *Entity) {
		switch e.Kind {
		case KindObstacle:
			if e.Depth < lo || e.Depth >= hi {
				t.Errorf("obstacle depth %g outside band [%g, %g)", e.Depth, lo, hi)
			}
		case KindCollectible:
			if e.Depth <= lo || e.Depth > cfg.Track.FarDepth {
				t.Errorf("collectible depth %g outside (%g, %g]", e.Depth, lo, cfg.Track.FarDepth)
			}
			if e.Value <= 0 || e.Item == "" {
				t.Errorf("collectible without rarity: %+v", e)
			}
		default:
			t.Errorf("unexpected %v on first layout", e.Kind)
		}
	})
}

func TestSpawnerLayoutMatchesTemplate(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	// First layout draw: roll = (1 - 0.99) * 9 picks the first template.
	src := &scriptedSource{floats: []float64{0.5, 0.99, 0.5}}
	ctx := testContext(cfg, src)
	ctx.Spawner.Reset(src)
	ctx.Spawner.Advance(ctx)
	ctx.Arena.Sweep()

	want := cfg.Spawn.Layouts[0]
	if got := countKind(ctx.Arena, KindObstacle); got != len(want.Obstacles[0].Lanes) {
		t.Errorf("obstacles = %d, expected %d", got, len(want.Obstacles[0].Lanes))
	}
	if got := countKind(ctx.Arena, KindCollectible); got != want.Collectibles {
		t.Errorf("collectibles = %d, expected %d", got, want.Collectibles)
	}
}

func TestSpawnerBoostCadence(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ctx := testContext(cfg, NewSource(11))
	ctx.Spawner.Reset(ctx.Rand)

	ctx.Run.Distance = cfg.Spawn.BoostMax
	ctx.Spawner.Advance(ctx)
	ctx.Arena.Sweep()

	if got := countKind(ctx.Arena, KindBoost); got != 1 {
		t.Errorf("boost pickups = %d, expected 1", got)
	}
	if ctx.Spawner.NextBoost < ctx.Run.Distance+cfg.Spawn.BoostMin {
		t.Errorf("NextBoost = %g not rescheduled from distance %g", ctx.Spawner.NextBoost, ctx.Run.Distance)
	}
	ctx.Arena.Each(func(e *Entity) {
		if e.Kind == KindBoost && e.Boost == BoostNone {
			t.Error("boost pickup without a type")
		}
	})
}

func TestSpawnerSuspendedDuringTrail(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ctx := testContext(cfg, NewSource(5))
	ctx.Spawner.Reset(ctx.Rand)
	ctx.Whale.TrailActive = true

	ctx.Run.Distance = 5000
	ctx.Spawner.Advance(ctx)
	ctx.Arena.Sweep()

	if ctx.Arena.Len() != 0 {
		t.Errorf("spawned %d entities during a trail", ctx.Arena.Len())
	}
	if ctx.Spawner.Suspended != 2 {
		t.Errorf("Suspended = %d, expected layout and boost thresholds", ctx.Spawner.Suspended)
	}
	if ctx.Spawner.NextLayout <= 5000 || ctx.Spawner.NextBoost <= 5000 {
		t.Errorf("thresholds did not advance: layout %g boost %g", ctx.Spawner.NextLayout, ctx.Spawner.NextBoost)
	}

	// Cadence resumes once the trail is over.
	ctx.Whale.TrailActive = false
	ctx.Run.Distance = ctx.Spawner.NextLayout
	ctx.Spawner.Advance(ctx)
	ctx.Arena.Sweep()
	if ctx.Spawner.Layouts != 1 {
		t.Errorf("Layouts = %d after trail, expected 1", ctx.Spawner.Layouts)
	}
}

func TestSpawnerCollectiblesFitBeforeHorizon(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	// Boost threshold, then the side-pits template (roll = 1 * 9 lands in the
	// last bucket), then a layout depth at the far edge of the band. Every
	// lane draw is 0, so all collectibles share a lane.
	src := &scriptedSource{floats: []float64{0.5, 0, 0.999}}
	ctx := testContext(cfg, src)
	ctx.Spawner.Reset(src)
	ctx.Spawner.Advance(ctx)
	ctx.Arena.Sweep()

	want := cfg.Spawn.Layouts[len(cfg.Spawn.Layouts)-1].Collectibles
	seen := map[float64]bool{}
	ctx.Arena.Each(func(e *Entity) {
		if e.Kind != KindCollectible {
			return
		}
		if e.Depth > cfg.Track.FarDepth {
			t.Errorf("collectible depth %g beyond far %g", e.Depth, cfg.Track.FarDepth)
		}
		if seen[e.Depth] {
			t.Errorf("two collectibles stacked at depth %g", e.Depth)
		}
		seen[e.Depth] = true
	})
	if len(seen) != want {
		t.Errorf("distinct collectible depths = %d, expected %d", len(seen), want)
	}
}
