package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/trench-runner/internal/config"
)

func TestWhaleUnlock(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ctx := testContext(cfg, NewSource(3))
	w := ctx.Whale

	ctx.Boosts.Used = 4
	ctx.Run.Distance = 3999
	if err := w.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if w.Unlocked {
		t.Fatal("unlocked before the distance threshold")
	}

	ctx.Run.Distance = 4500
	if err := w.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !w.Unlocked {
		t.Fatal("not unlocked with 4 boosts at 4500")
	}
	if w.NextEventDistance < 4800 || w.NextEventDistance > 5100 {
		t.Errorf("NextEventDistance = %g, expected within [4800, 5100]", w.NextEventDistance)
	}
	if w.Mode() != WhaleIdle {
		t.Errorf("Mode() = %v, expected idle", w.Mode())
	}
}

func TestWhaleStaysLockedWithoutBoosts(t *testing.T) {
	ctx := testContext(config.DefaultRunnerConfig(), NewSource(3))
	ctx.Boosts.Used = 3
	ctx.Run.Distance = 1e6
	_ = ctx.Whale.Update(ctx)
	if ctx.Whale.Unlocked {
		t.Error("unlocked with only 3 boosts used")
	}
}

// idleWhale returns a context whose whale is due for its next event.
func idleWhale(t *testing.T, cfg config.RunnerConfig, src Source) *Context {
	t.Helper()
	ctx := testContext(cfg, src)
	ctx.Whale.Unlocked = true
	ctx.Whale.NextEventDistance = 5000
	ctx.Run.Distance = 5000
	ctx.Boosts.Used = 4
	return ctx
}

func TestWhaleFirstEventIsTrail(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ctx := idleWhale(t, cfg, NewSource(9))
	ctx.Arena.Spawn(Entity{Kind: KindObstacle, Obstacle: ObstacleBlock, Lane: 0, Depth: 400})
	ctx.Arena.Spawn(Entity{Kind: KindObstacle, Obstacle: ObstaclePit, Lane: 2, Depth: 400})
	ctx.Arena.Spawn(Entity{Kind: KindCollectible, Lane: 1, Depth: 300})
	ctx.Arena.Sweep()

	if err := ctx.Whale.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	ctx.Arena.Sweep()

	w := ctx.Whale
	if w.Mode() != WhaleTrail {
		t.Fatalf("Mode() = %v, expected trail", w.Mode())
	}
	if len(w.TrailPath) != cfg.Whale.TrailLength {
		t.Errorf("path length %d, expected %d", len(w.TrailPath), cfg.Whale.TrailLength)
	}
	if w.TrailBoostThreshold != cfg.Whale.TrailThreshold+cfg.Whale.ThresholdStep {
		t.Errorf("TrailBoostThreshold = %d, expected ratchet by %d", w.TrailBoostThreshold, cfg.Whale.ThresholdStep)
	}
	if !w.LastEventWasTrail {
		t.Error("LastEventWasTrail should be set")
	}
	if got := countKind(ctx.Arena, KindTrailBubble); got != cfg.Whale.TrailLength {
		t.Errorf("bubbles = %d, expected %d", got, cfg.Whale.TrailLength)
	}
	if got := countKind(ctx.Arena, KindCollectible); got != 0 {
		t.Errorf("collectibles survived trail start: %d", got)
	}
	if got := countKind(ctx.Arena, KindObstacle); got != 1 {
		t.Errorf("obstacles = %d, only the pit should remain", got)
	}

	for i := 1; i < len(w.TrailPath); i++ {
		if w.TrailPath[i].Depth <= w.TrailPath[i-1].Depth {
			t.Fatalf("waypoints not ordered toward the horizon: %+v", w.TrailPath)
		}
	}
	if w.LeaderDepth != w.TrailPath[len(w.TrailPath)-1].Depth {
		t.Errorf("LeaderDepth = %g, expected path end %g", w.LeaderDepth, w.TrailPath[len(w.TrailPath)-1].Depth)
	}
}

func TestTrailPathAvoidsPits(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	// First adjacent-lane coin flip picks left before right.
	ctx := idleWhale(t, cfg, &scriptedSource{})
	start := cfg.Whale.TrailStartDepth
	ctx.Arena.Spawn(Entity{Kind: KindObstacle, Obstacle: ObstaclePit, Lane: 1, Depth: start})
	ctx.Arena.Sweep()

	if err := ctx.Whale.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	path := ctx.Whale.TrailPath
	if path[0].Lane != 0 {
		t.Errorf("first waypoint lane %d, expected to dodge the pit into lane 0", path[0].Lane)
	}
	for i := 1; i < len(path); i++ {
		if path[i].Lane != path[i-1].Lane {
			t.Errorf("waypoint %d changed lane without a pit", i)
		}
	}
}

func TestTrailPathAcceptsUnavoidablePit(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ctx := idleWhale(t, cfg, NewSource(4))
	for lane := range cfg.Track.Lanes {
		ctx.Arena.Spawn(Entity{Kind: KindObstacle, Obstacle: ObstaclePit, Lane: float64(lane), Depth: cfg.Whale.TrailStartDepth})
	}
	ctx.Arena.Sweep()

	if err := ctx.Whale.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got := ctx.Whale.TrailPath[0].Lane; got != ctx.Player.Lane {
		t.Errorf("first waypoint lane %d, expected to keep the player's lane %d", got, ctx.Player.Lane)
	}
}

func startedTrail(t *testing.T) *Context {
	t.Helper()
	ctx := idleWhale(t, config.DefaultRunnerConfig(), NewSource(21))
	if err := ctx.Whale.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	ctx.Arena.Sweep()
	if !ctx.Whale.TrailActive {
		t.Fatal("trail did not start")
	}
	return ctx
}

func bubble(ctx *Context, seq int) *Entity {
	return ctx.Arena.Find(func(e *Entity) bool { return e.Kind == KindTrailBubble && e.Sequence == seq })
}

func TestTrailSuccessInOrder(t *testing.T) {
	ctx := startedTrail(t)
	w := ctx.Whale
	n := len(w.TrailPath)
	startLeader := w.LeaderDepth

	for i := range n {
		b := bubble(ctx, i)
		if b == nil {
			t.Fatalf("bubble %d missing", i)
		}
		w.CollectBubble(ctx, b)
		if i < n-1 {
			if w.TrailProgress != i+1 {
				t.Fatalf("TrailProgress = %d after bubble %d", w.TrailProgress, i)
			}
			if w.LeaderDepth >= startLeader {
				t.Errorf("leader did not move closer: %g", w.LeaderDepth)
			}
		}
	}

	if w.TrailActive {
		t.Fatal("trail still active after the last bubble")
	}
	events := ctx.events
	end, ok := findEvent[TrailEnded](events)
	if !ok || !end.Success {
		t.Fatalf("TrailEnded = %+v, %v; expected success", end, ok)
	}
	if w.NextEventDistance < 5000+3000 || w.NextEventDistance > 5000+5000 {
		t.Errorf("NextEventDistance = %g, expected trail cooldown", w.NextEventDistance)
	}

	ctx.Arena.Sweep()
	token := ctx.Arena.Find(func(e *Entity) bool { return e.Kind == KindWhaleToken })
	if token == nil {
		t.Fatal("no whale token spawned")
	}
	if int(token.Lane) != ctx.Player.Lane {
		t.Errorf("token lane %g, expected player lane %d", token.Lane, ctx.Player.Lane)
	}
	if countKind(ctx.Arena, KindTrailBubble) != 0 {
		t.Error("bubbles left after the trail")
	}
}

func TestTrailFailsOutOfOrder(t *testing.T) {
	ctx := startedTrail(t)
	w := ctx.Whale

	w.CollectBubble(ctx, bubble(ctx, 0))
	w.CollectBubble(ctx, bubble(ctx, 2))

	if w.TrailActive {
		t.Fatal("trail survived an out-of-order bubble")
	}
	end, ok := findEvent[TrailEnded](ctx.events)
	if !ok || end.Success || end.Reason != "out of order" {
		t.Errorf("TrailEnded = %+v, %v", end, ok)
	}
	ctx.Arena.Sweep()
	if countKind(ctx.Arena, KindTrailBubble) != 0 || countKind(ctx.Arena, KindWhaleToken) != 0 {
		t.Error("failed trail left bubbles or a token")
	}
}

func TestTrailFailsOnMissedBubble(t *testing.T) {
	ctx := startedTrail(t)
	w := ctx.Whale

	// Move everything so bubble 0 has just crossed the player.
	ctx.Arena.Scroll(w.TrailPath[0].Depth + 1)
	if err := w.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if w.TrailActive {
		t.Fatal("trail survived a missed bubble")
	}
	end, ok := findEvent[TrailEnded](ctx.events)
	if !ok || end.Success || end.Reason != "missed" {
		t.Errorf("TrailEnded = %+v, %v", end, ok)
	}
}

func TestTrailBubbleAheadKeepsTrail(t *testing.T) {
	ctx := startedTrail(t)
	ctx.Arena.Scroll(ctx.Whale.TrailPath[0].Depth - 1)
	if err := ctx.Whale.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !ctx.Whale.TrailActive {
		t.Error("trail ended while bubble 0 was still ahead")
	}
}

func TestManipulationLastsExactly(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	ctx := idleWhale(t, cfg, NewSource(8))
	ctx.Whale.LastEventWasTrail = true

	if err := ctx.Whale.Update(ctx); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !ctx.Whale.ControlsReversed {
		t.Fatal("manipulation did not start")
	}
	if ctx.Whale.ManipulationBoostThreshold != cfg.Whale.ManipulationThreshold+cfg.Whale.ThresholdStep {
		t.Errorf("ManipulationBoostThreshold = %d", ctx.Whale.ManipulationBoostThreshold)
	}

	ticks := 0
	for ctx.Whale.ControlsReversed && ticks < 10000 {
		_ = ctx.Whale.Update(ctx)
		ticks++
	}
	want := int(math.Round(cfg.Whale.ManipulationDuration / ctx.Dt))
	if ticks != want {
		t.Errorf("manipulation lasted %d ticks, expected %d", ticks, want)
	}
	if !ctx.Run.ExtraLife {
		t.Error("surviving the manipulation should grant an extra life")
	}
	if ctx.Whale.LastEventWasTrail {
		t.Error("LastEventWasTrail should be cleared by a manipulation")
	}
	if d := ctx.Whale.NextEventDistance; d < 5000+2000 || d > 5000+3000 {
		t.Errorf("NextEventDistance = %g, expected manipulation cooldown", d)
	}
}

func TestManipulationNoExtraLifeAfterGameOver(t *testing.T) {
	ctx := idleWhale(t, config.DefaultRunnerConfig(), NewSource(8))
	ctx.Whale.LastEventWasTrail = true
	_ = ctx.Whale.Update(ctx)
	ctx.Run.Active = false

	for ctx.Whale.ControlsReversed {
		_ = ctx.Whale.Update(ctx)
	}
	if ctx.Run.ExtraLife {
		t.Error("extra life granted to a finished run")
	}
}

func TestIdleWaitsForBoostThreshold(t *testing.T) {
	ctx := idleWhale(t, config.DefaultRunnerConfig(), NewSource(8))
	ctx.Whale.TrailBoostThreshold = 10
	_ = ctx.Whale.Update(ctx)
	if ctx.Whale.Mode() != WhaleIdle {
		t.Errorf("Mode() = %v, expected idle below the trail threshold", ctx.Whale.Mode())
	}
}

func TestMalformedTrailReturnsError(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Whale.TrailLength = 0
	ctx := idleWhale(t, cfg, NewSource(8))
	if err := ctx.Whale.Update(ctx); err == nil {
		t.Fatal("expected an error for a zero-length trail")
	}

	ctx.Whale.Abort(ctx)
	if ctx.Whale.Mode() != WhaleIdle {
		t.Errorf("Mode() after Abort = %v, expected idle", ctx.Whale.Mode())
	}
	if ctx.Whale.NextEventDistance < 5000+3000 {
		t.Errorf("Abort did not schedule a cooldown: %g", ctx.Whale.NextEventDistance)
	}
}
