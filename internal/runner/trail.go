package runner

import (
	"errors"
	"fmt"
	"math"
)

// Trail path depth ends short of the horizon so the last bubble is visible.
const trailEndFraction = 0.95

var errNoLanes = errors.New("whale: track has no lanes")

// Waypoint is one point of a trail path.
type Waypoint struct {
	Lane  int
	Depth float64
}

func (w *WhaleState) startTrail(ctx *Context) error {
	// Only pits stay on the track during a trail.
	ctx.Arena.RemoveIf(func(e *Entity) bool { return !e.IsPit() })

	path, err := w.buildPath(ctx)
	if err != nil {
		return err
	}

	w.TrailActive = true
	w.TrailPath = path
	w.TrailProgress = 0
	w.LastEventWasTrail = true
	w.TrailBoostThreshold += w.cfg.ThresholdStep
	w.Trails++

	for i, p := range path {
		ctx.Arena.Spawn(Entity{
			Kind:     KindTrailBubble,
			Lane:     float64(p.Lane),
			Depth:    p.Depth,
			Sequence: i,
		})
	}
	w.leaderStart = path[len(path)-1].Depth
	w.moveLeader(ctx)

	ctx.Emit(TrailStarted{Path: append([]Waypoint(nil), path...)})
	return nil
}

// buildPath lays waypoints from near the player toward the horizon. Each one keeps
// the previous lane when it is pit-free, then tries the adjacent lanes in random
// order, then the rest; if every lane has a pit it keeps the previous lane.
func (w *WhaleState) buildPath(ctx *Context) ([]Waypoint, error) {
	lanes := ctx.Track.Lanes
	if lanes <= 0 {
		return nil, errNoLanes
	}
	n := w.cfg.TrailLength
	start := w.cfg.TrailStartDepth
	end := ctx.Track.Far * trailEndFraction
	if n <= 0 || math.IsNaN(start) || end <= start {
		return nil, fmt.Errorf("whale: malformed trail (length %d, depth %g..%g)", n, start, end)
	}

	step := 0.0
	if n > 1 {
		step = (end - start) / float64(n-1)
	}

	path := make([]Waypoint, n)
	prev := ctx.Player.Lane
	for i := range path {
		depth := start + float64(i)*step
		lane := prev
		for _, cand := range w.laneCandidates(ctx, prev) {
			if !pitNear(ctx, cand, depth, w.cfg.TrailPitTolerance) {
				lane = cand
				break
			}
		}
		path[i] = Waypoint{Lane: lane, Depth: depth}
		prev = lane
	}
	return path, nil
}

func (w *WhaleState) laneCandidates(ctx *Context, prev int) []int {
	lanes := ctx.Track.Lanes
	out := make([]int, 0, lanes)
	out = append(out, prev)

	left, right := prev-1, prev+1
	if ctx.Rand.IntN(2) == 1 {
		left, right = right, left
	}
	for _, l := range []int{left, right} {
		if l >= 0 && l < lanes {
			out = append(out, l)
		}
	}
	for l := 0; l < lanes; l++ {
		if l < prev-1 || l > prev+1 {
			out = append(out, l)
		}
	}
	return out
}

func pitNear(ctx *Context, lane int, depth, tolerance float64) bool {
	return ctx.Arena.Find(func(e *Entity) bool {
		return e.IsPit() &&
			ctx.Track.LaneIndex(e.Lane) == lane &&
			math.Abs(e.Depth-depth) <= tolerance
	}) != nil
}

func (w *WhaleState) updateTrail(ctx *Context) error {
	if w.TrailProgress >= len(w.TrailPath) {
		return fmt.Errorf("whale: trail progress %d past path of %d", w.TrailProgress, len(w.TrailPath))
	}
	next := ctx.Arena.Find(func(e *Entity) bool {
		return e.Kind == KindTrailBubble && e.Sequence == w.TrailProgress
	})
	if next == nil {
		return fmt.Errorf("whale: trail bubble %d is missing", w.TrailProgress)
	}
	if next.Depth < 0 {
		w.endTrail(ctx, false, "missed")
		return nil
	}
	w.LeaderLane = next.Lane
	return nil
}

// CollectBubble handles the player touching a trail bubble.
func (w *WhaleState) CollectBubble(ctx *Context, e *Entity) {
	ctx.Arena.Remove(e)
	if !w.TrailActive {
		return
	}
	if e.Sequence != w.TrailProgress {
		w.endTrail(ctx, false, "out of order")
		return
	}

	w.TrailProgress++
	ctx.Emit(TrailBubble{Sequence: e.Sequence, Progress: w.TrailProgress, Length: len(w.TrailPath)})
	w.moveLeader(ctx)

	if w.TrailProgress == len(w.TrailPath) {
		ctx.Arena.Spawn(Entity{
			Kind:  KindWhaleToken,
			Lane:  float64(ctx.Player.Lane),
			Depth: ctx.Track.ClampDepth(w.cfg.TokenDepth),
		})
		w.endTrail(ctx, true, "caught")
	}
}

// moveLeader pulls the whale marker toward the player as the trail progresses.
func (w *WhaleState) moveLeader(ctx *Context) {
	n := len(w.TrailPath)
	if n == 0 {
		return
	}
	w.LeaderDepth = w.leaderStart * (1 - float64(w.TrailProgress)/float64(n))
	if w.TrailProgress < n {
		w.LeaderLane = float64(w.TrailPath[w.TrailProgress].Lane)
	} else {
		w.LeaderLane = float64(ctx.Player.Lane)
	}
}

func (w *WhaleState) endTrail(ctx *Context, success bool, reason string) {
	ctx.Logger.Debug("trail ended", "success", success, "reason", reason, "progress", w.TrailProgress)
	w.clearTrail(ctx)
	w.NextEventDistance = ctx.Run.Distance + uniform(ctx.Rand, w.cfg.TrailCooldown.Min, w.cfg.TrailCooldown.Max)
	ctx.Emit(TrailEnded{Success: success, Reason: reason, NextEvent: w.NextEventDistance})
}

func (w *WhaleState) clearTrail(ctx *Context) {
	ctx.Arena.RemoveIf(func(e *Entity) bool { return e.Kind == KindTrailBubble })
	w.TrailActive = false
	w.TrailPath = nil
	w.TrailProgress = 0
	w.LeaderDepth = 0
	w.LeaderLane = 0
	w.leaderStart = 0
}
