package runner

import (
	"github.com/vovakirdan/trench-runner/internal/config"
)

// ContactHandler receives the outcome of each contact the resolver finds.
type ContactHandler interface {
	FatalHit(e *Entity)
	CollectItem(e *Entity)
	CollectBubble(e *Entity)
	CollectWhaleToken(e *Entity)
	CollectBoost(e *Entity)
}

// Resolver hit-tests the player against live entities once per tick.
//
// Tests are swept: an entity counts as touching a band if its movement since
// the previous tick overlapped it, so a fast scroll cannot skip over the player.
type Resolver struct {
	cfg  config.CollisionConfig
	band float64
}

// NewResolver builds a resolver with the forgiveness-scaled obstacle band.
func NewResolver(cfg config.CollisionConfig) Resolver {
	return Resolver{cfg: cfg, band: cfg.ObstacleBandEffective()}
}

// Band returns the effective obstacle half-width in depth units.
func (r Resolver) Band() float64 {
	return r.band
}

// Resolve dispatches every contact to h. It stops as soon as the run ends.
func (r Resolver) Resolve(ctx *Context, h ContactHandler) {
	lane := ctx.Player.Lane

	ctx.Arena.Each(func(e *Entity) {
		if !ctx.Run.Active {
			return
		}
		if !e.Swept(-r.cfg.WindowBehind, r.cfg.WindowAhead) {
			return
		}
		if ctx.Track.LaneIndex(e.Lane) != lane {
			return
		}

		switch e.Kind {
		case KindObstacle:
			if ctx.Player.Airborne() || ctx.Run.Invincible() {
				return
			}
			if e.Swept(-r.band, r.band) {
				h.FatalHit(e)
			}
		case KindCollectible, KindTrailBubble, KindWhaleToken, KindBoost:
			if !e.Swept(0, r.cfg.PickupReach) {
				return
			}
			switch e.Kind {
			case KindTrailBubble:
				h.CollectBubble(e)
			case KindWhaleToken:
				h.CollectWhaleToken(e)
			case KindBoost:
				h.CollectBoost(e)
			default:
				h.CollectItem(e)
			}
		}
	})
}
