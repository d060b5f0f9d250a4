package runner

import (
	"math"

	"github.com/vovakirdan/trench-runner/internal/config"
)

// Spawner places layouts and boost pickups as the run distance crosses thresholds.
type Spawner struct {
	cfg          config.SpawnConfig
	layoutWeight []int
	itemWeight   []int

	NextLayout float64 // Distance at which the next layout spawns
	NextBoost  float64 // Distance at which the next boost pickup spawns
	Layouts    int     // Layouts spawned this run
	Suspended  int     // Thresholds crossed while spawning was suspended
}

// NewSpawner prepares the weight tables for a config.
func NewSpawner(cfg config.SpawnConfig) Spawner {
	s := Spawner{
		cfg:          cfg,
		layoutWeight: make([]int, len(cfg.Layouts)),
		itemWeight:   make([]int, len(cfg.Collectibles)),
	}
	for i, l := range cfg.Layouts {
		s.layoutWeight[i] = l.Weight
	}
	for i, c := range cfg.Collectibles {
		s.itemWeight[i] = c.Weight
	}
	return s
}

// Reset schedules the first layout immediately and the first boost pickup one gap ahead.
func (s *Spawner) Reset(src Source) {
	s.NextLayout = 0
	s.NextBoost = uniform(src, s.cfg.BoostMin, s.cfg.BoostMax)
	s.Layouts = 0
	s.Suspended = 0
}

// PickLayout draws one layout template by weight.
func (s *Spawner) PickLayout(src Source) config.LayoutConfig {
	return s.cfg.Layouts[pickWeighted(src, s.layoutWeight)]
}

// Advance spawns for every threshold the distance has crossed. While a trail is
// active nothing spawns, but the thresholds keep moving so cadence resumes afterwards.
func (s *Spawner) Advance(ctx *Context) {
	distance := ctx.Run.Distance
	suspended := ctx.Whale.TrailActive

	for distance >= s.NextLayout {
		if suspended {
			s.Suspended++
		} else {
			s.spawnLayout(ctx)
		}
		s.NextLayout = distance + uniform(ctx.Rand, s.cfg.LayoutMin, s.cfg.LayoutMax)
	}

	for distance >= s.NextBoost {
		if suspended {
			s.Suspended++
		} else {
			s.spawnBoost(ctx)
		}
		s.NextBoost = distance + uniform(ctx.Rand, s.cfg.BoostMin, s.cfg.BoostMax)
	}
}

func (s *Spawner) horizonDepth(ctx *Context) float64 {
	return uniform(ctx.Rand, ctx.Track.Far*s.cfg.BandNear, ctx.Track.Far*s.cfg.BandFar)
}

func (s *Spawner) spawnLayout(ctx *Context) {
	layout := s.PickLayout(ctx.Rand)
	depth := s.horizonDepth(ctx)

	for _, o := range layout.Obstacles {
		typ := ParseObstacle(o.Type)
		for _, lane := range o.Lanes {
			ctx.Arena.Spawn(Entity{
				Kind:     KindObstacle,
				Obstacle: typ,
				Lane:     float64(ctx.Track.LaneIndex(float64(lane))),
				Depth:    depth,
			})
		}
	}

	// The whole collectible run fits before the horizon.
	first := depth + s.cfg.CollectibleLead
	if layout.Collectibles > 1 {
		first = math.Min(first, ctx.Track.Far-float64(layout.Collectibles-1)*s.cfg.CollectibleGap)
	}
	for i := 0; i < layout.Collectibles; i++ {
		item := s.cfg.Collectibles[pickWeighted(ctx.Rand, s.itemWeight)]
		lane := ctx.Rand.IntN(ctx.Track.Lanes)
		ctx.Arena.Spawn(Entity{
			Kind:  KindCollectible,
			Lane:  float64(lane),
			Depth: ctx.Track.ClampDepth(first + float64(i)*s.cfg.CollectibleGap),
			Item:  item.Name,
			Value: item.Value,
		})
	}
	s.Layouts++
}

func (s *Spawner) spawnBoost(ctx *Context) {
	boost := BoostTypes[ctx.Rand.IntN(len(BoostTypes))]
	lane := ctx.Rand.IntN(ctx.Track.Lanes)
	ctx.Arena.Spawn(Entity{
		Kind:  KindBoost,
		Boost: boost,
		Lane:  float64(lane),
		Depth: s.horizonDepth(ctx),
	})
}
