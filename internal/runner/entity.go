package runner

// Kind is the variant tag of a spawned entity.
type Kind uint8

const (
	KindObstacle Kind = iota
	KindCollectible
	KindBoost
	KindTrailBubble
	KindWhaleToken
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindBoost:
		return "boost"
	case KindTrailBubble:
		return "trail-bubble"
	case KindWhaleToken:
		return "whale-token"
	default:
		return "unknown"
	}
}

// ObstacleType distinguishes obstacle variants.
type ObstacleType uint8

const (
	ObstacleBlock ObstacleType = iota
	ObstaclePit
)

// String returns the obstacle name as used in layout config.
func (o ObstacleType) String() string {
	if o == ObstaclePit {
		return "pit"
	}
	return "block"
}

// ParseObstacle maps a layout config type onto an ObstacleType.
func ParseObstacle(s string) ObstacleType {
	if s == "pit" {
		return ObstaclePit
	}
	return ObstacleBlock
}

// EntityID identifies an entity for the lifetime of a run.
type EntityID uint64

// Entity is one live hazard, collectible, boost or whale item on the track.
// Only the fields for its Kind are meaningful.
type Entity struct {
	ID        EntityID
	Kind      Kind
	Lane      float64 // Fractional while a magnet pulls it
	Depth     float64
	PrevDepth float64 // Depth before the latest Scroll; the swept range is [Depth, PrevDepth]

	Obstacle ObstacleType // KindObstacle
	Boost    BoostType    // KindBoost
	Item     string       // KindCollectible: rarity tier name
	Value    int          // KindCollectible: base points
	Sequence int          // KindTrailBubble: index in the trail

	removed bool
}

// IsPit reports whether the entity is a pit obstacle.
func (e *Entity) IsPit() bool {
	return e.Kind == KindObstacle && e.Obstacle == ObstaclePit
}

// Swept reports whether the entity's movement this tick overlapped [lo, hi].
func (e *Entity) Swept(lo, hi float64) bool {
	near, far := e.Depth, e.PrevDepth
	if far < near {
		near, far = far, near
	}
	return near <= hi && far >= lo
}

// Arena owns every live entity of a run.
// Entities spawned mid-tick wait in a pending list and join the live set on Sweep,
// and removal only marks; Sweep compacts. Iteration never sees the slice change.
type Arena struct {
	live    []Entity
	pending []Entity
	nextID  EntityID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		live:    make([]Entity, 0, 64),
		pending: make([]Entity, 0, 16),
	}
}

// Reset drops every entity.
func (a *Arena) Reset() {
	a.live = a.live[:0]
	a.pending = a.pending[:0]
	a.nextID = 0
}

// Spawn queues an entity and returns its ID. It becomes live on the next Sweep.
func (a *Arena) Spawn(e Entity) EntityID {
	a.nextID++
	e.ID = a.nextID
	e.PrevDepth = e.Depth
	e.removed = false
	a.pending = append(a.pending, e)
	return e.ID
}

// Sweep compacts removed entities out and promotes pending ones.
func (a *Arena) Sweep() {
	kept := a.live[:0]
	for _, e := range a.live {
		if !e.removed {
			kept = append(kept, e)
		}
	}
	a.live = kept

	for _, e := range a.pending {
		if !e.removed {
			a.live = append(a.live, e)
		}
	}
	a.pending = a.pending[:0]
}

// Each calls fn for every live, unremoved entity. fn may mark entities removed
// and may Spawn, but spawned entities are not visited.
func (a *Arena) Each(fn func(e *Entity)) {
	for i := range a.live {
		e := &a.live[i]
		if e.removed {
			continue
		}
		fn(e)
	}
}

// Remove marks an entity removed.
func (a *Arena) Remove(e *Entity) {
	e.removed = true
}

// RemoveIf marks every live or pending entity matching pred and returns how many.
func (a *Arena) RemoveIf(pred func(e *Entity) bool) int {
	n := 0
	for _, list := range [][]Entity{a.live, a.pending} {
		for i := range list {
			e := &list[i]
			if !e.removed && pred(e) {
				e.removed = true
				n++
			}
		}
	}
	return n
}

// Find returns the first live or pending entity matching pred, or nil.
// The pointer is valid until the next Spawn or Sweep.
func (a *Arena) Find(pred func(e *Entity) bool) *Entity {
	for _, list := range [][]Entity{a.live, a.pending} {
		for i := range list {
			e := &list[i]
			if !e.removed && pred(e) {
				return e
			}
		}
	}
	return nil
}

// Scroll moves every entity dz closer to the player. This belongs to the
// rendering/physics collaborator; the simulation only reads depth.
func (a *Arena) Scroll(dz float64) {
	for _, list := range [][]Entity{a.live, a.pending} {
		for i := range list {
			list[i].PrevDepth = list[i].Depth
			list[i].Depth -= dz
		}
	}
}

// Len returns the number of live, unremoved entities.
func (a *Arena) Len() int {
	n := 0
	for i := range a.live {
		if !a.live[i].removed {
			n++
		}
	}
	return n
}

// Entities returns a copy of every live and pending entity for rendering.
func (a *Arena) Entities() []Entity {
	out := make([]Entity, 0, len(a.live)+len(a.pending))
	for _, list := range [][]Entity{a.live, a.pending} {
		for _, e := range list {
			if !e.removed {
				out = append(out, e)
			}
		}
	}
	return out
}
