package runner

import "testing"

func TestArenaSpawnIsPendingUntilSweep(t *testing.T) {
	a := NewArena()
	id := a.Spawn(Entity{Kind: KindCollectible, Depth: 100})
	if id == 0 {
		t.Fatal("Spawn returned zero ID")
	}
	if a.Len() != 0 {
		t.Fatalf("Len() = %d before Sweep, expected 0", a.Len())
	}
	if len(a.Entities()) != 1 {
		t.Errorf("Entities() should include pending entities")
	}

	a.Sweep()
	if a.Len() != 1 {
		t.Errorf("Len() = %d after Sweep, expected 1", a.Len())
	}
}

func TestArenaEachSkipsSpawnedAndRemoved(t *testing.T) {
	a := NewArena()
	for i := range 4 {
		a.Spawn(Entity{Kind: KindObstacle, Depth: float64(i)})
	}
	a.Sweep()

	visited := 0
	a.Each(func(e *Entity) {
		visited++
		if e.Depth == 1 {
			a.Remove(e)
		}
		a.Spawn(Entity{Kind: KindBoost})
	})
	if visited != 4 {
		t.Errorf("visited %d entities, expected 4", visited)
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d after remove, expected 3", a.Len())
	}

	a.Sweep()
	if a.Len() != 7 {
		t.Errorf("Len() = %d after Sweep, expected 7", a.Len())
	}
	if a.Find(func(e *Entity) bool { return e.Kind == KindObstacle && e.Depth == 1 }) != nil {
		t.Error("removed entity still findable")
	}
}

func TestArenaRemoveIfCoversPending(t *testing.T) {
	a := NewArena()
	a.Spawn(Entity{Kind: KindObstacle, Obstacle: ObstaclePit})
	a.Sweep()
	a.Spawn(Entity{Kind: KindCollectible})
	a.Spawn(Entity{Kind: KindObstacle, Obstacle: ObstacleBlock})

	n := a.RemoveIf(func(e *Entity) bool { return !e.IsPit() })
	if n != 2 {
		t.Errorf("RemoveIf removed %d, expected 2", n)
	}
	a.Sweep()
	if a.Len() != 1 || countKind(a, KindObstacle) != 1 {
		t.Errorf("only the pit should remain, Len() = %d", a.Len())
	}
}

func TestArenaScrollAndSwept(t *testing.T) {
	a := NewArena()
	a.Spawn(Entity{Kind: KindObstacle, Depth: 30})
	a.Sweep()
	a.Scroll(50)

	e := a.Find(func(*Entity) bool { return true })
	if e.PrevDepth != 30 || e.Depth != -20 {
		t.Fatalf("after Scroll: prev %g depth %g", e.PrevDepth, e.Depth)
	}
	if !e.Swept(-5, 5) {
		t.Error("movement through 0 should overlap [-5, 5]")
	}
	if e.Swept(31, 40) {
		t.Error("movement below 30 should not overlap [31, 40]")
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena()
	a.Spawn(Entity{})
	a.Sweep()
	a.Spawn(Entity{})
	a.Reset()
	if a.Len() != 0 || len(a.Entities()) != 0 {
		t.Error("Reset should drop live and pending entities")
	}
	if id := a.Spawn(Entity{}); id != 1 {
		t.Errorf("IDs restart at 1 after Reset, got %d", id)
	}
}
