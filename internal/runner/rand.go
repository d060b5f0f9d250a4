package runner

import "math/rand/v2"

// Source is the random draw surface the simulation consumes.
// Every draw in a run goes through one Source so a run replays exactly from its seed.
type Source interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

// NewSource returns a seeded PCG source.
func NewSource(seed int64) Source {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}

// pickWeighted returns the index of the first entry whose cumulative weight
// meets a draw in (0, total]. Returns 0 when every weight is zero.
func pickWeighted(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	// Float draw scaled into (0, total] so the first template wins a tie.
	roll := (1 - src.Float64()) * float64(total)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if float64(cumulative) >= roll {
			return i
		}
	}
	return len(weights) - 1
}
