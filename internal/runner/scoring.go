package runner

import (
	"math"

	"github.com/vovakirdan/trench-runner/internal/config"
	"github.com/vovakirdan/trench-runner/internal/core"
)

// timerEpsilon absorbs float drift when countdowns are driven by summed dt.
const timerEpsilon = 1e-9

// ComboState is the combo meter.
type ComboState struct {
	Count    int     // Combo length
	Progress int     // Pickups toward the next step
	Timer    float64 // Seconds before the combo is lost
}

// Scoring accumulates the three score categories and the combo meter.
type Scoring struct {
	cfg   config.ComboConfig
	Combo ComboState

	DistanceScore float64
	CoinScore     float64
	WhaleScore    float64
	Tokens        int // Collectibles picked up
	WhaleTokens   int
	MaxCombo      int
}

// NewScoring creates zeroed scoring.
func NewScoring(cfg config.ComboConfig) Scoring {
	return Scoring{cfg: cfg}
}

// Collect registers a collectible pickup and returns the points awarded:
// base x combo factor x multiplier, where the factor is the combo count (at least 1)
// and doubles while the double boost is active.
func (s *Scoring) Collect(base int, multiplier float64, double bool) float64 {
	s.Combo.Progress++
	if s.Combo.Progress >= s.cfg.ChargesNeeded {
		s.Combo.Progress = 0
		if s.Combo.Count < s.cfg.MaxCount {
			s.Combo.Count++
		}
	}
	s.Combo.Timer = s.cfg.Window
	if s.Combo.Count > s.MaxCombo {
		s.MaxCombo = s.Combo.Count
	}

	factor := float64(core.Max(s.Combo.Count, 1))
	if double {
		factor *= 2
	}
	points := safePoints(float64(base) * factor * multiplier)
	s.CoinScore += points
	s.Tokens++
	return points
}

// WhaleToken awards the fixed whale reward scaled by multiplier and the double boost.
// The combo meter is not involved.
func (s *Scoring) WhaleToken(value int, multiplier float64, double bool) float64 {
	points := float64(value) * multiplier
	if double {
		points *= 2
	}
	points = safePoints(points)
	s.WhaleScore += points
	s.WhaleTokens++
	return points
}

// AddDistance accrues distance points; they do not depend on the combo.
func (s *Scoring) AddDistance(points float64) {
	s.DistanceScore += safePoints(points)
}

// Tick decays the combo timer. It returns the count that was lost, or 0.
func (s *Scoring) Tick(dt float64) int {
	if s.Combo.Timer <= 0 {
		return 0
	}
	s.Combo.Timer -= dt
	if s.Combo.Timer > timerEpsilon {
		return 0
	}
	lost := s.Combo.Count
	s.Combo = ComboState{}
	return lost
}

// Total returns the running sum of every category.
func (s *Scoring) Total() float64 {
	return s.DistanceScore + s.CoinScore + s.WhaleScore
}

// safePoints clamps NaN, infinities and negatives to zero.
func safePoints(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}

// wholePoints converts an accumulator to displayed points.
func wholePoints(p float64) int {
	return int(math.Floor(safePoints(p)))
}
