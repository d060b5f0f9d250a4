package runner

import "math"

// Breakdown is the final (or running) score split handed to the persistence
// and game-over collaborators.
type Breakdown struct {
	Score         int
	Distance      int
	Tokens        int
	Multiplier    float64
	DistanceScore int
	CoinScore     int
	WhaleScore    int
	MaxCombo      int
	BoostsUsed    int
	WhaleTokens   int
	Best          int
}

// Breakdown returns the current score split. Negative or NaN values read as 0.
func (s *Sim) Breakdown() Breakdown {
	mult := s.run.Multiplier
	if math.IsNaN(mult) || mult < 1 {
		mult = 1
	}
	return Breakdown{
		Score:         wholePoints(s.score.Total()),
		Distance:      wholePoints(s.run.Distance),
		Tokens:        s.score.Tokens,
		Multiplier:    mult,
		DistanceScore: wholePoints(s.score.DistanceScore),
		CoinScore:     wholePoints(s.score.CoinScore),
		WhaleScore:    wholePoints(s.score.WhaleScore),
		MaxCombo:      s.score.MaxCombo,
		BoostsUsed:    s.boosts.Used,
		WhaleTokens:   s.score.WhaleTokens,
		Best:          s.best,
	}
}

// Snapshot is a flat copy of the run for determinism checks and debugging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Distance   float64
	Speed      float64
	Multiplier float64
	Score      float64
	Lane       int
	Height     float64

	ComboCount    int
	ComboProgress int
	ComboTimer    float64

	// Per boost type: Charge, Available
	Charges     []int
	BoostsUsed  int
	ActiveBoost int
	HasShield   bool
	HasMagnet   bool
	ExtraLife   bool

	WhaleMode     string
	NextWhale     float64
	TrailProgress int

	// Each entity is Kind, Lane, Depth
	EntityCount int
	EntityData  []float64

	NextLayout float64
	NextBoost  float64
}

// Snapshot returns the current run as a Snapshot.
func (s *Sim) Snapshot() Snapshot {
	charges := make([]int, 0, len(BoostTypes)*2)
	for _, b := range BoostTypes {
		slot := s.boosts.Slot(b)
		charges = append(charges, slot.Charge, slot.Available)
	}

	entities := s.arena.Entities()
	data := make([]float64, 0, len(entities)*3)
	for _, e := range entities {
		data = append(data, float64(e.Kind), e.Lane, e.Depth)
	}

	return Snapshot{
		Tick:          s.run.Ticks,
		Phase:         s.phase.String(),
		Distance:      s.run.Distance,
		Speed:         s.run.Speed,
		Multiplier:    s.run.Multiplier,
		Score:         s.score.Total(),
		Lane:          s.player.Lane,
		Height:        s.player.Height,
		ComboCount:    s.score.Combo.Count,
		ComboProgress: s.score.Combo.Progress,
		ComboTimer:    s.score.Combo.Timer,
		Charges:       charges,
		BoostsUsed:    s.boosts.Used,
		ActiveBoost:   int(s.boosts.ActiveBoost),
		HasShield:     s.boosts.HasShield,
		HasMagnet:     s.boosts.HasMagnet,
		ExtraLife:     s.run.ExtraLife,
		WhaleMode:     s.whale.Mode().String(),
		NextWhale:     s.whale.NextEventDistance,
		TrailProgress: s.whale.TrailProgress,
		EntityCount:   len(entities),
		EntityData:    data,
		NextLayout:    s.spawner.NextLayout,
		NextBoost:     s.spawner.NextBoost,
	}
}
