package runner

// Event is one outcome of a simulation tick, surfaced to the rendering and
// persistence collaborators. The set is closed: only this package implements it.
type Event interface {
	simEvent()
}

// Pickup is emitted when a collectible is collected.
type Pickup struct {
	Item   string
	Points int
	Combo  int
}

// ComboLost is emitted when the combo timer runs out.
type ComboLost struct {
	Count int
}

// BoostCharged is emitted when a boost pickup is collected.
type BoostCharged struct {
	Boost     BoostType
	Charge    int
	Available int
	Ready     bool // The pickup rolled over into a usable unit
}

// BoostActivated is emitted when a ready unit is consumed.
type BoostActivated struct {
	Boost BoostType
}

// BoostExpired is emitted when a boost timer runs out.
type BoostExpired struct {
	Boost BoostType
}

// SaveKind says what absorbed a fatal hit.
type SaveKind uint8

const (
	SaveShield SaveKind = iota
	SaveExtraLife
)

// String returns the save name.
func (k SaveKind) String() string {
	if k == SaveExtraLife {
		return "extra-life"
	}
	return "shield"
}

// Save is emitted when a fatal hit was absorbed.
type Save struct {
	Kind         SaveKind
	Invincible   float64
	ObstacleType ObstacleType
}

// ExtraLifeGranted is emitted when surviving a manipulation grants an extra life.
type ExtraLifeGranted struct{}

// WhaleUnlocked is emitted once per run.
type WhaleUnlocked struct {
	NextEvent float64
}

// ManipulationStarted is emitted when controls are reversed.
type ManipulationStarted struct {
	Duration float64
}

// ManipulationEnded is emitted when controls return to normal.
type ManipulationEnded struct {
	NextEvent float64
}

// TrailStarted is emitted when a trail begins.
type TrailStarted struct {
	Path []Waypoint
}

// TrailBubble is emitted for every in-order bubble.
type TrailBubble struct {
	Sequence int
	Progress int
	Length   int
}

// TrailEnded is emitted when a trail succeeds or fails.
type TrailEnded struct {
	Success   bool
	Reason    string
	NextEvent float64
}

// WhaleToken is emitted when the whale reward is collected.
type WhaleToken struct {
	Points int
}

// WhaleFault is emitted when the whale tick failed and was reset to idle.
type WhaleFault struct {
	Err error
}

// GameOver is emitted once, on the tick the run ends.
type GameOver struct {
	Breakdown Breakdown
	NewBest   bool
}

func (Pickup) simEvent()              {}
func (ComboLost) simEvent()           {}
func (BoostCharged) simEvent()        {}
func (BoostActivated) simEvent()      {}
func (BoostExpired) simEvent()        {}
func (Save) simEvent()                {}
func (ExtraLifeGranted) simEvent()    {}
func (WhaleUnlocked) simEvent()       {}
func (ManipulationStarted) simEvent() {}
func (ManipulationEnded) simEvent()   {}
func (TrailStarted) simEvent()        {}
func (TrailBubble) simEvent()         {}
func (TrailEnded) simEvent()          {}
func (WhaleToken) simEvent()          {}
func (WhaleFault) simEvent()          {}
func (GameOver) simEvent()            {}
