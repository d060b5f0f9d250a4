package runner

// IntentKind is a discrete player request.
type IntentKind uint8

const (
	IntentMoveLane IntentKind = iota
	IntentJump
	IntentSlide
	IntentActivateBoost
)

// String returns the intent name.
func (k IntentKind) String() string {
	switch k {
	case IntentMoveLane:
		return "move"
	case IntentJump:
		return "jump"
	case IntentSlide:
		return "slide"
	case IntentActivateBoost:
		return "boost"
	default:
		return "unknown"
	}
}

// Intent is what the input collaborator hands the simulation.
// Dir is the raw lane direction; Apply flips it while controls are reversed.
type Intent struct {
	Kind  IntentKind `msgpack:"k"`
	Dir   int8       `msgpack:"d,omitempty"`
	Boost BoostType  `msgpack:"b,omitempty"`
}

// MoveLane requests a lane change; dir is -1 (left) or +1 (right).
func MoveLane(dir int8) Intent { return Intent{Kind: IntentMoveLane, Dir: dir} }

// Jump requests a jump.
func Jump() Intent { return Intent{Kind: IntentJump} }

// Slide requests a slide.
func Slide() Intent { return Intent{Kind: IntentSlide} }

// ActivateBoost requests a boost activation.
func ActivateBoost(b BoostType) Intent { return Intent{Kind: IntentActivateBoost, Boost: b} }

// Apply consumes one intent. It reports whether the intent changed anything;
// intents outside a running, unpaused run are dropped.
func (s *Sim) Apply(in Intent) bool {
	if !s.run.Active || s.paused {
		return false
	}

	switch in.Kind {
	case IntentMoveLane:
		dir := 0
		switch {
		case in.Dir < 0:
			dir = -1
		case in.Dir > 0:
			dir = 1
		}
		if s.whale.ControlsReversed {
			dir = -dir
		}
		return dir != 0 && s.player.MoveLane(dir)
	case IntentJump:
		return s.player.Jump()
	case IntentSlide:
		return s.player.Slide()
	case IntentActivateBoost:
		if !s.boosts.Activate(in.Boost) {
			return false
		}
		s.ctx.Emit(BoostActivated{Boost: in.Boost})
		return true
	}
	return false
}
