package core

// Action represents a semantic player action, abstracted from physical key presses.
// The platform maps keys (or an SSH session's keys) onto these; the game maps them
// onto simulation intents.
type Action int

const (
	ActionNone Action = iota
	// A, Left arrow - move one lane left
	ActionLeft
	// D, Right arrow - move one lane right
	ActionRight
	// W, Up, Space - jump
	ActionJump
	// S, Down - slide
	ActionSlide
	// 1 - activate double score
	ActionBoostDouble
	// 2 - activate shield
	ActionBoostShield
	// 3 - activate magnet
	ActionBoostMagnet
	// P, Escape - pause/unpause
	ActionPause
	// R - restart the run
	ActionRestart
	// L - show the leaderboard after game over
	ActionLeaderboard
	// Q, Ctrl+C - exit
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionSlide:
		return "Slide"
	case ActionBoostDouble:
		return "Double"
	case ActionBoostShield:
		return "Shield"
	case ActionBoostMagnet:
		return "Magnet"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick, in the
// order they arrived. Order matters: two lane changes in one frame move two lanes.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
