package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trench-runner/internal/core"
)

// KeyMap binds keys to runner actions. It also feeds the help footer.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Jump        key.Binding
	Slide       key.Binding
	Double      key.Binding
	Shield      key.Binding
	Magnet      key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Leaderboard key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Slide, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Slide},
		{k.Double, k.Shield, k.Magnet},
		{k.Pause, k.Restart, k.Leaderboard, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Slide: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "slide"),
		),
		Double: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "double"),
		),
		Shield: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "shield"),
		),
		Magnet: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "magnet"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("L", "tab"),
			key.WithHelp("L", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action. Returns ActionNone for
// unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Slide):
		return core.ActionSlide
	case key.Matches(msg, k.Double):
		return core.ActionBoostDouble
	case key.Matches(msg, k.Shield):
		return core.ActionBoostShield
	case key.Matches(msg, k.Magnet):
		return core.ActionBoostMagnet
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Leaderboard):
		return core.ActionLeaderboard
	}
	return core.ActionNone
}
