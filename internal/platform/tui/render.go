package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trench-runner/internal/core"
)

// colorStyles maps palette slots to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorTrack:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHazard:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorCoin:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBoost:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhale:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBronze:  lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorSilver:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorDiamond: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorNeon:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
