// Package tier classifies a player's token balance into a holder tier.
// The tier only picks cosmetic feedback; it never changes simulation rules.
package tier

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/trench-runner/internal/core"
)

// Tier is a holder tier, ordered from lowest to highest.
type Tier uint8

const (
	None Tier = iota
	Bronze
	Silver
	Gold
	Diamond
)

// Balance thresholds, ascending.
var thresholds = [...]struct {
	tier Tier
	min  int64
}{
	{Diamond, 1_000_000},
	{Gold, 100_000},
	{Silver, 10_000},
	{Bronze, 1_000},
}

// FromBalance returns the highest tier whose threshold the balance meets.
func FromBalance(balance int64) Tier {
	for _, th := range thresholds {
		if balance >= th.min {
			return th.tier
		}
	}
	return None
}

// Parse maps a stored tier name back to a Tier.
func Parse(s string) (Tier, error) {
	for t := None; t <= Diamond; t++ {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return None, fmt.Errorf("tier: unknown tier %q", s)
}

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case Bronze:
		return "bronze"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	case Diamond:
		return "diamond"
	default:
		return "none"
	}
}

// Label returns the leaderboard badge.
func (t Tier) Label() string {
	if t == None {
		return ""
	}
	return strings.ToUpper(t.String()[:1]) + t.String()[1:]
}

// Tint suggests the player color for the tier.
func (t Tier) Tint() core.Color {
	switch t {
	case Bronze:
		return core.ColorBronze
	case Silver:
		return core.ColorSilver
	case Gold:
		return core.ColorGold
	case Diamond:
		return core.ColorDiamond
	default:
		return core.ColorNeon
	}
}
