package runner

import (
	"fmt"

	"github.com/vovakirdan/trench-runner/internal/config"
)

// BoostType identifies a boost.
type BoostType uint8

const (
	BoostNone BoostType = iota
	BoostDouble
	BoostShield
	BoostMagnet
	boostTypeCount
)

// BoostTypes lists the activatable boosts in HUD order.
var BoostTypes = [...]BoostType{BoostDouble, BoostShield, BoostMagnet}

// String returns the boost name.
func (b BoostType) String() string {
	switch b {
	case BoostDouble:
		return "double"
	case BoostShield:
		return "shield"
	case BoostMagnet:
		return "magnet"
	default:
		return "none"
	}
}

// Glyph returns the display character for a boost pickup.
func (b BoostType) Glyph() rune {
	switch b {
	case BoostDouble:
		return 'D'
	case BoostShield:
		return 'S'
	case BoostMagnet:
		return 'M'
	default:
		return '?'
	}
}

// ParseBoost maps a name onto a BoostType.
func ParseBoost(s string) (BoostType, error) {
	for _, b := range BoostTypes {
		if b.String() == s {
			return b, nil
		}
	}
	return BoostNone, fmt.Errorf("unknown boost %q", s)
}

// Charge is the per-type meter: pickups toward the next unit, and ready units.
type Charge struct {
	Charge    int
	Available int
}

// Inventory holds boost charges and the active boost timers.
type Inventory struct {
	cfg   config.BoostConfig
	slots [boostTypeCount]Charge

	ActiveBoost BoostType // Only BoostDouble occupies the exclusive slot
	BoostTimer  float64
	HasShield   bool
	ShieldTimer float64
	HasMagnet   bool
	MagnetTimer float64

	Used int // Lifetime activations this run
}

// NewInventory creates an empty inventory.
func NewInventory(cfg config.BoostConfig) Inventory {
	return Inventory{cfg: cfg}
}

// Slot returns the meter for a boost type.
func (inv Inventory) Slot(b BoostType) Charge {
	if b == BoostNone || b >= boostTypeCount {
		return Charge{}
	}
	return inv.slots[b]
}

// ChargesNeeded returns pickups per usable unit.
func (inv Inventory) ChargesNeeded() int {
	return inv.cfg.ChargesNeeded
}

// Pickup adds one charge and reports whether it rolled over into a ready unit.
func (inv *Inventory) Pickup(b BoostType) bool {
	if b == BoostNone || b >= boostTypeCount {
		return false
	}
	slot := &inv.slots[b]
	slot.Charge++
	if slot.Charge >= inv.cfg.ChargesNeeded {
		slot.Charge = 0
		slot.Available++
		return true
	}
	return false
}

// Activate consumes one ready unit. With none available it changes nothing and returns false.
func (inv *Inventory) Activate(b BoostType) bool {
	if b == BoostNone || b >= boostTypeCount || inv.slots[b].Available <= 0 {
		return false
	}
	inv.slots[b].Available--
	inv.Used++

	switch b {
	case BoostDouble:
		inv.ActiveBoost = BoostDouble
		inv.BoostTimer = inv.cfg.DoubleDuration
	case BoostShield:
		inv.HasShield = true
		inv.ShieldTimer = inv.cfg.ShieldDuration
	case BoostMagnet:
		inv.HasMagnet = true
		inv.MagnetTimer = inv.cfg.MagnetDuration
	}
	return true
}

// Double reports whether the double-score window is open.
func (inv Inventory) Double() bool {
	return inv.ActiveBoost == BoostDouble
}

// ConsumeShield drops an active shield and reports whether there was one.
func (inv *Inventory) ConsumeShield() bool {
	if !inv.HasShield {
		return false
	}
	inv.HasShield = false
	inv.ShieldTimer = 0
	return true
}

// Tick decrements every active timer and returns the boosts that just expired.
func (inv *Inventory) Tick(dt float64) []BoostType {
	var expired []BoostType

	if inv.ActiveBoost != BoostNone {
		inv.BoostTimer -= dt
		if inv.BoostTimer <= timerEpsilon {
			expired = append(expired, inv.ActiveBoost)
			inv.ActiveBoost = BoostNone
			inv.BoostTimer = 0
		}
	}
	if inv.HasShield {
		inv.ShieldTimer -= dt
		if inv.ShieldTimer <= timerEpsilon {
			expired = append(expired, BoostShield)
			inv.HasShield = false
			inv.ShieldTimer = 0
		}
	}
	if inv.HasMagnet {
		inv.MagnetTimer -= dt
		if inv.MagnetTimer <= timerEpsilon {
			expired = append(expired, BoostMagnet)
			inv.HasMagnet = false
			inv.MagnetTimer = 0
		}
	}
	return expired
}
