package runner

import (
	"github.com/vovakirdan/trench-runner/internal/config"
	"github.com/vovakirdan/trench-runner/internal/core"
)

// Player is the runner's lane and vertical motion.
type Player struct {
	cfg   config.PlayerConfig
	lanes int

	Lane       int
	Height     float64 // Above the track; > 0 while airborne
	VelY       float64
	Jumping    bool
	Sliding    bool
	SlideTimer float64
}

// NewPlayer places a grounded player in the configured start lane.
func NewPlayer(cfg config.PlayerConfig, lanes int) Player {
	return Player{
		cfg:   cfg,
		lanes: lanes,
		Lane:  core.Clamp(cfg.StartLane, 0, lanes-1),
	}
}

// MoveLane shifts the player by dir lanes, clamped to the track.
// It reports whether the lane changed.
func (p *Player) MoveLane(dir int) bool {
	next := core.Clamp(p.Lane+dir, 0, p.lanes-1)
	if next == p.Lane {
		return false
	}
	p.Lane = next
	return true
}

// Jump starts a jump when grounded and not sliding.
func (p *Player) Jump() bool {
	if p.Jumping || p.Sliding {
		return false
	}
	p.Jumping = true
	p.VelY = p.cfg.JumpVelocity
	return true
}

// Slide starts a slide when grounded.
func (p *Player) Slide() bool {
	if p.Jumping || p.Sliding {
		return false
	}
	p.Sliding = true
	p.SlideTimer = p.cfg.SlideDuration
	return true
}

// Airborne reports whether obstacles pass beneath the player.
func (p *Player) Airborne() bool {
	return p.Jumping && p.Height > 0
}

// AirTime returns the full jump duration for the configured physics.
func (p *Player) AirTime() float64 {
	if p.cfg.Gravity <= 0 {
		return 0
	}
	return 2 * p.cfg.JumpVelocity / p.cfg.Gravity
}

// Update integrates jump physics and the slide timer.
func (p *Player) Update(dt float64) {
	if p.Jumping {
		p.VelY -= p.cfg.Gravity * dt
		p.Height += p.VelY * dt
		if p.Height <= 0 {
			p.Height = 0
			p.VelY = 0
			p.Jumping = false
		}
	}
	if p.Sliding {
		p.SlideTimer -= dt
		if p.SlideTimer <= timerEpsilon {
			p.SlideTimer = 0
			p.Sliding = false
		}
	}
}
