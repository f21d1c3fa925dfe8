package runner

import (
	"github.com/arcadehop/hopper/internal/config"
	"github.com/arcadehop/hopper/internal/core"
)

// Player is the runner's physics body. Horizontal position is fixed; only
// the vertical axis integrates. The ground line is a hard floor: landing
// snaps Y exactly and zeroes velocity, so grounded reads true on the very
// next jump attempt and no sub-pixel drift accumulates.
type Player struct {
	X, Y float64 // Top-left corner in world units
	Vel  float64 // Vertical velocity, positive = down
	W, H float64

	groundY float64
	phys    config.PhysicsConfig
}

// NewPlayer creates a player resting on the ground line.
func NewPlayer(cfg config.PlayerConfig, phys config.PhysicsConfig, groundY float64) *Player {
	p := &Player{
		X:       cfg.X,
		W:       cfg.Width,
		H:       cfg.Height,
		groundY: groundY,
		phys:    phys,
	}
	p.Reset()
	return p
}

// Reset snaps the player to the ground and zeroes velocity.
// Called on every (re)start.
func (p *Player) Reset() {
	p.Y = p.groundY - p.H
	p.Vel = 0
}

// Grounded reports whether the player rests on the ground line.
// Derived, not stored: Y is snapped exactly on landing so equality holds.
func (p *Player) Grounded() bool {
	return p.Y >= p.groundY-p.H
}

// Rect returns the player's visual bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Update integrates one tick. The jump impulse replaces velocity (not
// additive) and only fires while grounded, so jump intents held or
// repeated while airborne are no-ops. Returns whether a jump launched
// this tick so the session can emit the cue.
func (p *Player) Update(in core.InputFrame, dt float64) (jumped bool) {
	if in.Has(core.ActionJump) && p.Grounded() {
		p.Vel = -p.phys.JumpForce
		jumped = true
	}

	p.Y += p.Vel * dt

	if p.Grounded() {
		p.Y = p.groundY - p.H
		p.Vel = 0
		return jumped
	}

	p.Vel += p.phys.Gravity * dt
	if in.Has(core.ActionFastFall) {
		// Independent of and additive to gravity
		p.Vel += p.phys.FastFallAccel * dt
	}
	return jumped
}
