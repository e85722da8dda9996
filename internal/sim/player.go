package sim

import "github.com/servetkarckay/neon-runner-sub001/internal/config"

// PlayerInput is the per-tick input intent, already resolved from
// whatever device produced it.
type PlayerInput struct {
	JumpPressed bool // Jump was pressed this tick
	JumpHeld    bool // Jump is still held down
	DuckHeld    bool // Duck is held down
}

// Player is the single player entity. Height is always one of exactly
// two values, standing or ducking.
type Player struct {
	X, Y float64
	VelY float64
	W, H float64

	IsJumping     bool
	IsHoldingJump bool
	IsDucking     bool

	JumpTimer       int
	JumpBufferTimer int
	InvincibleTimer int
	MultiplierTimer int
	TimeWarpTimer   int
	MagnetTimer     int

	HasShield bool
	HasMagnet bool
	IsGrazing bool

	ScoreMultiplier float64
}

// Physics integrates the player's vertical movement. It cannot fail;
// out-of-range input is simply ignored.
type Physics struct {
	phys    config.PhysicsConfig
	body    config.PlayerConfig
	groundY float64
}

// NewPhysics creates the physics integrator for the given config.
func NewPhysics(cfg *config.RunnerConfig) *Physics {
	return &Physics{
		phys:    cfg.Physics,
		body:    cfg.Player,
		groundY: cfg.World.GroundY,
	}
}

// ResetPlayer restores a player to the run-start state: standing on the
// ground line with every timer, flag and power-up effect cleared.
func (ph *Physics) ResetPlayer(p *Player) {
	*p = Player{
		X:               ph.body.X,
		Y:               ph.groundY - ph.body.StandHeight,
		W:               ph.body.Width,
		H:               ph.body.StandHeight,
		ScoreMultiplier: 1,
	}
}

// Advance integrates one tick of player movement.
func (ph *Physics) Advance(p *Player, in PlayerInput) {
	ph.applyDuck(p, in.DuckHeld)

	if in.JumpPressed {
		if !p.IsJumping {
			ph.startJump(p)
		} else {
			// Airborne press: remember it for the buffer window so a
			// slightly-early press still jumps on landing.
			p.JumpBufferTimer = ph.phys.JumpBufferTicks
		}
	}
	p.IsHoldingJump = in.JumpHeld

	if p.IsJumping {
		// Holding jump sustains the ascent up to the hold limit.
		if p.IsHoldingJump && p.JumpTimer < ph.phys.MaxJumpHoldTicks {
			p.VelY -= ph.phys.JumpHoldForce
			p.JumpTimer++
		}

		p.VelY += ph.phys.Gravity
		if p.VelY > ph.phys.MaxFallSpeed {
			p.VelY = ph.phys.MaxFallSpeed
		}
		p.Y += p.VelY

		// Ground clamp: never integrate below the ground line.
		if p.Y+p.H >= ph.groundY {
			p.Y = ph.groundY - p.H
			p.VelY = 0
			p.IsJumping = false
			p.JumpTimer = 0
			if p.JumpBufferTimer > 0 {
				p.JumpBufferTimer = 0
				ph.startJump(p)
			}
		}
	}

	ph.tickTimers(p)
}

// applyDuck swaps between the two fixed heights. The swap recenters the
// hitbox so its bottom edge stays where it was, glued to the ground
// line when grounded.
func (ph *Physics) applyDuck(p *Player, duckHeld bool) {
	if duckHeld && !p.IsDucking {
		bottom := p.Y + p.H
		p.H = ph.body.DuckHeight
		p.Y = bottom - p.H
		p.IsDucking = true
	} else if !duckHeld && p.IsDucking {
		bottom := p.Y + p.H
		p.H = ph.body.StandHeight
		p.Y = bottom - p.H
		p.IsDucking = false
	}
}

func (ph *Physics) startJump(p *Player) {
	p.IsJumping = true
	p.VelY = -ph.phys.JumpForce
	p.JumpTimer = 0
}

// tickTimers counts down the per-tick timers and syncs the flags
// derived from them.
func (ph *Physics) tickTimers(p *Player) {
	if p.JumpBufferTimer > 0 {
		p.JumpBufferTimer--
	}
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
	}
	if p.MultiplierTimer > 0 {
		p.MultiplierTimer--
		if p.MultiplierTimer == 0 {
			p.ScoreMultiplier = 1
		}
	}
	if p.TimeWarpTimer > 0 {
		p.TimeWarpTimer--
	}
	if p.MagnetTimer > 0 {
		p.MagnetTimer--
	}
	p.HasMagnet = p.MagnetTimer > 0
}

// Hitbox returns the forgiving collision rect: the player's bounding
// rect inset by the configured padding on all sides.
func (ph *Physics) Hitbox(p *Player) Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}.Inset(ph.body.HitboxPadding)
}

// GroundY returns the ground line the physics clamps against.
func (ph *Physics) GroundY() float64 {
	return ph.groundY
}
