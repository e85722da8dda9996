package sim

import (
	"math"

	"github.com/servetkarckay/neon-runner-sub001/internal/config"
)

// ObstacleField owns the live obstacle list. Every tick it scrolls the
// obstacles left, applies variant-specific motion, and retires
// instances back to the pool once they scroll past the retirement
// threshold.
type ObstacleField struct {
	cfg    *config.RunnerConfig
	pool   *Pool[Obstacle]
	active []*Obstacle
}

// NewObstacleField creates an empty field recycling through pool.
func NewObstacleField(cfg *config.RunnerConfig, pool *Pool[Obstacle]) *ObstacleField {
	return &ObstacleField{
		cfg:    cfg,
		pool:   pool,
		active: make([]*Obstacle, 0, 16),
	}
}

// Add inserts a freshly spawned obstacle into the field.
func (f *ObstacleField) Add(o *Obstacle) {
	f.active = append(f.active, o)
}

// Active returns the live obstacle list. Callers must not retain the
// slice or its elements across ticks.
func (f *ObstacleField) Active() []*Obstacle {
	return f.active
}

// Reset releases every live obstacle back to the pool.
func (f *ObstacleField) Reset() {
	for _, o := range f.active {
		f.pool.Release(o)
	}
	f.active = f.active[:0]
}

// Tick advances obstacle motion by dt ticks at the given scroll speed.
func (f *ObstacleField) Tick(dt float64, frame int, scrollSpeed float64) {
	m := f.cfg.Spawn.Motion
	groundY := f.cfg.World.GroundY

	kept := f.active[:0]
	for _, o := range f.active {
		startX, startY := o.X, o.Y
		o.X -= scrollSpeed * dt

		switch o.Kind {
		case KindMovingAerial, KindHazardZone:
			o.Y = o.InitialY + math.Sin(float64(frame)*m.OscFrequency)*m.OscAmplitude

		case KindMovingPlatform:
			if o.Axis == AxisHorizontal {
				o.X += math.Cos(float64(frame)*m.OscFrequency) * m.PlatformDrift * dt
			} else {
				o.Y = o.InitialY + math.Sin(float64(frame)*m.OscFrequency)*m.OscAmplitude
			}

		case KindFallingDrop:
			o.VelY += f.cfg.Spawn.FallingDrop.Gravity * dt
			o.Y += o.VelY * dt
			// Drops retire the instant they reach the ground, not when
			// they scroll off-screen.
			if o.Y+o.H >= groundY {
				f.pool.Release(o)
				continue
			}

		case KindRotatingLaser:
			o.Angle += o.RotationSpeed * dt
		}

		o.TickDX = o.X - startX
		o.TickDY = o.Y - startY

		if o.X+o.W < f.cfg.Spawn.RetireX {
			f.pool.Release(o)
			continue
		}
		kept = append(kept, o)
	}
	// Drop stale tail pointers so released obstacles are not pinned.
	for i := len(kept); i < len(f.active); i++ {
		f.active[i] = nil
	}
	f.active = kept
}

// PowerUpField owns the live power-up list and applies scroll, bobbing,
// magnet attraction and time-warp slowdown.
type PowerUpField struct {
	cfg    *config.RunnerConfig
	pool   *Pool[PowerUp]
	active []*PowerUp
}

// NewPowerUpField creates an empty field recycling through pool.
func NewPowerUpField(cfg *config.RunnerConfig, pool *Pool[PowerUp]) *PowerUpField {
	return &PowerUpField{
		cfg:    cfg,
		pool:   pool,
		active: make([]*PowerUp, 0, 8),
	}
}

// Add inserts a freshly spawned power-up into the field.
func (f *PowerUpField) Add(p *PowerUp) {
	f.active = append(f.active, p)
}

// Active returns the live power-up list.
func (f *PowerUpField) Active() []*PowerUp {
	return f.active
}

// Reset releases every live power-up back to the pool.
func (f *PowerUpField) Reset() {
	for _, p := range f.active {
		f.pool.Release(p)
	}
	f.active = f.active[:0]
}

// Tick advances power-up motion. While the player's time warp is
// active, the ambient scroll applied to power-ups is scaled by the
// configured factor; obstacles are unaffected. A magnet-holding player
// pulls power-ups inside the capture radius toward their center
// instead of letting them scroll.
func (f *PowerUpField) Tick(dt float64, frame int, scrollSpeed float64, player *Player) {
	pu := &f.cfg.PowerUps

	effectiveScroll := scrollSpeed
	if player.TimeWarpTimer > 0 {
		effectiveScroll *= pu.TimeWarpFactor
	}

	playerCX := player.X + player.W/2
	playerCY := player.Y + player.H/2

	kept := f.active[:0]
	for _, p := range f.active {
		if !p.Active {
			f.pool.Release(p)
			continue
		}

		cx, cy := p.X+p.W/2, p.Y+p.H/2
		if player.HasMagnet && Dist(cx, cy, playerCX, playerCY) <= pu.MagnetRadius {
			// Captured: accelerate toward the player's center.
			dx, dy := playerCX-cx, playerCY-cy
			d := math.Hypot(dx, dy)
			if d > 0 {
				p.X += dx / d * pu.MagnetPull * dt
				p.Y += dy / d * pu.MagnetPull * dt
			}
		} else {
			p.X -= effectiveScroll * dt
			p.FloatOffset += pu.FloatFrequency * dt
			p.Y += math.Sin(p.FloatOffset) * pu.FloatAmplitude * pu.FloatFrequency
		}

		if p.X+p.W < f.cfg.Spawn.RetireX {
			f.pool.Release(p)
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(f.active); i++ {
		f.active[i] = nil
	}
	f.active = kept
}
