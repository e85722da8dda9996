package sim

import (
	"math"
	"math/rand"

	"github.com/servetkarckay/neon-runner-sub001/internal/config"
)

// Scheduler decides, each tick, whether to emit a new obstacle or
// power-up. Selection is driven by the ordered variant table from the
// config and a seeded RNG, so a run is fully deterministic for a seed.
type Scheduler struct {
	cfg *config.RunnerConfig
	rng *rand.Rand

	obstacles *Pool[Obstacle]
	powerups  *Pool[PowerUp]

	nextID   int
	prevKind ObstacleKind
	hasPrev  bool
}

// NewScheduler creates a scheduler drawing instances from the given pools.
func NewScheduler(seed int64, cfg *config.RunnerConfig, obstacles *Pool[Obstacle], powerups *Pool[PowerUp]) *Scheduler {
	s := &Scheduler{
		cfg:       cfg,
		obstacles: obstacles,
		powerups:  powerups,
	}
	s.Reset(seed)
	return s
}

// Reset reseeds the RNG and clears the spawn history.
func (s *Scheduler) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.nextID = 0
	s.hasPrev = false
}

// NextInterval draws the frame gap until the next obstacle spawn from
// the configured [min, max] range, narrowed by the difficulty level.
func (s *Scheduler) NextInterval(diff *config.DifficultyManager, score, ticks int) int {
	lo, hi := s.cfg.Spawn.MinInterval, s.cfg.Spawn.MaxInterval
	if diff != nil {
		lo, hi = diff.SpawnInterval(lo, hi, score, ticks)
	}
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// NextPowerUpInterval draws the frame gap until the next power-up roll.
func (s *Scheduler) NextPowerUpInterval() int {
	lo, hi := s.cfg.PowerUps.MinInterval, s.cfg.PowerUps.MaxInterval
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// MaybeSpawnObstacle emits a new obstacle when the frame threshold has
// been reached, nil otherwise. Spawning is never skipped once the
// threshold is reached: variant selection always falls back to ground.
func (s *Scheduler) MaybeSpawnObstacle(frame, nextSpawnFrame int, speed float64) *Obstacle {
	if frame < nextSpawnFrame {
		return nil
	}

	kind := s.pickKind(speed)

	o := s.obstacles.Acquire()
	s.nextID++
	o.ID = s.nextID
	o.Kind = kind
	s.buildGeometry(o, speed)

	if s.hasPrev {
		o.X += s.spacingExtra(s.prevKind, kind)
	}
	s.prevKind = kind
	s.hasPrev = true

	return o
}

// pickKind walks the ordered variant table and returns the first entry
// whose speed gate is exceeded and whose weight roll passes. The table
// is order-sensitive: first match wins. Defaults to ground.
func (s *Scheduler) pickKind(speed float64) ObstacleKind {
	for _, rule := range s.cfg.Spawn.Variants {
		if speed > rule.MinSpeed && s.rng.Float64() > rule.Weight {
			return ObstacleKindByName(rule.Kind)
		}
	}
	return KindGround
}

// spacingExtra looks up the anti-softlock x-offset for the (prev, next)
// variant pair. Zero when the pair has no configured correction.
func (s *Scheduler) spacingExtra(prev, next ObstacleKind) float64 {
	for _, rule := range s.cfg.Spawn.Spacing {
		if rule.Prev == prev.String() && rule.Next == next.String() {
			return rule.ExtraX
		}
	}
	return 0
}

// buildGeometry fills in the variant's size, position and motion fields.
func (s *Scheduler) buildGeometry(o *Obstacle, speed float64) {
	sp := &s.cfg.Spawn
	groundY := s.cfg.World.GroundY
	o.X = sp.SpawnX

	switch o.Kind {
	case KindGround:
		o.W = s.rangeF(sp.Ground.MinWidth, sp.Ground.MaxWidth)
		o.H = s.rangeF(sp.Ground.MinHeight, sp.Ground.MaxHeight)
		o.Y = groundY - o.H

	case KindAerial, KindMovingAerial:
		o.W = sp.Aerial.Width
		o.H = sp.Aerial.Height
		o.Y = sp.Aerial.LowY
		if s.rng.Intn(2) == 1 {
			o.Y = sp.Aerial.HighY
		}
		o.InitialY = o.Y

	case KindPlatform, KindMovingPlatform:
		o.W = sp.Platform.Width
		o.H = sp.Platform.Height
		o.Y = s.rangeF(sp.Platform.MinY, sp.Platform.MaxY)
		o.InitialY = o.Y
		if o.Kind == KindMovingPlatform {
			o.Axis = AxisVertical
			if s.rng.Intn(2) == 1 {
				o.Axis = AxisHorizontal
			}
		}

	case KindSpike:
		o.W = sp.Spike.Width
		o.H = sp.Spike.Height
		o.Y = groundY - o.H

	case KindHazardZone:
		o.W = sp.HazardZone.Width
		o.H = sp.HazardZone.Height
		o.Y = s.rangeF(sp.HazardZone.MinY, sp.HazardZone.MaxY)
		o.InitialY = o.Y

	case KindFallingDrop:
		o.W = sp.FallingDrop.Size
		o.H = sp.FallingDrop.Size
		o.Y = sp.FallingDrop.StartY
		o.InitialY = o.Y
		// Drop ahead of the spawn edge so it lands in the play area.
		o.X = sp.SpawnX - s.rangeF(0, s.cfg.World.Width/2)

	case KindRotatingLaser:
		o.W = sp.RotatingLaser.Size
		o.H = sp.RotatingLaser.Size
		o.Y = sp.RotatingLaser.LowY
		if s.rng.Intn(2) == 1 {
			o.Y = sp.RotatingLaser.HighY
		}
		o.InitialY = o.Y
		o.BeamLength = sp.RotatingLaser.BeamLength
		o.Angle = s.rng.Float64() * 2 * math.Pi
		o.RotationSpeed = s.rangeF(sp.RotatingLaser.MinRotSpeed, sp.RotatingLaser.MaxRotSpeed)

	case KindLaserGrid:
		o.W = sp.LaserGrid.Width
		o.Y = 0
		o.H = groundY // spans the full ground height
		o.GapY = s.rangeF(sp.LaserGrid.MinGapY, sp.LaserGrid.MaxGapY)
		o.GapHeight = sp.LaserGrid.GapHeight

	case KindSlantedSurface:
		o.W = sp.Slanted.Width
		o.H = sp.Slanted.Height
		o.Y = groundY - o.H
		// Diagonal runs bottom-left to top-right half the time.
		if s.rng.Intn(2) == 1 {
			o.LineX1, o.LineY1 = 0, o.H
			o.LineX2, o.LineY2 = o.W, 0
		} else {
			o.LineX1, o.LineY1 = 0, 0
			o.LineX2, o.LineY2 = o.W, o.H
		}
	}
}

// SpawnPowerUp rolls the banded probability table and places the
// power-up at one of the two configured heights.
func (s *Scheduler) SpawnPowerUp() *PowerUp {
	y := s.cfg.PowerUps.HeightA
	if s.rng.Intn(2) == 1 {
		y = s.cfg.PowerUps.HeightB
	}
	return s.SpawnPowerUpAt(s.rollPowerUpKind(), y)
}

// SpawnPowerUpAt places a power-up of the given kind at a fixed height.
// Used by practice flows that need a predictable pickup.
func (s *Scheduler) SpawnPowerUpAt(kind PowerUpKind, y float64) *PowerUp {
	p := s.powerups.Acquire()
	s.nextID++
	p.ID = s.nextID
	p.Kind = kind
	p.W = s.cfg.PowerUps.Size
	p.H = s.cfg.PowerUps.Size
	p.X = s.cfg.Spawn.SpawnX
	p.Y = y
	p.Active = true
	p.FloatOffset = s.rng.Float64() * 2 * math.Pi
	return p
}

// rollPowerUpKind picks a kind from the four cumulative probability
// bands. The bands sum to 1.0; a roll past the last band (possible only
// with a mistuned config) falls back to shield.
func (s *Scheduler) rollPowerUpKind() PowerUpKind {
	bands := s.cfg.PowerUps.Bands
	roll := s.rng.Float64()

	cumulative := bands.Shield
	if roll < cumulative {
		return PowerShield
	}
	cumulative += bands.Multiplier
	if roll < cumulative {
		return PowerMultiplier
	}
	cumulative += bands.TimeWarp
	if roll < cumulative {
		return PowerTimeWarp
	}
	cumulative += bands.Magnet
	if roll < cumulative {
		return PowerMagnet
	}
	return PowerShield
}

// rangeF draws a uniform float from [lo, hi].
func (s *Scheduler) rangeF(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
