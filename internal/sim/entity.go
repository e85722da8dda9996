package sim

// ObstacleKind enumerates the closed set of obstacle variants. Narrow
// phase collision dispatch switches exhaustively over this set; kinds
// without a dedicated test use the plain padded-rect overlap.
type ObstacleKind int

const (
	KindGround ObstacleKind = iota
	KindAerial
	KindMovingAerial
	KindPlatform
	KindMovingPlatform
	KindSpike
	KindHazardZone
	KindFallingDrop
	KindRotatingLaser
	KindLaserGrid
	KindSlantedSurface

	obstacleKindCount // must stay last
)

// String returns the name of the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindAerial:
		return "aerial"
	case KindMovingAerial:
		return "movingAerial"
	case KindPlatform:
		return "platform"
	case KindMovingPlatform:
		return "movingPlatform"
	case KindSpike:
		return "spike"
	case KindHazardZone:
		return "hazardZone"
	case KindFallingDrop:
		return "fallingDrop"
	case KindRotatingLaser:
		return "rotatingLaser"
	case KindLaserGrid:
		return "laserGrid"
	case KindSlantedSurface:
		return "slantedSurface"
	default:
		return "unknown"
	}
}

// ObstacleKindByName maps a config name back to its kind.
// Returns KindGround for unrecognized names.
func ObstacleKindByName(name string) ObstacleKind {
	for k := KindGround; k < obstacleKindCount; k++ {
		if k.String() == name {
			return k
		}
	}
	return KindGround
}

// Axis selects the oscillation axis of a moving platform.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Obstacle is a live hazard instance. A single flat struct carries the
// union of variant fields; only the fields listed for an obstacle's
// Kind are meaningful, and acquiring from the pool zeroes all of them.
type Obstacle struct {
	ID   int
	Kind ObstacleKind

	X, Y float64
	W, H float64

	Passed bool
	Grazed bool

	// Displacement applied by the most recent field tick, including
	// scroll and variant motion. The continuous collision phase uses it
	// to sweep player and obstacle through the same tick.
	TickDX, TickDY float64

	// Oscillation baseline for hazardZone, movingAerial,
	// movingPlatform, fallingDrop and rotatingLaser.
	InitialY float64

	// Oscillation axis for movingPlatform.
	Axis Axis

	// Free-fall velocity for fallingDrop.
	VelY float64

	// Beam state for rotatingLaser.
	Angle         float64
	RotationSpeed float64
	BeamLength    float64

	// Safe-gap window for laserGrid.
	GapY      float64
	GapHeight float64

	// Diagonal endpoints for slantedSurface, relative to (X, Y).
	LineX1, LineY1 float64
	LineX2, LineY2 float64
}

// Bounds returns the obstacle's bounding rectangle, recomputed from the
// position and size fields. It is never cached.
func (o *Obstacle) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// PowerUpKind enumerates collectible power-up variants.
type PowerUpKind int

const (
	PowerShield PowerUpKind = iota
	PowerMultiplier
	PowerTimeWarp
	PowerMagnet

	powerUpKindCount // must stay last
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	case PowerMultiplier:
		return "multiplier"
	case PowerTimeWarp:
		return "timeWarp"
	case PowerMagnet:
		return "magnet"
	default:
		return "unknown"
	}
}

// PowerUp is a live collectible instance.
type PowerUp struct {
	ID   int
	Kind PowerUpKind

	X, Y float64
	W, H float64

	Active bool

	// FloatOffset is the bobbing animation phase.
	FloatOffset float64
}

// Bounds returns the power-up's bounding rectangle.
func (p *PowerUp) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
