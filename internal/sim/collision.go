package sim

import (
	"math"

	"github.com/servetkarckay/neon-runner-sub001/internal/config"
)

// Detector runs the per-tick collision pass: an inclusive AABB broad
// phase, a swept continuous phase when displacement could tunnel, and
// a variant-specific narrow phase. It is a pure function of current
// state; the only mutations are the per-obstacle graze flag, power-up
// deactivation, and shield consumption, all reported as events.
type Detector struct {
	cfg *config.CollisionConfig
}

// NewDetector creates a detector with the given tolerances.
func NewDetector(cfg *config.RunnerConfig) *Detector {
	return &Detector{cfg: &cfg.Collision}
}

// Detect tests the player against every active obstacle and power-up.
// prevHitbox is the player's hitbox at the start of the tick, hitbox at
// the end. Obstacles carry their own per-tick displacement, so both
// bodies are swept through the same tick in the continuous phase.
func (d *Detector) Detect(p *Player, prevHitbox, hitbox Rect, obstacles []*Obstacle, powerups []*PowerUp) []Event {
	var events []Event

	playerDX := hitbox.X - prevHitbox.X
	playerDY := hitbox.Y - prevHitbox.Y

	p.IsGrazing = false
	dead := false

	for _, o := range obstacles {
		if dead {
			break
		}
		if !d.hits(prevHitbox, hitbox, playerDX, playerDY, o) {
			// Near miss: a pass inside the graze band awards a bonus
			// once per obstacle.
			if !o.Grazed && d.grazes(hitbox, o) {
				o.Grazed = true
				p.IsGrazing = true
				events = append(events, Event{
					Kind:       EventGraze,
					ObstacleID: o.ID,
					Points:     d.cfg.GrazeBonus,
				})
			}
			continue
		}

		// Protection: invincibility suppresses without being consumed;
		// a shield absorbs exactly one hit.
		if p.InvincibleTimer > 0 {
			continue
		}
		if p.HasShield {
			p.HasShield = false
			events = append(events, Event{Kind: EventShieldBroken, ObstacleID: o.ID})
			continue
		}

		events = append(events, Event{Kind: EventDeath, ObstacleID: o.ID})
		dead = true
	}

	// Power-up pickup is a plain rect overlap.
	for _, pw := range powerups {
		if !pw.Active {
			continue
		}
		if hitbox.Overlaps(pw.Bounds(), d.cfg.Epsilon) {
			pw.Active = false
			events = append(events, Event{Kind: EventPowerUp, PowerUp: pw.Kind})
		}
	}

	return events
}

// hits reports whether the player collides with the obstacle this tick.
func (d *Detector) hits(prevHitbox, hitbox Rect, playerDX, playerDY float64, o *Obstacle) bool {
	bounds := o.Bounds()
	if o.Kind == KindRotatingLaser {
		// The beam reaches BeamLength past the hub in any direction, so
		// the broad phase has to cover the full sweep circle.
		bounds = bounds.Inset(-o.BeamLength)
	}

	candidate := hitbox.Overlaps(bounds, d.cfg.Epsilon)
	if !candidate {
		// Displacement of the player relative to the obstacle over this
		// tick. Both bodies have already moved, so the sweep starts
		// from the obstacle's start-of-tick position.
		relDX := playerDX - o.TickDX
		relDY := playerDY - o.TickDY
		if math.Abs(relDX) > bounds.W || math.Abs(relDY) > bounds.H {
			// Relative displacement exceeds the obstacle's extent: the
			// discrete test can tunnel, so sweep the tick.
			startBounds := bounds
			startBounds.X -= o.TickDX
			startBounds.Y -= o.TickDY
			_, candidate = SweptAABB(prevHitbox, relDX, relDY, startBounds)
		}
	}
	if !candidate {
		return false
	}
	return d.narrowPhase(hitbox, o)
}

// narrowPhase applies the variant-specific test to a broad-phase
// candidate. The switch is exhaustive over the obstacle kinds; variants
// without a dedicated shape use the rect overlap already established.
func (d *Detector) narrowPhase(hitbox Rect, o *Obstacle) bool {
	bounds := o.Bounds()

	switch o.Kind {
	case KindRotatingLaser:
		if hitbox.Overlaps(bounds, d.cfg.Epsilon) {
			return true
		}
		// Beam from the obstacle center, length BeamLength, at Angle.
		cx, cy := bounds.CenterX(), bounds.CenterY()
		bx := cx + math.Cos(o.Angle)*o.BeamLength
		by := cy + math.Sin(o.Angle)*o.BeamLength
		return SegmentIntersectsRect(cx, cy, bx, by, hitbox)

	case KindLaserGrid:
		if hitbox.Right() < bounds.X || hitbox.X > bounds.Right() {
			return false
		}
		// Safe only while fully inside the gap window, shrunk by the
		// grid padding on both ends.
		safeTop := o.GapY - o.GapHeight/2 + d.cfg.LaserGridPadding
		safeBottom := o.GapY + o.GapHeight/2 - d.cfg.LaserGridPadding
		return hitbox.Y < safeTop || hitbox.Bottom() > safeBottom

	case KindFallingDrop:
		radius := o.W/2 - d.cfg.DropRadiusAdjust
		return CircleIntersectsRect(bounds.CenterX(), bounds.CenterY(), radius, hitbox)

	case KindSpike:
		// Triangle: apex at top center, base on the bottom edge.
		apexX, apexY := bounds.CenterX(), bounds.Y
		if SegmentIntersectsRect(bounds.X, bounds.Bottom(), apexX, apexY, hitbox) {
			return true
		}
		if SegmentIntersectsRect(apexX, apexY, bounds.Right(), bounds.Bottom(), hitbox) {
			return true
		}
		centerInBase := hitbox.CenterX() >= bounds.X && hitbox.CenterX() <= bounds.Right()
		return centerInBase && hitbox.Bottom() >= bounds.Y+bounds.H/2

	case KindAerial, KindMovingAerial:
		// Diamond with vertices at the edge midpoints.
		topX, topY := bounds.CenterX(), bounds.Y
		rightX, rightY := bounds.Right(), bounds.CenterY()
		bottomX, bottomY := bounds.CenterX(), bounds.Bottom()
		leftX, leftY := bounds.X, bounds.CenterY()
		if SegmentIntersectsRect(topX, topY, rightX, rightY, hitbox) ||
			SegmentIntersectsRect(rightX, rightY, bottomX, bottomY, hitbox) ||
			SegmentIntersectsRect(bottomX, bottomY, leftX, leftY, hitbox) ||
			SegmentIntersectsRect(leftX, leftY, topX, topY, hitbox) {
			return true
		}
		return Dist(bounds.CenterX(), bounds.CenterY(), hitbox.CenterX(), hitbox.CenterY()) <= d.cfg.CenterTolerance

	case KindSlantedSurface:
		return SegmentIntersectsRect(
			o.X+o.LineX1, o.Y+o.LineY1,
			o.X+o.LineX2, o.Y+o.LineY2,
			hitbox,
		)

	default:
		// ground, platform, movingPlatform, hazardZone: the padded rect
		// overlap from the broad phase is the whole test.
		return true
	}
}

// grazes reports whether the player is inside the graze band around the
// obstacle without touching it.
func (d *Detector) grazes(hitbox Rect, o *Obstacle) bool {
	expanded := o.Bounds().Inset(-d.cfg.GrazeDistance)
	return hitbox.Overlaps(expanded, d.cfg.Epsilon)
}
