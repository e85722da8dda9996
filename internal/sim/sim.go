package sim

import (
	"github.com/servetkarckay/neon-runner-sub001/internal/config"
)

// RunStats accumulates per-run counters consumed by the shell for
// scoreboards and run history.
type RunStats struct {
	Ticks     int
	Grazes    int
	PowerUps  int
	Obstacles int // Obstacles fully passed
}

// Simulation is the frame-stepped orchestrator: each Step advances
// player physics, then the obstacle and power-up fields, then runs
// collision detection, and returns the tick's discrete outcome events.
// It is single-threaded by contract; the caller advances it once per
// visual frame.
type Simulation struct {
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager

	physics   *Physics
	player    *Player
	scheduler *Scheduler
	obstacles *ObstacleField
	powerups  *PowerUpField
	detector  *Detector

	frame            int
	nextSpawnFrame   int
	nextPowerUpFrame int

	score  float64
	alive  bool
	frozen bool
	stats  RunStats
}

// New creates a simulation for the given config and seed.
func New(cfg *config.RunnerConfig, seed int64) *Simulation {
	obstaclePool := NewPool[Obstacle](32)
	powerupPool := NewPool[PowerUp](8)

	s := &Simulation{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		physics:    NewPhysics(cfg),
		player:     &Player{},
		scheduler:  NewScheduler(seed, cfg, obstaclePool, powerupPool),
		obstacles:  NewObstacleField(cfg, obstaclePool),
		powerups:   NewPowerUpField(cfg, powerupPool),
	}
	s.detector = NewDetector(cfg)
	s.Reset(seed)
	return s
}

// Reset restarts the run: player back on the ground line, fields
// drained into the pools, scheduler reseeded, score cleared.
func (s *Simulation) Reset(seed int64) {
	s.physics.ResetPlayer(s.player)
	s.scheduler.Reset(seed)
	s.obstacles.Reset()
	s.powerups.Reset()

	s.frame = 0
	s.score = 0
	s.alive = true
	s.frozen = false
	s.stats = RunStats{}
	s.nextSpawnFrame = s.scheduler.NextInterval(s.difficulty, 0, 0)
	s.nextPowerUpFrame = s.scheduler.NextPowerUpInterval()
}

// SetFrozen gates the simulation: while frozen, Step does not advance.
// Used by the shell during external flows such as a revive prompt.
func (s *Simulation) SetFrozen(frozen bool) {
	s.frozen = frozen
}

// Frozen reports whether the simulation is gated.
func (s *Simulation) Frozen() bool {
	return s.frozen
}

// Alive reports whether the player survived the last tick.
func (s *Simulation) Alive() bool {
	return s.alive
}

// Score returns the current score, truncated to an integer.
func (s *Simulation) Score() int {
	return int(s.score)
}

// Frame returns the number of ticks advanced this run.
func (s *Simulation) Frame() int {
	return s.frame
}

// Stats returns the run counters accumulated so far.
func (s *Simulation) Stats() RunStats {
	return s.stats
}

// Player returns the player for read access by the renderer.
func (s *Simulation) Player() *Player {
	return s.player
}

// Hitbox returns the player's current forgiving hitbox.
func (s *Simulation) Hitbox() Rect {
	return s.physics.Hitbox(s.player)
}

// Obstacles returns the live obstacles for read access by the renderer.
func (s *Simulation) Obstacles() []*Obstacle {
	return s.obstacles.Active()
}

// PowerUps returns the live power-ups for read access by the renderer.
func (s *Simulation) PowerUps() []*PowerUp {
	return s.powerups.Active()
}

// Speed returns the current scroll speed, ramped by difficulty.
func (s *Simulation) Speed() float64 {
	return s.difficulty.Speed(s.cfg.Speed, int(s.score), s.frame)
}

// Difficulty exposes the difficulty manager for preset adjustments.
func (s *Simulation) Difficulty() *config.DifficultyManager {
	return s.difficulty
}

// SpawnPracticePowerUp drops a power-up of the given kind at a fixed
// height, bypassing the probability roll. Practice and test hook.
func (s *Simulation) SpawnPracticePowerUp(kind PowerUpKind, y float64) {
	s.powerups.Add(s.scheduler.SpawnPowerUpAt(kind, y))
}

// Step advances the simulation one tick and returns the tick's outcome
// events. A frozen or dead simulation does not advance.
func (s *Simulation) Step(in PlayerInput) []Event {
	if s.frozen || !s.alive {
		return nil
	}

	s.frame++
	s.stats.Ticks++
	speed := s.Speed()

	prevHitbox := s.physics.Hitbox(s.player)
	s.physics.Advance(s.player, in)
	hitbox := s.physics.Hitbox(s.player)

	if o := s.scheduler.MaybeSpawnObstacle(s.frame, s.nextSpawnFrame, speed); o != nil {
		s.obstacles.Add(o)
		s.nextSpawnFrame = s.frame + s.scheduler.NextInterval(s.difficulty, int(s.score), s.frame)
	}
	if s.frame >= s.nextPowerUpFrame {
		s.powerups.Add(s.scheduler.SpawnPowerUp())
		s.nextPowerUpFrame = s.frame + s.scheduler.NextPowerUpInterval()
	}

	s.obstacles.Tick(1, s.frame, speed)
	s.powerups.Tick(1, s.frame, speed, s.player)
	s.markPassed()

	events := s.detector.Detect(s.player, prevHitbox, hitbox, s.obstacles.Active(), s.powerups.Active())

	// Distance score accrues every surviving tick, scaled by the
	// multiplier; graze bonuses add on top.
	s.score += speed * 0.1 * s.player.ScoreMultiplier

	out := events[:0]
	for _, ev := range events {
		switch ev.Kind {
		case EventDeath:
			s.alive = false
			ev.Score = s.Score()
		case EventGraze:
			s.stats.Grazes++
			s.score += float64(ev.Points) * s.player.ScoreMultiplier
		case EventPowerUp:
			s.stats.PowerUps++
			s.armPowerUp(ev.PowerUp)
		case EventShieldBroken:
			// A broken shield grants a short grace window so the same
			// obstacle cannot kill on the very next tick.
			s.player.InvincibleTimer = s.cfg.PowerUps.ShieldBreakTicks
		}
		out = append(out, ev)
	}
	return out
}

// armPowerUp applies a collected power-up to the player. Re-collecting
// a timed kind refreshes its timer rather than stacking it.
func (s *Simulation) armPowerUp(kind PowerUpKind) {
	pu := &s.cfg.PowerUps
	switch kind {
	case PowerShield:
		s.player.HasShield = true
	case PowerMultiplier:
		s.player.ScoreMultiplier = pu.MultiplierValue
		s.player.MultiplierTimer = pu.MultiplierTicks
	case PowerTimeWarp:
		s.player.TimeWarpTimer = pu.TimeWarpTicks
	case PowerMagnet:
		s.player.MagnetTimer = pu.MagnetTicks
		s.player.HasMagnet = true
	}
}

// markPassed flags obstacles whose trailing edge has cleared the player
// and counts them once.
func (s *Simulation) markPassed() {
	for _, o := range s.obstacles.Active() {
		if !o.Passed && o.X+o.W < s.player.X {
			o.Passed = true
			s.stats.Obstacles++
		}
	}
}

// Revive restarts the player after a death without resetting the run:
// the player returns to the ground line with a fresh state and a grace
// window, and every hazard in the approach corridor is cleared so the
// revived player is not instantly re-killed.
func (s *Simulation) Revive() {
	s.physics.ResetPlayer(s.player)
	s.player.InvincibleTimer = s.cfg.PowerUps.ReviveInvincTicks
	s.clearApproach()
	s.alive = true
	s.frozen = false
}

// clearApproach retires obstacles in the first two thirds of the world
// so a revive never drops the player inside a hazard.
func (s *Simulation) clearApproach() {
	limit := s.cfg.World.Width * 2 / 3
	kept := make([]*Obstacle, 0, len(s.obstacles.active))
	for _, o := range s.obstacles.active {
		if o.X < limit {
			s.obstacles.pool.Release(o)
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles.active = kept
}
