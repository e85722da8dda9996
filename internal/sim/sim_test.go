package sim

import (
	"testing"

	"github.com/servetkarckay/neon-runner-sub001/internal/config"
)

func newTestSim(seed int64) *Simulation {
	cfg := config.DefaultRunnerConfig()
	return New(&cfg, seed)
}

// replayInputs drives a fixed input script: jump pressed every 40th
// tick, held for the next 10, duck for ticks 20..25 of each cycle.
func replayInputs(s *Simulation, ticks int) {
	for i := 0; i < ticks && s.Alive(); i++ {
		phase := i % 40
		in := PlayerInput{
			JumpPressed: phase == 0,
			JumpHeld:    phase < 10,
			DuckHeld:    phase >= 20 && phase < 25,
		}
		s.Step(in)
	}
}

func TestSimulationDeterministicForSeed(t *testing.T) {
	a := newTestSim(42)
	b := newTestSim(42)

	replayInputs(a, 600)
	replayInputs(b, 600)

	if a.Score() != b.Score() {
		t.Errorf("scores diverged: %d vs %d", a.Score(), b.Score())
	}
	if a.Frame() != b.Frame() {
		t.Errorf("frames diverged: %d vs %d", a.Frame(), b.Frame())
	}
	oa, ob := a.Obstacles(), b.Obstacles()
	if len(oa) != len(ob) {
		t.Fatalf("obstacle counts diverged: %d vs %d", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i].Kind != ob[i].Kind || oa[i].X != ob[i].X || oa[i].Y != ob[i].Y {
			t.Fatalf("obstacle %d diverged: %+v vs %+v", i, oa[i], ob[i])
		}
	}
}

func TestSimulationSeedsDiverge(t *testing.T) {
	a := newTestSim(1)
	b := newTestSim(2)

	replayInputs(a, 600)
	replayInputs(b, 600)

	oa, ob := a.Obstacles(), b.Obstacles()
	if len(oa) == len(ob) {
		same := true
		for i := range oa {
			if oa[i].X != ob[i].X || oa[i].Kind != ob[i].Kind {
				same = false
				break
			}
		}
		if same && len(oa) > 0 {
			t.Error("different seeds produced identical obstacle streams")
		}
	}
}

func TestScoreAccruesWhileAlive(t *testing.T) {
	s := newTestSim(5)

	s.Step(PlayerInput{})
	s.Step(PlayerInput{})
	if s.Score() == 0 {
		t.Error("score did not accrue over surviving ticks")
	}
}

func TestFrozenSimulationDoesNotAdvance(t *testing.T) {
	s := newTestSim(5)
	s.Step(PlayerInput{})
	frame, score := s.Frame(), s.Score()

	s.SetFrozen(true)
	if events := s.Step(PlayerInput{JumpPressed: true}); events != nil {
		t.Error("frozen step returned events")
	}
	if s.Frame() != frame || s.Score() != score {
		t.Error("frozen simulation advanced")
	}

	s.SetFrozen(false)
	s.Step(PlayerInput{})
	if s.Frame() != frame+1 {
		t.Error("unfrozen simulation did not resume")
	}
}

func TestDeathStopsSimulation(t *testing.T) {
	s := newTestSim(5)

	// Park an obstacle on the player and step into it.
	o := s.scheduler.obstacles.Acquire()
	o.Kind = KindGround
	hb := s.Hitbox()
	o.X, o.Y, o.W, o.H = hb.X, hb.Y, hb.W, hb.H
	s.obstacles.Add(o)

	var death *Event
	for i := 0; i < 5 && death == nil; i++ {
		death = findEvent(s.Step(PlayerInput{}), EventDeath)
	}
	if death == nil {
		t.Fatal("no death event from a co-located obstacle")
	}
	if s.Alive() {
		t.Error("simulation still alive after death")
	}
	if death.Score != s.Score() {
		t.Errorf("death event score = %d, current score = %d", death.Score, s.Score())
	}

	frame := s.Frame()
	if s.Step(PlayerInput{}) != nil || s.Frame() != frame {
		t.Error("dead simulation advanced")
	}
}

func TestReviveClearsApproachAndGrantsGrace(t *testing.T) {
	s := newTestSim(5)

	near := s.scheduler.obstacles.Acquire()
	near.Kind = KindGround
	near.X, near.Y, near.W, near.H = 100, 350, 40, 40
	s.obstacles.Add(near)

	far := s.scheduler.obstacles.Acquire()
	far.Kind = KindGround
	far.X, far.Y, far.W, far.H = 700, 350, 40, 40
	s.obstacles.Add(far)

	s.alive = false
	s.Revive()

	if !s.Alive() {
		t.Fatal("revive did not restore the run")
	}
	if s.Player().InvincibleTimer == 0 {
		t.Error("revive must grant an invincibility window")
	}
	for _, o := range s.Obstacles() {
		if o.X < s.cfg.World.Width*2/3 {
			t.Errorf("obstacle at x=%f survived the approach clear", o.X)
		}
	}
	if len(s.Obstacles()) != 1 {
		t.Errorf("%d obstacles after revive, expected the far one only", len(s.Obstacles()))
	}
}

func TestResetClearsState(t *testing.T) {
	s := newTestSim(9)
	replayInputs(s, 300)

	s.Reset(9)

	if s.Frame() != 0 || s.Score() != 0 {
		t.Error("reset left frame or score")
	}
	if len(s.Obstacles()) != 0 || len(s.PowerUps()) != 0 {
		t.Error("reset left live entities")
	}
	if !s.Alive() || s.Frozen() {
		t.Error("reset must leave the run alive and unfrozen")
	}
	if s.Stats() != (RunStats{}) {
		t.Error("reset left run stats")
	}

	// A reset with the same seed replays identically.
	b := newTestSim(9)
	replayInputs(s, 300)
	replayInputs(b, 300)
	if s.Score() != b.Score() {
		t.Errorf("post-reset replay diverged: %d vs %d", s.Score(), b.Score())
	}
}

func TestPowerUpRefreshNotStack(t *testing.T) {
	s := newTestSim(3)

	s.armPowerUp(PowerMagnet)
	first := s.Player().MagnetTimer
	s.Step(PlayerInput{})
	s.armPowerUp(PowerMagnet)

	if s.Player().MagnetTimer != first {
		t.Errorf("magnet timer = %d after re-collect, expected refresh to %d",
			s.Player().MagnetTimer, first)
	}
}

func TestPracticePowerUpSpawn(t *testing.T) {
	s := newTestSim(3)

	s.SpawnPracticePowerUp(PowerShield, 250)
	pus := s.PowerUps()
	if len(pus) != 1 {
		t.Fatalf("%d power-ups after practice spawn, expected 1", len(pus))
	}
	if pus[0].Kind != PowerShield || pus[0].Y != 250 {
		t.Errorf("practice spawn = kind %s y %f, expected shield at 250", pus[0].Kind, pus[0].Y)
	}
}

func TestSpeedRampsWithScore(t *testing.T) {
	s := newTestSim(3)

	base := s.Speed()
	s.score = 5000 // progression max
	if s.Speed() <= base {
		t.Errorf("speed %f at max score not above base %f", s.Speed(), base)
	}
	if s.Speed() > s.cfg.Speed.Max {
		t.Errorf("speed %f exceeds configured max %f", s.Speed(), s.cfg.Speed.Max)
	}
}

// newLaserGridSim builds a simulation scrolling at a fixed 7 units per
// tick with a single laser grid column approaching from x=800, and no
// scheduled spawns to interfere.
func newLaserGridSim(gapY float64) *Simulation {
	cfg := config.DefaultRunnerConfig()
	cfg.Speed = config.SpeedConfig{Base: 7, Max: 7}
	cfg.Spawn.MinInterval = 100000
	cfg.Spawn.MaxInterval = 100000
	s := New(&cfg, 11)

	g := s.scheduler.obstacles.Acquire()
	g.Kind = KindLaserGrid
	g.X = 800
	g.Y = 0
	g.W = cfg.Spawn.LaserGrid.Width
	g.H = cfg.World.GroundY
	g.GapY = gapY
	g.GapHeight = cfg.Spawn.LaserGrid.GapHeight
	s.obstacles.Add(g)
	return s
}

func TestLaserGridApproachEndToEnd(t *testing.T) {
	t.Run("grounded player dies on first contact", func(t *testing.T) {
		s := newLaserGridSim(200)

		deathTick := 0
		for i := 1; i <= 150 && s.Alive(); i++ {
			if findEvent(s.Step(PlayerInput{}), EventDeath) != nil {
				deathTick = i
			}
		}
		if deathTick == 0 {
			t.Fatal("grid column crossed the grounded player without a death")
		}
		// The standing hitbox's right edge sits at x=86; the column
		// first touches it at tick 102 (800 - 7*102 = 86), not a tick
		// before.
		if deathTick != 102 {
			t.Errorf("death at tick %d, expected first contact at tick 102", deathTick)
		}
	})

	t.Run("player inside the gap survives the pass", func(t *testing.T) {
		s := newLaserGridSim(370)

		for i := 0; i < 150 && s.Alive(); i++ {
			s.Step(PlayerInput{})
		}
		if !s.Alive() {
			t.Fatal("player died inside the safe gap window")
		}
	})
}
