package sim

import (
	"testing"

	"github.com/servetkarckay/neon-runner-sub001/internal/config"
)

func newTestPhysics() (*Physics, *Player) {
	cfg := config.DefaultRunnerConfig()
	ph := NewPhysics(&cfg)
	p := &Player{}
	ph.ResetPlayer(p)
	return ph, p
}

func TestPlayerStartsGrounded(t *testing.T) {
	ph, p := newTestPhysics()

	if p.Y+p.H != ph.GroundY() {
		t.Errorf("player bottom = %f, expected ground line %f", p.Y+p.H, ph.GroundY())
	}
	if p.IsJumping {
		t.Error("player should start grounded")
	}
	if p.ScoreMultiplier != 1 {
		t.Errorf("score multiplier = %f, expected 1", p.ScoreMultiplier)
	}
}

func TestJumpAndLand(t *testing.T) {
	ph, p := newTestPhysics()
	startY := p.Y

	ph.Advance(p, PlayerInput{JumpPressed: true})
	if !p.IsJumping {
		t.Fatal("grounded jump press should start a jump")
	}
	if p.Y >= startY {
		t.Errorf("jump should move player up, was %f, now %f", startY, p.Y)
	}

	// Without further input, gravity must bring the player back down
	// and clamp to the ground line.
	for i := 0; i < 300 && p.IsJumping; i++ {
		ph.Advance(p, PlayerInput{})
	}
	if p.IsJumping {
		t.Fatal("player never landed")
	}
	if p.Y+p.H != ph.GroundY() {
		t.Errorf("landed bottom = %f, expected ground line %f", p.Y+p.H, ph.GroundY())
	}
	if p.VelY != 0 {
		t.Errorf("landed velocity = %f, expected 0", p.VelY)
	}
}

func TestJumpSustainExtendsHeight(t *testing.T) {
	ph, held := newTestPhysics()
	_, tapped := newTestPhysics()

	ph.Advance(held, PlayerInput{JumpPressed: true, JumpHeld: true})
	ph.Advance(tapped, PlayerInput{JumpPressed: true})

	heldPeak, tappedPeak := held.Y, tapped.Y
	for i := 0; i < 300 && (held.IsJumping || tapped.IsJumping); i++ {
		ph.Advance(held, PlayerInput{JumpHeld: true})
		ph.Advance(tapped, PlayerInput{})
		if held.Y < heldPeak {
			heldPeak = held.Y
		}
		if tapped.Y < tappedPeak {
			tappedPeak = tapped.Y
		}
	}

	if heldPeak >= tappedPeak {
		t.Errorf("held jump peak %f should be higher (smaller y) than tapped peak %f", heldPeak, tappedPeak)
	}
}

func TestJumpBuffer(t *testing.T) {
	ph, p := newTestPhysics()

	ph.Advance(p, PlayerInput{JumpPressed: true})

	// Wait until the player is falling and close to the ground, then
	// press jump early: the buffered press must fire on landing.
	for p.VelY < 0 || p.Y+p.H < ph.GroundY()-20 {
		ph.Advance(p, PlayerInput{})
	}
	ph.Advance(p, PlayerInput{JumpPressed: true})

	for i := 0; i < 30; i++ {
		ph.Advance(p, PlayerInput{})
		if p.IsJumping && p.VelY < 0 && p.JumpTimer == 0 {
			return // re-launched from the buffer
		}
	}
	if !p.IsJumping || p.VelY >= 0 {
		t.Error("buffered jump press was not honored on landing")
	}
}

func TestDuckSwapsHeightsGluedToGround(t *testing.T) {
	ph, p := newTestPhysics()
	cfg := config.DefaultRunnerConfig()

	ph.Advance(p, PlayerInput{DuckHeld: true})
	if !p.IsDucking {
		t.Fatal("duck input should duck a grounded player")
	}
	if p.H != cfg.Player.DuckHeight {
		t.Errorf("duck height = %f, expected %f", p.H, cfg.Player.DuckHeight)
	}
	if p.Y+p.H != ph.GroundY() {
		t.Errorf("ducked bottom = %f, expected ground line %f", p.Y+p.H, ph.GroundY())
	}

	ph.Advance(p, PlayerInput{})
	if p.IsDucking {
		t.Fatal("releasing duck should stand the player up")
	}
	if p.H != cfg.Player.StandHeight {
		t.Errorf("stand height = %f, expected %f", p.H, cfg.Player.StandHeight)
	}
	if p.Y+p.H != ph.GroundY() {
		t.Errorf("standing bottom = %f, expected ground line %f", p.Y+p.H, ph.GroundY())
	}
}

func TestHitboxInset(t *testing.T) {
	ph, p := newTestPhysics()
	cfg := config.DefaultRunnerConfig()

	hb := ph.Hitbox(p)
	pad := cfg.Player.HitboxPadding
	if hb.X != p.X+pad || hb.Y != p.Y+pad {
		t.Errorf("hitbox origin = (%f, %f), expected inset by %f", hb.X, hb.Y, pad)
	}
	if hb.W != p.W-2*pad || hb.H != p.H-2*pad {
		t.Errorf("hitbox size = (%f, %f), expected inset by %f per side", hb.W, hb.H, pad)
	}
}

func TestTimersCountDown(t *testing.T) {
	ph, p := newTestPhysics()

	p.InvincibleTimer = 3
	p.MultiplierTimer = 2
	p.ScoreMultiplier = 2.0
	p.MagnetTimer = 2

	ph.Advance(p, PlayerInput{})
	if p.InvincibleTimer != 2 || p.MultiplierTimer != 1 {
		t.Errorf("timers = %d/%d, expected 2/1", p.InvincibleTimer, p.MultiplierTimer)
	}
	if !p.HasMagnet {
		t.Error("magnet flag should survive while the timer runs")
	}

	ph.Advance(p, PlayerInput{})
	if p.ScoreMultiplier != 1 {
		t.Errorf("multiplier = %f after expiry, expected reset to 1", p.ScoreMultiplier)
	}
	if p.HasMagnet {
		t.Error("magnet flag should clear when the timer expires")
	}
}
