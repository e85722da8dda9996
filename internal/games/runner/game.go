// Package runner implements a neon-themed endless runner: the player
// sprints through a side-scrolling hazard field, jumping and ducking
// past obstacle variants while collecting power-ups. All gameplay runs
// in the fixed-size world of the sim package; this package adapts it to
// the platform's input and screen model.
package runner

import (
	"github.com/servetkarckay/neon-runner-sub001/internal/config"
	"github.com/servetkarckay/neon-runner-sub001/internal/core"
	"github.com/servetkarckay/neon-runner-sub001/internal/registry"
	"github.com/servetkarckay/neon-runner-sub001/internal/sim"
)

// Game adapts the world simulation to the platform's Game interface.
type Game struct {
	sim     *sim.Simulation
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig

	paused     bool
	seed       int64
	deathCause string // Obstacle kind that ended the run
	lastEvents []sim.Event
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.seed = runtime.Seed

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	if g.sim == nil {
		g.sim = sim.New(&g.cfg, runtime.Seed)
	} else {
		g.sim.Reset(runtime.Seed)
	}

	g.paused = false
	g.deathCause = ""
	g.lastEvents = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.sim.Alive() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.sim.SetFrozen(g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.lastEvents = g.sim.Step(sim.PlayerInput{
		JumpPressed: in.Has(core.ActionJump),
		JumpHeld:    in.Has(core.ActionJump) || in.Has(core.ActionJumpHold),
		DuckHeld:    in.Has(core.ActionDuck),
	})

	for _, ev := range g.lastEvents {
		if ev.Kind == sim.EventDeath {
			g.deathCause = g.obstacleKindName(ev.ObstacleID)
		}
	}

	return core.StepResult{State: g.State()}
}

// obstacleKindName looks up the kind of the obstacle that killed the
// player. The obstacle is still live when the death event is handled.
func (g *Game) obstacleKindName(id int) string {
	for _, o := range g.sim.Obstacles() {
		if o.ID == id {
			return o.Kind.String()
		}
	}
	return "unknown"
}

// Events returns the simulation events from the most recent tick.
func (g *Game) Events() []sim.Event {
	return g.lastEvents
}

// Stats returns the run counters for persistence.
func (g *Game) Stats() sim.RunStats {
	return g.sim.Stats()
}

// Seed returns the seed this run was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// DeathCause returns the kind name of the obstacle that ended the run,
// or empty while the run is alive.
func (g *Game) DeathCause() string {
	return g.deathCause
}

// Revive restarts the player after a death without resetting the run.
func (g *Game) Revive() {
	g.sim.Revive()
	g.deathCause = ""
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: !g.sim.Alive(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
