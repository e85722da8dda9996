package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/servetkarckay/neon-runner-sub001/internal/core"
	"github.com/servetkarckay/neon-runner-sub001/internal/games/runner"
)

var (
	flagSimTicks    int
	flagSimJumpTick int
	flagSimHold     int
	flagSimIdle     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a UI and print the result.

A scripted pilot jumps on a fixed cadence. The same seed and script
always produce the same run, which makes this useful for tuning
configs and difficulty presets.

Examples:
  neonrunner simulate --ticks 3600 --seed 42
  neonrunner simulate --ticks 7200 --jump-every 40 --hold 8
  neonrunner simulate --ticks 600 --idle          # No input at all
  neonrunner simulate --config ./my-runner.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to simulate")
	simulateCmd.Flags().IntVar(&flagSimJumpTick, "jump-every", 45, "Ticks between scripted jumps")
	simulateCmd.Flags().IntVar(&flagSimHold, "hold", 8, "Ticks the scripted jump key is held")
	simulateCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Send no input (pilot stands still)")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	game := runner.New()
	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed,
	})

	if flagSimJumpTick < 1 {
		fmt.Fprintln(os.Stderr, "Error: --jump-every must be at least 1")
		os.Exit(1)
	}

	frame := core.NewInputFrame()
	var state core.GameState
	for tick := 0; tick < flagSimTicks; tick++ {
		frame.Clear()
		if !flagSimIdle {
			phase := tick % flagSimJumpTick
			if phase == 0 {
				frame.Set(core.ActionJump)
			}
			if phase < flagSimHold {
				frame.Set(core.ActionJumpHold)
			}
		}

		state = game.Step(frame).State
		if state.GameOver {
			break
		}
	}

	stats := game.Stats()
	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Score:      %d\n", state.Score)
	fmt.Printf("Ticks:      %d\n", stats.Ticks)
	fmt.Printf("Obstacles:  %d\n", stats.Obstacles)
	fmt.Printf("Grazes:     %d\n", stats.Grazes)
	fmt.Printf("Power-ups:  %d\n", stats.PowerUps)
	if state.GameOver {
		fmt.Printf("Death:      %s\n", game.DeathCause())
	} else {
		fmt.Println("Death:      survived")
	}
}
