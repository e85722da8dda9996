// neonrunner is a neon-styled endless runner for the terminal.
//
// Usage:
//
//	neonrunner play              - Play the game
//	neonrunner scores            - Show high scores and run history
//	neonrunner simulate          - Run a headless simulation
//	neonrunner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.neonrunner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/servetkarckay/neon-runner-sub001/internal/games/runner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrunner",
	Short: "Neon Runner - An endless runner in your terminal",
	Long: `Neon Runner is a terminal endless runner. Jump and duck past an
ever-faster obstacle field, graze hazards for bonus points, and grab
power-ups to stay alive.

Available commands:
  play      - Play the game
  scores    - View high scores and run history
  simulate  - Run a headless simulation (no UI)
  serve     - Start SSH server for remote play

Examples:
  neonrunner play
  neonrunner play --difficulty hard
  neonrunner scores
  neonrunner simulate --ticks 3600 --seed 42
  neonrunner serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonrunner/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}
