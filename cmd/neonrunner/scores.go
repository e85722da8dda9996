package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/servetkarckay/neon-runner-sub001/internal/platform/tui"
	"github.com/servetkarckay/neon-runner-sub001/internal/storage"
)

var (
	flagScoresBoard bool
	flagScoresRuns  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Display the top 10 high scores.

Examples:
  neonrunner scores
  neonrunner scores --runs
  neonrunner scores --board`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive scoreboard instead of printing")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "Print recent run history instead of top scores")
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "runner"

	if flagScoresBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		if _, boardErr := tui.RunScoreboard(store, gameID, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresRuns {
		printRuns(store, gameID)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Neon Runner")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonrunner play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printRuns(store *storage.Store, gameID string) {
	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Runs - Neon Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-8s  %-8s  %-14s  %s\n", "Score", "Ticks", "Grazes", "Pickups", "Death", "Date")
	fmt.Printf("  %-10s  %-8s  %-8s  %-8s  %-14s  %s\n", "-----", "-----", "------", "-------", "-----", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-8d  %-8d  %-8d  %-14s  %s\n", r.Score, r.Ticks, r.Grazes, r.PowerUps, r.DeathCause, dateStr)
	}
}
