package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trench-runner/internal/platform/tui"
	"github.com/vovakirdan/trench-runner/internal/runner"
	"github.com/vovakirdan/trench-runner/internal/storage"
)

var (
	flagScoresPlayer      string
	flagScoresLimit       int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best stored runs.

Examples:
  trench scores
  trench scores --player ana --limit 5
  trench scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's runs")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse the leaderboard in a table")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, playerName(flagScoresPlayer), width, height)
	}

	var runs []storage.RunEntry
	title := "High Scores"
	if flagScoresPlayer != "" {
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
		title = fmt.Sprintf("High Scores - %s", flagScoresPlayer)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(title))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'trench play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-26s  %-12s  %-8s  %10s  %8s  %s\n", "Rank", "Run", "Player", "Tier", "Score", "Dist", "Date")
	fmt.Printf("  %-4s  %-26s  %-12s  %-8s  %10s  %8s  %s\n", "----", "---", "------", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-26s  %-12s  %-8s  %10d  %7dm  %s\n",
			i+1, r.ID, r.Player, r.Tier, r.Breakdown.Score, r.Breakdown.Distance,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// printBreakdown writes a run's score split to stdout.
func printBreakdown(b runner.Breakdown) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Score %d", b.Score)))
	fmt.Printf("  Distance      %8dm\n", b.Distance)
	fmt.Printf("  Multiplier    %9.2f\n", b.Multiplier)
	fmt.Printf("  Coins         %9d\n", b.Tokens)
	fmt.Printf("  Distance pts  %9d\n", b.DistanceScore)
	fmt.Printf("  Coin pts      %9d\n", b.CoinScore)
	fmt.Printf("  Whale pts     %9d\n", b.WhaleScore)
	fmt.Printf("  Max combo     %9d\n", b.MaxCombo)
	fmt.Printf("  Boosts used   %9d\n", b.BoostsUsed)
	fmt.Printf("  Whale tokens  %9d\n", b.WhaleTokens)
}
