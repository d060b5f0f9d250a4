package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trench-runner/internal/core"
	"github.com/vovakirdan/trench-runner/internal/games/trench"
	"github.com/vovakirdan/trench-runner/internal/platform/tui"
	"github.com/vovakirdan/trench-runner/internal/storage"
)

var (
	flagName    string
	flagBalance int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start an endless run.

Controls:
  Left/Right, A/D  - Change lane
  Up/W/Space       - Jump
  Down/S           - Slide
  1 / 2 / 3        - Activate double / shield / magnet
  P/Esc            - Pause
  R                - Restart
  L                - Leaderboard (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, wider hitboxes forgiven
  normal - Default tuning
  hard   - Faster start, tighter hitboxes

Examples:
  trench play
  trench play --difficulty easy
  trench play --name ana --balance 25000
  trench play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Leaderboard name (default: $USER)")
	playCmd.Flags().Int64Var(&flagBalance, "balance", 0, "Token balance, sets the holder tier")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, closeLog, err := logWriter()
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(w, "trench")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = tw, th
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   playerName(flagName),
		Balance:  flagBalance,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := trench.New(cfg, trench.WithLogger(logger))
	if err := tui.Run(game, store, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
