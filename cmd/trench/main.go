// trench is an endless three-lane runner for the terminal.
//
// Usage:
//
//	trench play              - Play a run
//	trench sim               - Run the autopilot headless and print the breakdown
//	trench replay <run-id>   - Re-simulate a stored run and check its score
//	trench scores            - Show the leaderboard
//	trench serve             - Start SSH server for remote play
//	trench config            - Print the effective run configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.trench/runs.db)
//	--config <path>       - Use a custom runner.yaml
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trench-runner/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trench",
	Short: "Trench Runner - an endless runner in your terminal",
	Long: `Trench Runner is a three-lane endless runner. Dodge blocks and pits,
chain pickups into combos, charge boosts and catch the whale.

Examples:
  trench play
  trench play --difficulty hard --seed 42
  trench sim --ticks 36000
  trench replay 01HZX3S6Q2W4J7K8M9N0P1Q2R3
  trench scores --player ana
  trench serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trench/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a file (play logs nothing otherwise)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger shared by every component of a command.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// logWriter returns where logs go while the terminal belongs to the game.
func logWriter() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// loadConfig resolves the runner configuration from the global flags.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig, flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// playerName returns the leaderboard name for local runs.
func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "runner"
}
