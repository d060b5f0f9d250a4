package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trench-runner/internal/core"
	"github.com/vovakirdan/trench-runner/internal/games/trench"
	"github.com/vovakirdan/trench-runner/internal/replay"
	"github.com/vovakirdan/trench-runner/internal/storage"
)

var (
	flagSimTicks int
	flagSimSave  bool
	flagSimRuns  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless and print the breakdown",
	Long: `Play runs with the built-in autopilot, without a terminal UI.

Each run ends on a crash or after --ticks simulation ticks. With a fixed
--seed the output is identical on every invocation, which makes this
useful for balancing config changes.

Examples:
  trench sim --seed 7
  trench sim --runs 20 --ticks 18000 --difficulty hard
  trench sim --seed 7 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*5, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of consecutive runs (seed increments per run)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the runs and replays in the database")
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "trench-sim")
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for i := 0; i < max(flagSimRuns, 1); i++ {
		rt := core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     seed + int64(i),
			Player:   "autopilot",
		}
		b, rec := trench.Simulate(cfg, rt, flagSimTicks, trench.WithLogger(logger))

		fmt.Printf("Run %s  seed %d  ticks %d\n", rec.RunID, rec.Seed, rec.Ticks)
		printBreakdown(b)
		fmt.Println()

		if store == nil {
			continue
		}
		data, err := replay.Encode(rec)
		if err != nil {
			return err
		}
		err = store.SaveRun(storage.RunEntry{
			ID:        rec.RunID,
			Player:    rec.Player,
			Breakdown: b,
			Seed:      rec.Seed,
			Preset:    rec.Preset,
		}, data)
		if err != nil {
			return err
		}
	}
	return nil
}
