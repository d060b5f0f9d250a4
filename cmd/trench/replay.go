package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trench-runner/internal/config"
	"github.com/vovakirdan/trench-runner/internal/replay"
	"github.com/vovakirdan/trench-runner/internal/storage"
)

var flagReplayFile string

var replayCmd = &cobra.Command{
	Use:   "replay [run-id]",
	Short: "Re-simulate a stored run and check its score",
	Long: `Load a run's recording and play it again from its seed and inputs.

The recording stores a digest of the configuration it was played with.
The preset recorded in the run is applied on top of --config, so pass the
same --config file the run was played with.

Examples:
  trench replay 01HZX3S6Q2W4J7K8M9N0P1Q2R3
  trench replay --file ./run.replay`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayFile, "file", "", "Read the recording from a file instead of the database")
}

func runReplay(_ *cobra.Command, args []string) error {
	data, err := loadRecording(args)
	if err != nil {
		return err
	}
	rec, err := replay.Decode(data)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig, rec.Preset)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := newLogger(os.Stderr, "trench-replay")
	if err != nil {
		return err
	}

	fmt.Printf("Run %s by %s  seed %d  ticks %d  preset %s\n", rec.RunID, rec.Player, rec.Seed, rec.Ticks, rec.Preset)
	b, err := replay.Verify(rec, cfg)
	if errors.Is(err, replay.ErrMismatch) {
		logger.Error("replay does not match", "error", err)
		printBreakdown(b)
		return err
	}
	if err != nil {
		return err
	}

	printBreakdown(b)
	fmt.Println()
	fmt.Println("Verified: replay reproduces the recorded score.")
	return nil
}

func loadRecording(args []string) ([]byte, error) {
	if flagReplayFile != "" {
		return os.ReadFile(flagReplayFile)
	}
	if len(args) == 0 {
		return nil, errors.New("replay: need a run id or --file")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Replay(args[0])
}
