package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/trench-runner/internal/replay"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective run configuration",
	Long: `Print the configuration a run would use after applying --config and
--difficulty, followed by its digest. Save the output as
~/.trench/configs/runner.yaml to customize it.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	fmt.Printf("# digest: %s\n", replay.Digest(cfg))
	return nil
}
