package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game tuning as YAML after applying --config and --difficulty.
The output can be saved to ~/.arcade/configs/dodge.yaml and edited.

Examples:
  dodge config
  dodge config --difficulty hard
  dodge config --defaults > ~/.arcade/configs/dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// defaultTuning is the effective config, or the defaults when it can't load.
func defaultTuning() config.DodgeConfig {
	cfg, err := loadGameConfig()
	if err != nil {
		return config.DefaultDodgeConfig()
	}
	return cfg
}
