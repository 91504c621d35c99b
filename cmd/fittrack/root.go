// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Handles config load and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/storage"
)

var (
	cfg   *config.Config
	store storage.Store

	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracking and analytics",
	Long: `Fittrack is a CLI tool for tracking workouts, body composition,
nutrition, recovery, supplements and hormone-adjacent readings, with
derived analytics over everything you log.

WHAT IT TRACKS:

  Workouts     exercise, sets, reps, weight (volume computed per entry)
  Body         bodyweight, bodyfat, tape measurements (lean mass derived)
  Nutrition    calories, protein, carbs, fats, water, fiber
  Recovery     sleep, stress, energy, resting heart rate
  Supplements  daily checklist (creatine, vitamin D, omega-3, magnesium, zinc)
  Hormone      daily steps and related readings

QUICK START:

  $ fittrack log workout "Bench Press" 4 8 62.5   # Log a lift
  $ fittrack log body 82.5 --bodyfat 15           # Log a weigh-in
  $ fittrack log nutrition --protein 180 --carbs 250 --fats 70
  $ fittrack today                                # Latest values and deltas
  $ fittrack pr                                   # Personal records
  $ fittrack summary volume                       # Weekly training volume

ANALYTICS:

  $ fittrack summary macros     # Macro energy split of the latest log
  $ fittrack summary recovery   # Composite recovery score (four axes)
  $ fittrack summary trend      # 7-entry rolling nutrition averages
  $ fittrack summary goals      # Adherence against configured targets

DATA STORAGE:

  Collections are stored as one JSON file per category under
  ~/.local/share/fittrack (XDG aware). Set "backend": "badger" in
  ~/.config/fittrack/config.json to use an embedded Badger database
  instead.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "override the data directory")
}
