// ABOUTME: CLI commands for derived analytics summaries.
// ABOUTME: Weekly volume, macro split, recovery score, rolling trend, goal adherence.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/view"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"sum"},
	Short:   "Derived analytics over logged data",
	Long: `Compute analytics over the full logged history:

  fittrack summary volume     # training volume per ISO week
  fittrack summary macros     # macro energy split of the latest log
  fittrack summary recovery   # composite recovery score (four axes)
  fittrack summary trend      # rolling averages over the last 7 entries
  fittrack summary goals      # adherence against configured targets`,
}

var summaryVolumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Weekly training volume",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := store.LoadWorkouts()
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}

		weeks := metrics.WeeklyVolume(workouts)
		if len(weeks) == 0 {
			fmt.Println("No workout data yet.")
			return nil
		}

		for _, w := range weeks {
			fmt.Printf("%s  %10.1f kg\n", w.Label(), w.Volume)
		}
		return nil
	},
}

var summaryMacrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Macro energy split of the latest nutrition log",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.LoadNutrition()
		if err != nil {
			return fmt.Errorf("failed to load nutrition: %w", err)
		}

		latest, err := view.Latest(entries)
		if err != nil {
			fmt.Println("No nutrition data yet.")
			return nil
		}

		split, err := metrics.SplitMacros(latest)
		if errors.Is(err, metrics.ErrInsufficientData) {
			fmt.Println("Latest entry is missing one or more macros; split unavailable.")
			return nil
		}
		if err != nil {
			return err
		}

		printMacro("Protein", split.ProteinKcal, split.TotalKcal)
		printMacro("Carbs", split.CarbsKcal, split.TotalKcal)
		printMacro("Fats", split.FatsKcal, split.TotalKcal)
		fmt.Printf("%-8s %6.0f kcal\n", "Total", split.TotalKcal)
		return nil
	},
}

func printMacro(label string, kcal, total float64) {
	fmt.Printf("%-8s %6.0f kcal  %s\n", label, kcal,
		color.New(color.Faint).Sprintf("%.0f%%", kcal/total*100))
}

var summaryRecoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Composite recovery score of the latest check-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.LoadRecovery()
		if err != nil {
			return fmt.Errorf("failed to load recovery: %w", err)
		}

		latest, err := view.Latest(entries)
		if err != nil {
			fmt.Println("No recovery data yet.")
			return nil
		}

		vector := metrics.RecoveryScore(latest)
		fmt.Printf("Recovery (%s)\n", latest.Date)
		for _, axis := range vector.Axes() {
			fmt.Printf("  %-12s %.1f/5\n", axis.Label, axis.Score)
		}
		return nil
	},
}

var summaryTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Rolling nutrition averages over the last 7 entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.LoadNutrition()
		if err != nil {
			return fmt.Errorf("failed to load nutrition: %w", err)
		}

		avg, err := metrics.RollingNutrition(entries, metrics.RollingWindow)
		if errors.Is(err, metrics.ErrInsufficientData) {
			fmt.Println("No nutrition data yet.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Rolling averages (last %d entries):\n", avg.Window)
		printAvg("Calories", avg.Calories, "kcal")
		printAvg("Protein", avg.Protein, "g")
		printAvg("Carbs", avg.Carbs, "g")
		printAvg("Fats", avg.Fats, "g")
		return nil
	},
}

func printAvg(label string, v *float64, unit string) {
	if v == nil {
		fmt.Printf("  %-10s %s\n", label, color.New(color.Faint).Sprint("no data"))
		return
	}
	fmt.Printf("  %-10s %.0f %s\n", label, *v, unit)
}

var summaryGoalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Goal adherence against configured targets",
	Long: `Compare the latest logged values against the targets in
~/.config/fittrack/config.json, e.g.:

  { "targets": { "calories": 2400, "protein": 180, "water_l": 3, "steps": 10000 } }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nutrition, err := store.LoadNutrition()
		if err != nil {
			return fmt.Errorf("failed to load nutrition: %w", err)
		}
		hormones, err := store.LoadHormones()
		if err != nil {
			return fmt.Errorf("failed to load hormones: %w", err)
		}

		shown := 0
		if latest, err := view.Latest(nutrition); err == nil {
			shown += printGoal("Calories", latest.Calories, cfg.Targets.Calories)
			shown += printGoal("Protein", latest.Protein, cfg.Targets.Protein)
			shown += printGoal("Water", latest.WaterL, cfg.Targets.WaterL)
		}
		if latest, err := view.Latest(hormones); err == nil {
			steps := float64(latest.DailySteps)
			shown += printGoal("Steps", &steps, cfg.Targets.Steps)
		}

		if shown == 0 {
			fmt.Println("Nothing to evaluate: set targets in config and log some data.")
		}
		return nil
	},
}

// printGoal reports one goal line; returns 1 if a line was printed.
func printGoal(label string, value *float64, target float64) int {
	if target <= 0 {
		return 0 // target unset
	}
	if value == nil {
		fmt.Printf("%-10s %s\n", label, color.New(color.Faint).Sprint("no data"))
		return 1
	}

	a, err := metrics.GoalAdherence(*value, target)
	if err != nil {
		fmt.Printf("%-10s %v\n", label, err)
		return 1
	}

	status := statusColor(a.Status).Sprint(string(a.Status))
	fmt.Printf("%-10s %3d%%  %s\n", label, a.Pct, status)
	return 1
}

func statusColor(s metrics.AdherenceStatus) *color.Color {
	switch s {
	case metrics.StatusOnTrack:
		return color.New(color.FgGreen)
	case metrics.StatusCaution:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func init() {
	summaryCmd.AddCommand(summaryVolumeCmd)
	summaryCmd.AddCommand(summaryMacrosCmd)
	summaryCmd.AddCommand(summaryRecoveryCmd)
	summaryCmd.AddCommand(summaryTrendCmd)
	summaryCmd.AddCommand(summaryGoalsCmd)
	rootCmd.AddCommand(summaryCmd)
}
