// ABOUTME: CLI command for the today dashboard view.
// ABOUTME: Latest value and delta per metric, with explicit no-data markers.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/view"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's snapshot across all categories",
	Long: `Show the most recent value and change-vs-previous for each tracked
metric, today's supplement checklist, and the latest recovery score.

"Latest" follows append order. A metric with a single entry shows no
delta; a metric with no entries shows "no data".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.Today()
		summary, err := view.BuildToday(store, date)
		if err != nil {
			return fmt.Errorf("failed to build today view: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Printf("Today (%s)\n\n", date)

		printDelta("Bodyweight", summary.Bodyweight, "kg", 1)
		printDelta("Lean mass", summary.LeanMass, "kg", 1)
		printDelta("Calories", summary.Calories, "kcal", 0)
		printDelta("Protein", summary.Protein, "g", 0)
		printDelta("Sleep", summary.SleepHours, "h", 1)
		printDelta("Steps", summary.DailySteps, "", 0)

		fmt.Println()
		if summary.Supplements != nil {
			fmt.Printf("%-12s %d/5 taken\n", "Supplements", summary.Supplements.AdherenceCount)
		} else {
			fmt.Printf("%-12s %s\n", "Supplements", color.New(color.Faint).Sprint("no log for today"))
		}

		if summary.Recovery != nil {
			fmt.Println("\nRecovery:")
			for _, axis := range summary.Recovery.Axes() {
				fmt.Printf("  %-12s %.1f/5\n", axis.Label, axis.Score)
			}
		}

		return nil
	},
}

func printDelta(label string, d *view.Delta, unit string, decimals int) {
	faint := color.New(color.Faint)
	if d == nil {
		fmt.Printf("%-12s %s\n", label, faint.Sprint("no data"))
		return
	}

	line := fmt.Sprintf("%-12s %.*f %s", label, decimals, d.Latest, unit)
	if d.Change != nil {
		line += faint.Sprintf(" (%+.*f)", decimals, *d.Change)
	}
	fmt.Println(line)
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
