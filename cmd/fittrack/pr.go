// ABOUTME: CLI command for listing personal records.
// ABOUTME: Shows the per-exercise best-lift projection.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var prCmd = &cobra.Command{
	Use:     "pr",
	Aliases: []string{"prs", "records"},
	Short:   "List personal records",
	Long: `List the best (weight, reps) pair ever logged per exercise, with the
date it was set. The projection is maintained on every workout log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prs, err := store.LoadPersonalRecords()
		if err != nil {
			return fmt.Errorf("failed to load personal records: %w", err)
		}

		if len(prs) == 0 {
			fmt.Println("No personal records yet. Log a workout first.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range prs {
			fmt.Printf("%s %.1f kg x %d  %s\n",
				padRight(p.Exercise, 24),
				p.BestWeight, p.BestReps,
				faint.Sprint(p.Date))
		}

		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(prCmd)
}
