// ABOUTME: CLI command for logging hormone-adjacent daily readings.
// ABOUTME: Daily steps plus optional 1-5 ratings.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	hormoneDate          string
	hormoneMorningEnergy int
	hormoneLibido        int
	hormoneNotes         string
)

var logHormoneCmd = &cobra.Command{
	Use:     "hormone <daily_steps>",
	Aliases: []string{"h"},
	Short:   "Log hormone-adjacent readings",
	Long: `Log daily steps with optional morning energy and libido ratings (1-5).

Examples:
  fittrack log hormone 9500
  fittrack log hormone 12000 --morning-energy 4 --libido 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := strconv.Atoi(args[0])
		if err != nil || steps < 0 {
			return fmt.Errorf("invalid daily steps: %s", args[0])
		}

		date, err := resolveDate(hormoneDate)
		if err != nil {
			return err
		}

		h := models.NewHormone(date, steps)
		if cmd.Flags().Changed("morning-energy") {
			if hormoneMorningEnergy < 1 || hormoneMorningEnergy > 5 {
				return fmt.Errorf("invalid morning energy: %d (want 1-5)", hormoneMorningEnergy)
			}
			h.WithMorningEnergy(hormoneMorningEnergy)
		}
		if cmd.Flags().Changed("libido") {
			if hormoneLibido < 1 || hormoneLibido > 5 {
				return fmt.Errorf("invalid libido: %d (want 1-5)", hormoneLibido)
			}
			h.WithLibido(hormoneLibido)
		}
		if hormoneNotes != "" {
			h.WithNotes(hormoneNotes)
		}

		if err := store.AppendHormone(h); err != nil {
			return fmt.Errorf("failed to log hormone readings: %w", err)
		}

		color.Green("✓ Logged hormone readings for %s", date)
		fmt.Printf("  %s %d steps\n",
			color.New(color.Faint).Sprint(h.ID.String()[:8]), steps)

		return nil
	},
}

func init() {
	logHormoneCmd.Flags().StringVar(&hormoneDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logHormoneCmd.Flags().IntVar(&hormoneMorningEnergy, "morning-energy", 0, "morning energy rating (1-5)")
	logHormoneCmd.Flags().IntVar(&hormoneLibido, "libido", 0, "libido rating (1-5)")
	logHormoneCmd.Flags().StringVar(&hormoneNotes, "notes", "", "notes for the entry")
	logCmd.AddCommand(logHormoneCmd)
}
