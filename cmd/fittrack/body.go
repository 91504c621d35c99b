// ABOUTME: CLI command for logging body composition measurements.
// ABOUTME: Lean mass is derived when bodyfat is provided.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	bodyDate    string
	bodyBodyfat float64
	bodyWaist   float64
	bodyChest   float64
	bodyArms    float64
	bodyHips    float64
	bodyNotes   string
)

var logBodyCmd = &cobra.Command{
	Use:     "body <bodyweight>",
	Aliases: []string{"b"},
	Short:   "Log a body measurement",
	Long: `Log a bodyweight entry with optional bodyfat and tape measurements.
When bodyfat is given, lean mass is computed and stored with the record.

Examples:
  fittrack log body 82.5
  fittrack log body 82.5 --bodyfat 15
  fittrack log body 82.5 --waist 82 --chest 104 --arms 38`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bodyweight, err := strconv.ParseFloat(args[0], 64)
		if err != nil || bodyweight <= 0 {
			return fmt.Errorf("invalid bodyweight: %s", args[0])
		}

		date, err := resolveDate(bodyDate)
		if err != nil {
			return err
		}

		b := models.NewBodyMetric(date, bodyweight)
		if bodyBodyfat > 0 {
			b.WithBodyfat(bodyBodyfat)
		}
		b.WithTape(bodyWaist, bodyChest, bodyArms, bodyHips)
		if bodyNotes != "" {
			b.WithNotes(bodyNotes)
		}

		if err := store.AppendBodyMetric(b); err != nil {
			return fmt.Errorf("failed to log body metric: %w", err)
		}

		color.Green("✓ Logged body measurement")
		line := fmt.Sprintf("  %s %.1f kg",
			color.New(color.Faint).Sprint(b.ID.String()[:8]), bodyweight)
		if b.LeanMass != nil {
			line += fmt.Sprintf(" (%.1f%% bf, %.1f kg lean)", *b.BodyfatPct, *b.LeanMass)
		}
		fmt.Println(line)

		return nil
	},
}

func init() {
	logBodyCmd.Flags().StringVar(&bodyDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logBodyCmd.Flags().Float64Var(&bodyBodyfat, "bodyfat", 0, "bodyfat percentage")
	logBodyCmd.Flags().Float64Var(&bodyWaist, "waist", 0, "waist circumference (cm)")
	logBodyCmd.Flags().Float64Var(&bodyChest, "chest", 0, "chest circumference (cm)")
	logBodyCmd.Flags().Float64Var(&bodyArms, "arms", 0, "arm circumference (cm)")
	logBodyCmd.Flags().Float64Var(&bodyHips, "hips", 0, "hip circumference (cm)")
	logBodyCmd.Flags().StringVar(&bodyNotes, "notes", "", "notes for the entry")
	logCmd.AddCommand(logBodyCmd)
}
