// ABOUTME: CLI command for logging the daily supplement checklist.
// ABOUTME: Adherence count is computed and stored with the record.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	supplementDate      string
	supplementCreatine  bool
	supplementVitaminD  bool
	supplementOmega3    bool
	supplementMagnesium bool
	supplementZinc      bool
)

var logSupplementCmd = &cobra.Command{
	Use:     "supplement",
	Aliases: []string{"s", "supp"},
	Short:   "Log today's supplement checklist",
	Long: `Log which supplements were taken. Omitted flags count as not taken.

Examples:
  fittrack log supplement --creatine --vitamin-d --omega-3
  fittrack log supplement --creatine --magnesium --zinc --date 2024-03-10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(supplementDate)
		if err != nil {
			return err
		}

		s := models.NewSupplement(date,
			supplementCreatine, supplementVitaminD, supplementOmega3,
			supplementMagnesium, supplementZinc)

		if err := store.AppendSupplement(s); err != nil {
			return fmt.Errorf("failed to log supplements: %w", err)
		}

		color.Green("✓ Logged supplements for %s", date)
		fmt.Printf("  %s %d/5 taken\n",
			color.New(color.Faint).Sprint(s.ID.String()[:8]), s.AdherenceCount)

		return nil
	},
}

func init() {
	logSupplementCmd.Flags().StringVar(&supplementDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logSupplementCmd.Flags().BoolVar(&supplementCreatine, "creatine", false, "creatine taken")
	logSupplementCmd.Flags().BoolVar(&supplementVitaminD, "vitamin-d", false, "vitamin D taken")
	logSupplementCmd.Flags().BoolVar(&supplementOmega3, "omega-3", false, "omega-3 taken")
	logSupplementCmd.Flags().BoolVar(&supplementMagnesium, "magnesium", false, "magnesium taken")
	logSupplementCmd.Flags().BoolVar(&supplementZinc, "zinc", false, "zinc taken")
	logCmd.AddCommand(logSupplementCmd)
}
