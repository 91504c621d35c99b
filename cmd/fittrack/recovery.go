// ABOUTME: CLI command for logging recovery check-ins.
// ABOUTME: Sleep hours plus 1-5 stress and energy ratings, optional resting HR.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	recoveryDate string
	recoveryHR   float64
)

var logRecoveryCmd = &cobra.Command{
	Use:     "recovery <sleep_hours> <stress 1-5> <energy 1-5>",
	Aliases: []string{"r"},
	Short:   "Log a recovery check-in",
	Long: `Log sleep hours, stress level and energy level (both 1-5), with an
optional resting heart rate. The composite recovery score is computed on
read; absence of resting HR scores a neutral 2.5 on the heart axis.

Examples:
  fittrack log recovery 7.5 2 4
  fittrack log recovery 6 4 2 --hr 62`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		sleep, err := strconv.ParseFloat(args[0], 64)
		if err != nil || sleep < 0 {
			return fmt.Errorf("invalid sleep hours: %s", args[0])
		}
		stress, err := strconv.Atoi(args[1])
		if err != nil || stress < 1 || stress > 5 {
			return fmt.Errorf("invalid stress level: %s (want 1-5)", args[1])
		}
		energy, err := strconv.Atoi(args[2])
		if err != nil || energy < 1 || energy > 5 {
			return fmt.Errorf("invalid energy level: %s (want 1-5)", args[2])
		}

		date, err := resolveDate(recoveryDate)
		if err != nil {
			return err
		}

		r := models.NewRecovery(date, sleep, stress, energy)
		if cmd.Flags().Changed("hr") {
			r.WithRestingHR(recoveryHR)
		}

		if err := store.AppendRecovery(r); err != nil {
			return fmt.Errorf("failed to log recovery: %w", err)
		}

		color.Green("✓ Logged recovery for %s", date)
		fmt.Printf("  %s %.1fh sleep, stress %d/5, energy %d/5\n",
			color.New(color.Faint).Sprint(r.ID.String()[:8]), sleep, stress, energy)

		return nil
	},
}

func init() {
	logRecoveryCmd.Flags().StringVar(&recoveryDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logRecoveryCmd.Flags().Float64Var(&recoveryHR, "hr", 0, "resting heart rate (bpm)")
	logCmd.AddCommand(logRecoveryCmd)
}
