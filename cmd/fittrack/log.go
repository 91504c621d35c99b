// ABOUTME: Parent command and shared helpers for logging records.
// ABOUTME: Each category has its own subcommand file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"add"},
	Short:   "Log a record in one of the tracking categories",
	Long: `Log a record. Each category is its own subcommand:

  fittrack log workout "Bench Press" 4 8 62.5
  fittrack log body 82.5 --bodyfat 15
  fittrack log nutrition --calories 2400 --protein 180
  fittrack log recovery 7.5 2 4 --hr 58
  fittrack log supplement --creatine --vitamin-d
  fittrack log hormone 9500

All subcommands accept --date (YYYY-MM-DD), defaulting to today.`,
}

// resolveDate validates a --date flag value, defaulting to today.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return models.Today(), nil
	}
	if _, err := models.ParseDate(flag); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", flag)
	}
	return flag, nil
}

func init() {
	rootCmd.AddCommand(logCmd)
}
