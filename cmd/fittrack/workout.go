// ABOUTME: CLI command for logging workouts.
// ABOUTME: Appends the record and reports new personal records.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/pr"
)

var (
	workoutDate  string
	workoutDay   string
	workoutNotes string
)

var logWorkoutCmd = &cobra.Command{
	Use:     "workout <exercise> <sets> <reps> <weight>",
	Aliases: []string{"w"},
	Short:   "Log a workout entry",
	Long: `Log one exercise entry: sets x reps at a weight in kg.
Volume (sets x reps x weight) is computed and stored with the record,
and the personal record for the exercise is updated if this beats it.

Examples:
  fittrack log workout "Bench Press" 4 8 62.5
  fittrack log workout Squat 5 5 120 --day legs --notes "belt on"
  fittrack log workout Deadlift 1 3 180 --date 2024-03-11`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise := args[0]

		sets, err := strconv.Atoi(args[1])
		if err != nil || sets <= 0 {
			return fmt.Errorf("invalid sets: %s", args[1])
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil || reps <= 0 {
			return fmt.Errorf("invalid reps: %s", args[2])
		}
		weight, err := strconv.ParseFloat(args[3], 64)
		if err != nil || weight < 0 {
			return fmt.Errorf("invalid weight: %s", args[3])
		}

		date, err := resolveDate(workoutDate)
		if err != nil {
			return err
		}

		w := models.NewWorkout(date, exercise, sets, reps, weight)
		if workoutDay != "" {
			w.WithTrainingDay(workoutDay)
		}
		if workoutNotes != "" {
			w.WithNotes(workoutNotes)
		}

		isNewPR, err := pr.Record(store, w)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Logged %s", exercise)
		fmt.Printf("  %s %dx%d @ %.1f kg (volume %.1f)\n",
			color.New(color.Faint).Sprint(w.ID.String()[:8]),
			sets, reps, weight, w.Volume)
		if isNewPR {
			color.Yellow("★ New PR: %s %.1f kg x %d", exercise, weight, reps)
		}

		return nil
	},
}

func init() {
	logWorkoutCmd.Flags().StringVar(&workoutDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logWorkoutCmd.Flags().StringVar(&workoutDay, "day", "", "training day label (push, pull, legs, ...)")
	logWorkoutCmd.Flags().StringVar(&workoutNotes, "notes", "", "notes for the entry")
	logCmd.AddCommand(logWorkoutCmd)
}
