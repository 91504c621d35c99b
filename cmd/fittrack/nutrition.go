// ABOUTME: CLI command for logging nutrition intake.
// ABOUTME: All fields optional; macro-estimated calories stored when all macros are set.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	nutritionDate     string
	nutritionCalories float64
	nutritionProtein  float64
	nutritionCarbs    float64
	nutritionFats     float64
	nutritionWater    float64
	nutritionFiber    float64
	nutritionNotes    string
)

var logNutritionCmd = &cobra.Command{
	Use:     "nutrition",
	Aliases: []string{"n", "food"},
	Short:   "Log a nutrition entry",
	Long: `Log daily intake. Every field is optional; log what you know.
When protein, carbs and fats are all present, the macro-estimated
calories (4/4/9 kcal per gram) are stored alongside them.

Examples:
  fittrack log nutrition --calories 2400 --water 3.2
  fittrack log nutrition --protein 180 --carbs 250 --fats 70
  fittrack log nutrition --calories 2200 --fiber 35 --notes "cutting"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(nutritionDate)
		if err != nil {
			return err
		}

		n := models.NewNutrition(date)
		if cmd.Flags().Changed("calories") {
			n.WithCalories(nutritionCalories)
		}
		if cmd.Flags().Changed("protein") {
			n.WithProtein(nutritionProtein)
		}
		if cmd.Flags().Changed("carbs") {
			n.WithCarbs(nutritionCarbs)
		}
		if cmd.Flags().Changed("fats") {
			n.WithFats(nutritionFats)
		}
		if cmd.Flags().Changed("water") {
			n.WithWater(nutritionWater)
		}
		if cmd.Flags().Changed("fiber") {
			n.WithFiber(nutritionFiber)
		}
		if nutritionNotes != "" {
			n.WithNotes(nutritionNotes)
		}

		if err := store.AppendNutrition(n); err != nil {
			return fmt.Errorf("failed to log nutrition: %w", err)
		}

		color.Green("✓ Logged nutrition for %s", date)
		if n.EstCalories != nil {
			fmt.Printf("  %s %.0f kcal from macros\n",
				color.New(color.Faint).Sprint(n.ID.String()[:8]), *n.EstCalories)
		} else {
			fmt.Printf("  %s\n", color.New(color.Faint).Sprint(n.ID.String()[:8]))
		}

		return nil
	},
}

func init() {
	logNutritionCmd.Flags().StringVar(&nutritionDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logNutritionCmd.Flags().Float64Var(&nutritionCalories, "calories", 0, "calories (kcal)")
	logNutritionCmd.Flags().Float64Var(&nutritionProtein, "protein", 0, "protein (g)")
	logNutritionCmd.Flags().Float64Var(&nutritionCarbs, "carbs", 0, "carbs (g)")
	logNutritionCmd.Flags().Float64Var(&nutritionFats, "fats", 0, "fats (g)")
	logNutritionCmd.Flags().Float64Var(&nutritionWater, "water", 0, "water (liters)")
	logNutritionCmd.Flags().Float64Var(&nutritionFiber, "fiber", 0, "fiber (g)")
	logNutritionCmd.Flags().StringVar(&nutritionNotes, "notes", "", "notes for the entry")
	logCmd.AddCommand(logNutritionCmd)
}
