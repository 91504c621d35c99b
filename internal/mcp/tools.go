// ABOUTME: MCP tool implementations for fitness data.
// ABOUTME: Logging tools plus read-only derived-metric views.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/pr"
	"github.com/harperreed/fittrack/internal/view"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout entry (sets x reps at a weight); updates personal records",
	}, s.handleLogWorkout)

	// log_nutrition
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_nutrition",
		Description: "Log a nutrition entry; all fields optional",
	}, s.handleLogNutrition)

	// today_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "today_summary",
		Description: "Latest value and delta per tracked metric, plus today's supplements",
	}, s.handleTodaySummary)

	// weekly_volume
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_volume",
		Description: "Training volume summed per ISO week",
	}, s.handleWeeklyVolume)

	// macro_split
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "macro_split",
		Description: "Macro energy split of the latest nutrition entry",
	}, s.handleMacroSplit)

	// recovery_score
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recovery_score",
		Description: "Composite recovery score (four 0-5 axes) of the latest check-in",
	}, s.handleRecoveryScore)

	// list_prs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_prs",
		Description: "List personal records per exercise",
	}, s.handleListPRs)
}

// Tool input/output types

type logWorkoutInput struct {
	Date        string  `json:"date,omitempty" jsonschema:"description=Log date (YYYY-MM-DD), defaults to today"`
	Exercise    string  `json:"exercise" jsonschema:"description=Exercise name (matched verbatim for PRs),required"`
	Sets        int     `json:"sets" jsonschema:"description=Number of sets,required"`
	Reps        int     `json:"reps" jsonschema:"description=Reps per set,required"`
	Weight      float64 `json:"weight" jsonschema:"description=Weight in kg,required"`
	TrainingDay string  `json:"training_day,omitempty" jsonschema:"description=Training day label (push, pull, legs, ...)"`
	Notes       string  `json:"notes,omitempty" jsonschema:"description=Optional notes"`
}

type logWorkoutOutput struct {
	ID      string  `json:"id"`
	Volume  float64 `json:"volume"`
	NewPR   bool    `json:"new_pr"`
	Message string  `json:"message"`
}

type logNutritionInput struct {
	Date     string   `json:"date,omitempty" jsonschema:"description=Log date (YYYY-MM-DD), defaults to today"`
	Calories *float64 `json:"calories,omitempty" jsonschema:"description=Calories (kcal)"`
	Protein  *float64 `json:"protein,omitempty" jsonschema:"description=Protein (g)"`
	Carbs    *float64 `json:"carbs,omitempty" jsonschema:"description=Carbs (g)"`
	Fats     *float64 `json:"fats,omitempty" jsonschema:"description=Fats (g)"`
	WaterL   *float64 `json:"water_l,omitempty" jsonschema:"description=Water (liters)"`
	Fiber    *float64 `json:"fiber,omitempty" jsonschema:"description=Fiber (g)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type emptyInput struct{}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	if input.Exercise == "" {
		return nil, logWorkoutOutput{}, fmt.Errorf("exercise is required")
	}
	if input.Sets <= 0 || input.Reps <= 0 || input.Weight < 0 {
		return nil, logWorkoutOutput{}, fmt.Errorf("sets, reps and weight must be positive")
	}

	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, logWorkoutOutput{}, err
	}

	w := models.NewWorkout(date, input.Exercise, input.Sets, input.Reps, input.Weight)
	if input.TrainingDay != "" {
		w.WithTrainingDay(input.TrainingDay)
	}
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}

	isNewPR, err := pr.Record(s.store, w)
	if err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	msg := fmt.Sprintf("Logged %s %dx%d @ %.1f kg", input.Exercise, input.Sets, input.Reps, input.Weight)
	if isNewPR {
		msg += " (new PR)"
	}
	return nil, logWorkoutOutput{
		ID:      w.ID.String()[:8],
		Volume:  w.Volume,
		NewPR:   isNewPR,
		Message: msg,
	}, nil
}

func (s *Server) handleLogNutrition(ctx context.Context, req *mcp.CallToolRequest, input logNutritionInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	n := models.NewNutrition(date)
	if input.Calories != nil {
		n.WithCalories(*input.Calories)
	}
	if input.Protein != nil {
		n.WithProtein(*input.Protein)
	}
	if input.Carbs != nil {
		n.WithCarbs(*input.Carbs)
	}
	if input.Fats != nil {
		n.WithFats(*input.Fats)
	}
	if input.WaterL != nil {
		n.WithWater(*input.WaterL)
	}
	if input.Fiber != nil {
		n.WithFiber(*input.Fiber)
	}

	if err := s.store.AppendNutrition(n); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log nutrition: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged nutrition for %s (ID: %s)", date, n.ID.String()[:8]),
	}, nil
}

func (s *Server) handleTodaySummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	summary, err := view.BuildToday(s.store, models.Today())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build today view: %w", err)
	}
	return nil, summary, nil
}

func (s *Server) handleWeeklyVolume(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	workouts, err := s.store.LoadWorkouts()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load workouts: %w", err)
	}

	weeks := metrics.WeeklyVolume(workouts)
	if len(weeks) == 0 {
		return nil, map[string]any{"message": "No workout data yet."}, nil
	}
	return nil, weeks, nil
}

func (s *Server) handleMacroSplit(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	entries, err := s.store.LoadNutrition()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load nutrition: %w", err)
	}

	latest, err := view.Latest(entries)
	if err != nil {
		return nil, map[string]any{"message": "No nutrition data yet."}, nil
	}

	split, err := metrics.SplitMacros(latest)
	if errors.Is(err, metrics.ErrInsufficientData) {
		return nil, map[string]any{"message": "Latest entry is missing one or more macros."}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return nil, split, nil
}

func (s *Server) handleRecoveryScore(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	entries, err := s.store.LoadRecovery()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load recovery: %w", err)
	}

	latest, err := view.Latest(entries)
	if err != nil {
		return nil, map[string]any{"message": "No recovery data yet."}, nil
	}

	return nil, metrics.RecoveryScore(latest).Axes(), nil
}

func (s *Server) handleListPRs(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	prs, err := s.store.LoadPersonalRecords()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load personal records: %w", err)
	}

	if len(prs) == 0 {
		return nil, map[string]any{"message": "No personal records yet."}, nil
	}
	return nil, prs, nil
}

func resolveDate(date string) (string, error) {
	if date == "" {
		return models.Today(), nil
	}
	if _, err := models.ParseDate(date); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}
	return date, nil
}
