// ABOUTME: End-to-end tests for the fittrack core.
// ABOUTME: Drives store, PR resolver, metrics engine and view builder together.
package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/pr"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/harperreed/fittrack/internal/view"
)

func TestFullWorkflow(t *testing.T) {
	store, err := storage.NewJSONStore(t.TempDir())
	require.NoError(t, err)

	// Week of training.
	isNew, err := pr.Record(store, models.NewWorkout("2024-03-11", "Bench Press", 4, 8, 62.5))
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = pr.Record(store, models.NewWorkout("2024-03-13", "Bench Press", 3, 5, 70))
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = pr.Record(store, models.NewWorkout("2024-03-18", "Bench Press", 5, 10, 55))
	require.NoError(t, err)
	assert.False(t, isNew, "lighter weight must not replace the PR")

	// Daily logs.
	require.NoError(t, store.AppendBodyMetric(models.NewBodyMetric("2024-03-11", 83.0).WithBodyfat(16)))
	require.NoError(t, store.AppendBodyMetric(models.NewBodyMetric("2024-03-18", 82.4).WithBodyfat(15.5)))
	require.NoError(t, store.AppendNutrition(models.NewNutrition("2024-03-18").WithMacros(180, 250, 70)))
	require.NoError(t, store.AppendRecovery(models.NewRecovery("2024-03-18", 7.2, 2, 4).WithRestingHR(60)))
	require.NoError(t, store.AppendSupplement(models.NewSupplement("2024-03-18", true, true, true, false, false)))
	require.NoError(t, store.AppendHormone(models.NewHormone("2024-03-18", 11200)))

	// PR projection reflects the heaviest bench.
	prs, err := store.LoadPersonalRecords()
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, 70.0, prs[0].BestWeight)
	assert.Equal(t, "2024-03-13", prs[0].Date)

	// Weekly volume: W11 has two sessions, W12 one.
	workouts, err := store.LoadWorkouts()
	require.NoError(t, err)
	weeks := metrics.WeeklyVolume(workouts)
	require.Len(t, weeks, 2)
	assert.Equal(t, "2024-W11", weeks[0].Label())
	assert.Equal(t, 2000.0+1050.0, weeks[0].Volume)
	assert.Equal(t, 2750.0, weeks[1].Volume)

	// Macro split of the latest nutrition entry.
	nutrition, err := store.LoadNutrition()
	require.NoError(t, err)
	latest, err := view.Latest(nutrition)
	require.NoError(t, err)
	split, err := metrics.SplitMacros(latest)
	require.NoError(t, err)
	assert.Equal(t, 2350.0, split.TotalKcal)

	// Today view for the last training day.
	summary, err := view.BuildToday(store, "2024-03-18")
	require.NoError(t, err)
	require.NotNil(t, summary.Bodyweight)
	assert.Equal(t, 82.4, summary.Bodyweight.Latest)
	require.NotNil(t, summary.Bodyweight.Change)
	assert.InDelta(t, -0.6, *summary.Bodyweight.Change, 1e-9)
	require.NotNil(t, summary.Supplements)
	assert.Equal(t, 3, summary.Supplements.AdherenceCount)
	require.NotNil(t, summary.Recovery)
	assert.Equal(t, 4.0, summary.Recovery.Heart)

	// Goal adherence on the logged macros.
	adherence, err := metrics.GoalAdherence(*latest.Protein, 200)
	require.NoError(t, err)
	assert.Equal(t, 90, adherence.Pct)
	assert.Equal(t, metrics.StatusOnTrack, adherence.Status)
}

func TestWorkflowSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := storage.NewJSONStore(dir)
	require.NoError(t, err)
	_, err = pr.Record(store, models.NewWorkout("2024-03-11", "Squat", 5, 5, 120))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := storage.NewJSONStore(dir)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	workouts, err := reopened.LoadWorkouts()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, 3000.0, workouts[0].Volume)

	prs, err := reopened.LoadPersonalRecords()
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, "Squat", prs[0].Exercise)
}
