// ABOUTME: Tests for the derived metrics engine.
// ABOUTME: Covers weekly volume grouping, macro splits, adherence boundaries, recovery scoring.
package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/fittrack/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestWeeklyVolumeGroupsByISOWeek(t *testing.T) {
	workouts := []models.Workout{
		{Date: "2024-03-11", Exercise: "Squat", Volume: 2000},    // week 11
		{Date: "2024-03-13", Exercise: "Bench", Volume: 1500},    // week 11
		{Date: "2024-03-18", Exercise: "Deadlift", Volume: 2800}, // week 12
	}

	weeks := WeeklyVolume(workouts)

	require.Len(t, weeks, 2)
	assert.Equal(t, "2024-W11", weeks[0].Label())
	assert.Equal(t, 3500.0, weeks[0].Volume)
	assert.Equal(t, "2024-W12", weeks[1].Label())
	assert.Equal(t, 2800.0, weeks[1].Volume)
}

func TestWeeklyVolumeSkipsUnparseableDates(t *testing.T) {
	workouts := []models.Workout{
		{Date: "2024-03-11", Volume: 2000},
		{Date: "last tuesday", Volume: 9999},
		{Date: "", Volume: 500},
	}

	weeks := WeeklyVolume(workouts)

	require.Len(t, weeks, 1)
	assert.Equal(t, 2000.0, weeks[0].Volume)
}

func TestWeeklyVolumeOrdersAcrossYears(t *testing.T) {
	workouts := []models.Workout{
		{Date: "2024-01-08", Volume: 100},
		{Date: "2023-12-18", Volume: 200},
	}

	weeks := WeeklyVolume(workouts)

	require.Len(t, weeks, 2)
	assert.Equal(t, 2023, weeks[0].Year)
	assert.Equal(t, 2024, weeks[1].Year)
}

func TestSplitMacros(t *testing.T) {
	n := models.Nutrition{Protein: ptr(180), Carbs: ptr(250), Fats: ptr(70)}

	split, err := SplitMacros(n)

	require.NoError(t, err)
	assert.Equal(t, 720.0, split.ProteinKcal)
	assert.Equal(t, 1000.0, split.CarbsKcal)
	assert.Equal(t, 630.0, split.FatsKcal)
	assert.Equal(t, 2350.0, split.TotalKcal)
}

func TestSplitMacrosAnyMissingFieldIsInsufficient(t *testing.T) {
	tests := []struct {
		name string
		n    models.Nutrition
	}{
		{"missing protein", models.Nutrition{Carbs: ptr(250), Fats: ptr(70)}},
		{"missing carbs", models.Nutrition{Protein: ptr(180), Fats: ptr(70)}},
		{"missing fats", models.Nutrition{Protein: ptr(180), Carbs: ptr(250)}},
		{"nothing logged", models.Nutrition{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitMacros(tt.n)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestGoalAdherenceBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		target     float64
		wantPct    int
		wantStatus AdherenceStatus
	}{
		{"exactly 90 is on-track", 1800, 2000, 90, StatusOnTrack},
		{"just under 90 is caution", 1799, 2000, 89, StatusCaution},
		{"exactly 70 is caution", 1400, 2000, 70, StatusCaution},
		{"under 70 is off-track", 1399, 2000, 69, StatusOffTrack},
		{"over target caps at 100", 2500, 2000, 100, StatusOnTrack},
		{"zero value is a real 0%", 0, 2000, 0, StatusOffTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := GoalAdherence(tt.value, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPct, a.Pct)
			assert.Equal(t, tt.wantStatus, a.Status)
		})
	}
}

func TestGoalAdherenceInvalidTarget(t *testing.T) {
	_, err := GoalAdherence(1800, 0)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = GoalAdherence(1800, -500)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestRecoveryScore(t *testing.T) {
	r := models.Recovery{SleepHours: 7.2, StressLevel: 2, EnergyLevel: 4, RestingHR: ptr(60.0)}

	v := RecoveryScore(r)

	assert.InDelta(t, 4.0, v.Sleep, 1e-9)
	assert.Equal(t, 3.0, v.Stress)
	assert.Equal(t, 4.0, v.Energy)
	assert.Equal(t, 4.0, v.Heart)
}

func TestRecoveryScoreSleepCapsAtFive(t *testing.T) {
	v := RecoveryScore(models.Recovery{SleepHours: 12, StressLevel: 1, EnergyLevel: 5})
	assert.Equal(t, 5.0, v.Sleep)
}

func TestRecoveryScoreMissingRestingHRIsNeutral(t *testing.T) {
	v := RecoveryScore(models.Recovery{SleepHours: 8, StressLevel: 3, EnergyLevel: 3})
	assert.Equal(t, 2.5, v.Heart)
}

func TestRecoveryScoreHighHeartRateFloorsAtZero(t *testing.T) {
	v := RecoveryScore(models.Recovery{SleepHours: 8, StressLevel: 3, EnergyLevel: 3, RestingHR: ptr(120.0)})
	assert.Equal(t, 0.0, v.Heart)
}

func TestRecoveryVectorAxes(t *testing.T) {
	v := RecoveryVector{Sleep: 4, Stress: 3, Energy: 4, Heart: 2.5}

	axes := v.Axes()

	require.Len(t, axes, 4)
	assert.Equal(t, "Sleep", axes[0].Label)
	assert.Equal(t, 2.5, axes[3].Score)
}

func TestRollingNutritionUsesTrailingWindow(t *testing.T) {
	var entries []models.Nutrition
	// Ten entries; only the last seven (calories 400..1000) should count.
	for i := 1; i <= 10; i++ {
		entries = append(entries, models.Nutrition{Calories: ptr(float64(i * 100))})
	}

	avg, err := RollingNutrition(entries, 7)

	require.NoError(t, err)
	require.NotNil(t, avg.Calories)
	assert.Equal(t, 700.0, *avg.Calories)
	assert.Nil(t, avg.Protein)
}

func TestRollingNutritionSkipsMissingFieldsPerEntry(t *testing.T) {
	entries := []models.Nutrition{
		{Calories: ptr(2000), Protein: ptr(150)},
		{Calories: ptr(2200)},
		{Protein: ptr(170)},
	}

	avg, err := RollingNutrition(entries, 7)

	require.NoError(t, err)
	assert.Equal(t, 2100.0, *avg.Calories)
	assert.Equal(t, 160.0, *avg.Protein)
	assert.Nil(t, avg.Carbs)
}

func TestRollingNutritionNoEntriesIsInsufficient(t *testing.T) {
	_, err := RollingNutrition(nil, 7)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
