// ABOUTME: Tests for record constructors and write-time derived fields.
// ABOUTME: Covers volume, lean mass, macro-estimated calories, adherence count.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkoutComputesVolume(t *testing.T) {
	w := NewWorkout("2024-03-11", "Squat", 4, 8, 62.5)

	assert.NotEqual(t, "", w.ID.String())
	assert.Equal(t, "Squat", w.Exercise)
	assert.Equal(t, 2000.0, w.Volume)
	assert.False(t, w.CreatedAt.IsZero())
}

func TestWorkoutBuilders(t *testing.T) {
	w := NewWorkout("2024-03-11", "Bench Press", 3, 5, 100).
		WithTrainingDay("push").
		WithNotes("paused reps")

	assert.Equal(t, "push", w.TrainingDay)
	assert.Equal(t, "paused reps", w.Notes)
	assert.Equal(t, 1500.0, w.Volume)
}

func TestBodyMetricLeanMass(t *testing.T) {
	b := NewBodyMetric("2024-03-11", 80).WithBodyfat(15)

	require.NotNil(t, b.LeanMass)
	assert.InDelta(t, 68.0, *b.LeanMass, 1e-9)
}

func TestBodyMetricWithoutBodyfatHasNoLeanMass(t *testing.T) {
	b := NewBodyMetric("2024-03-11", 80)

	assert.Nil(t, b.BodyfatPct)
	assert.Nil(t, b.LeanMass)
}

func TestBodyMetricTapeIgnoresZeroes(t *testing.T) {
	b := NewBodyMetric("2024-03-11", 80).WithTape(82, 0, 38, 0)

	require.NotNil(t, b.Waist)
	assert.Equal(t, 82.0, *b.Waist)
	assert.Nil(t, b.Chest)
	require.NotNil(t, b.Arms)
	assert.Nil(t, b.Hips)
}

func TestNutritionMacroEstimatedCalories(t *testing.T) {
	n := NewNutrition("2024-03-11").WithMacros(180, 250, 70)

	require.NotNil(t, n.EstCalories)
	assert.Equal(t, 2350.0, *n.EstCalories)
}

func TestNutritionWithoutMacrosHasNoEstimate(t *testing.T) {
	n := NewNutrition("2024-03-11").WithCalories(2200).WithWater(3.5)

	assert.Nil(t, n.EstCalories)
	assert.Nil(t, n.Protein)
	require.NotNil(t, n.WaterL)
	assert.Equal(t, 3.5, *n.WaterL)
}

func TestNutritionPartialMacrosHaveNoEstimate(t *testing.T) {
	n := NewNutrition("2024-03-11").WithProtein(180).WithCarbs(250)
	assert.Nil(t, n.EstCalories)

	n.WithFats(70)
	require.NotNil(t, n.EstCalories)
	assert.Equal(t, 2350.0, *n.EstCalories)
}

func TestNewSupplementAdherenceCount(t *testing.T) {
	tests := []struct {
		name  string
		entry *Supplement
		want  int
	}{
		{"all taken", NewSupplement("2024-03-11", true, true, true, true, true), 5},
		{"none taken", NewSupplement("2024-03-11", false, false, false, false, false), 0},
		{"some taken", NewSupplement("2024-03-11", true, false, true, false, true), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.AdherenceCount)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = ParseDate("yesterday")
	assert.Error(t, err)
}
