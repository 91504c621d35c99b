// ABOUTME: Tests for the workout write path against a real store.
// ABOUTME: Verifies eager PR maintenance on every append.
package pr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

func TestRecordMaintainsProjection(t *testing.T) {
	store, err := storage.NewJSONStore(t.TempDir())
	require.NoError(t, err)

	isNew, err := Record(store, models.NewWorkout("2024-01-01", "Bench Press", 3, 5, 100))
	require.NoError(t, err)
	assert.True(t, isNew)

	// Weaker set: workout stored, projection untouched.
	isNew, err = Record(store, models.NewWorkout("2024-01-08", "Bench Press", 3, 8, 90))
	require.NoError(t, err)
	assert.False(t, isNew)

	workouts, err := store.LoadWorkouts()
	require.NoError(t, err)
	assert.Len(t, workouts, 2)

	prs, err := store.LoadPersonalRecords()
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, 100.0, prs[0].BestWeight)
	assert.Equal(t, "2024-01-01", prs[0].Date)

	// Heavier set replaces the stored PR.
	isNew, err = Record(store, models.NewWorkout("2024-02-01", "Bench Press", 1, 3, 105))
	require.NoError(t, err)
	assert.True(t, isNew)

	prs, err = store.LoadPersonalRecords()
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, 105.0, prs[0].BestWeight)
	assert.Equal(t, "2024-02-01", prs[0].Date)
}
