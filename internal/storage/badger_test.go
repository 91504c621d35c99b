// ABOUTME: Tests for the Badger storage backend.
// ABOUTME: Verifies the same append-only contract as the file backend.
package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/fittrack/internal/models"
)

func newTestBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := NewBadgerStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerStoreLoadMissingKeyReturnsEmpty(t *testing.T) {
	s := newTestBadgerStore(t)

	workouts, err := s.LoadWorkouts()
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestBadgerStoreAppendAndReload(t *testing.T) {
	s := newTestBadgerStore(t)

	entries := []*models.Workout{
		models.NewWorkout("2024-03-11", "Squat", 5, 5, 120),
		models.NewWorkout("2024-03-12", "Squat", 3, 8, 100),
	}
	for _, w := range entries {
		require.NoError(t, s.AppendWorkout(w))
	}

	loaded, err := s.LoadWorkouts()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, entries[0].ID, loaded[0].ID)
	assert.Equal(t, entries[1].ID, loaded[1].ID)
	assert.Equal(t, 3000.0, loaded[0].Volume)
}

func TestBadgerStorePersonalRecordProjection(t *testing.T) {
	s := newTestBadgerStore(t)

	prs := []models.PersonalRecord{
		{Exercise: "Deadlift", BestWeight: 180, BestReps: 1, Date: "2024-02-10"},
	}
	require.NoError(t, s.SavePersonalRecords(prs))

	loaded, err := s.LoadPersonalRecords()
	require.NoError(t, err)
	assert.Equal(t, prs, loaded)
}

func TestBadgerStoreCollectionsAreIndependent(t *testing.T) {
	s := newTestBadgerStore(t)

	require.NoError(t, s.AppendBodyMetric(models.NewBodyMetric("2024-03-11", 80).WithBodyfat(15)))
	require.NoError(t, s.AppendNutrition(models.NewNutrition("2024-03-11").WithMacros(180, 250, 70)))

	body, err := s.LoadBodyMetrics()
	require.NoError(t, err)
	require.Len(t, body, 1)
	require.NotNil(t, body[0].LeanMass)
	assert.InDelta(t, 68.0, *body[0].LeanMass, 1e-9)

	workouts, err := s.LoadWorkouts()
	require.NoError(t, err)
	assert.Empty(t, workouts)
}
