// ABOUTME: Workout write path: append the record and maintain the PR projection.
// ABOUTME: The projection is persisted after every workout append, changed or not.
package pr

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// Record appends a workout and eagerly re-derives the personal record
// projection for the affected exercise. Returns whether the workout set a
// new PR.
func Record(store storage.Store, w *models.Workout) (bool, error) {
	if err := store.AppendWorkout(w); err != nil {
		return false, fmt.Errorf("append workout: %w", err)
	}

	prs, err := store.LoadPersonalRecords()
	if err != nil {
		return false, fmt.Errorf("load personal records: %w", err)
	}

	prs, isNew := Apply(prs, *w)
	if err := store.SavePersonalRecords(prs); err != nil {
		return false, fmt.Errorf("save personal records: %w", err)
	}
	return isNew, nil
}
