// ABOUTME: Personal record resolver for the per-exercise best-lift projection.
// ABOUTME: Strict two-key maximum: weight descending, then reps descending.
package pr

import "github.com/harperreed/fittrack/internal/models"

// Supersedes reports whether a new workout beats the stored personal record.
// Strictly greater weight wins; equal weight falls back to strictly greater
// reps. A tie on both keys does not supersede, so the original PR date is
// kept.
func Supersedes(stored models.PersonalRecord, w models.Workout) bool {
	if w.Weight > stored.BestWeight {
		return true
	}
	return w.Weight == stored.BestWeight && w.Reps > stored.BestReps
}

// Apply folds one workout into the projection, returning the updated
// projection and whether the workout set a new PR. Exercise names are
// matched verbatim. New exercises are appended, preserving the order in
// which exercises were first logged.
func Apply(prs []models.PersonalRecord, w models.Workout) ([]models.PersonalRecord, bool) {
	for i := range prs {
		if prs[i].Exercise != w.Exercise {
			continue
		}
		if !Supersedes(prs[i], w) {
			return prs, false
		}
		prs[i] = fromWorkout(w)
		return prs, true
	}
	return append(prs, fromWorkout(w)), true
}

// Rebuild derives the full projection from a workout history. The result is
// identical to folding the records one at a time in any order that preserves
// per-exercise first-seen ordering.
func Rebuild(workouts []models.Workout) []models.PersonalRecord {
	var prs []models.PersonalRecord
	for _, w := range workouts {
		prs, _ = Apply(prs, w)
	}
	return prs
}

func fromWorkout(w models.Workout) models.PersonalRecord {
	return models.PersonalRecord{
		Exercise:   w.Exercise,
		BestWeight: w.Weight,
		BestReps:   w.Reps,
		Date:       w.Date,
	}
}
