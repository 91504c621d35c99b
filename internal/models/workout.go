// ABOUTME: Workout and PersonalRecord models for strength training logs.
// ABOUTME: Volume is computed at write time and stored denormalized.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout represents one logged exercise entry (sets x reps at a weight).
type Workout struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	TrainingDay string    `json:"training_day,omitempty"`
	Exercise    string    `json:"exercise"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	Weight      float64   `json:"weight"`
	Volume      float64   `json:"volume"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewWorkout creates a Workout with generated UUID and computed volume.
func NewWorkout(date, exercise string, sets, reps int, weight float64) *Workout {
	return &Workout{
		ID:        uuid.New(),
		Date:      date,
		Exercise:  exercise,
		Sets:      sets,
		Reps:      reps,
		Weight:    weight,
		Volume:    float64(sets) * float64(reps) * weight,
		CreatedAt: time.Now(),
	}
}

// WithTrainingDay sets the training day label (push, pull, legs, ...).
func (w *Workout) WithTrainingDay(day string) *Workout {
	w.TrainingDay = day
	return w
}

// WithNotes sets notes on the workout.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = notes
	return w
}

// PersonalRecord is the best-ever (weight, reps) pair for one exercise.
// Exercise names are matched verbatim; "Bench Press" and "bench press"
// are distinct keys.
type PersonalRecord struct {
	Exercise   string  `json:"exercise"`
	BestWeight float64 `json:"best_weight"`
	BestReps   int     `json:"best_reps"`
	Date       string  `json:"date"`
}
