// ABOUTME: Store interface and category definitions for fitness data.
// ABOUTME: Defines the append-only contract shared by the json and badger backends.
package storage

import (
	"os"
	"path/filepath"

	"github.com/harperreed/fittrack/internal/models"
)

// Category identifies one record collection.
type Category string

const (
	CategoryWorkout    Category = "workout"
	CategoryPR         Category = "pr"
	CategoryBody       Category = "body"
	CategoryNutrition  Category = "nutrition"
	CategoryRecovery   Category = "recovery"
	CategorySupplement Category = "supplement"
	CategoryHormone    Category = "hormone"
)

// collectionFiles maps categories to their on-disk collection files.
// Each file holds a single JSON array of flat records.
var collectionFiles = map[Category]string{
	CategoryWorkout:    "workouts.json",
	CategoryPR:         "pr_tracker.json",
	CategoryBody:       "body_metrics.json",
	CategoryNutrition:  "nutrition.json",
	CategoryRecovery:   "recovery.json",
	CategorySupplement: "supplements.json",
	CategoryHormone:    "hormone.json",
}

// Store defines the persistence contract for all record collections.
// Collections are append-only; loading a collection that has never been
// written returns an empty slice, not an error. The PersonalRecord
// projection is the one collection rewritten wholesale, since it is a
// derived view keyed by exercise.
type Store interface {
	LoadWorkouts() ([]models.Workout, error)
	AppendWorkout(w *models.Workout) error

	LoadPersonalRecords() ([]models.PersonalRecord, error)
	SavePersonalRecords(prs []models.PersonalRecord) error

	LoadBodyMetrics() ([]models.BodyMetric, error)
	AppendBodyMetric(b *models.BodyMetric) error

	LoadNutrition() ([]models.Nutrition, error)
	AppendNutrition(n *models.Nutrition) error

	LoadRecovery() ([]models.Recovery, error)
	AppendRecovery(r *models.Recovery) error

	LoadSupplements() ([]models.Supplement, error)
	AppendSupplement(s *models.Supplement) error

	LoadHormones() ([]models.Hormone, error)
	AppendHormone(h *models.Hormone) error

	Close() error
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittrack")
}
