// ABOUTME: JSON file storage backend, one JSON-array file per category.
// ABOUTME: Writes go through a temp file and rename so a failed write keeps prior state.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/harperreed/fittrack/internal/models"
)

// JSONStore persists each collection as a JSON array in its own file.
// This is the default backend and matches the original data layout, so
// existing data directories load as-is.
type JSONStore struct {
	dir string
	mu  sync.Mutex // serializes read-modify-write of collection files
}

// NewJSONStore opens a JSON store rooted at dir, creating it if needed.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// Close is a no-op; files are closed after every operation.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) path(c Category) string {
	return filepath.Join(s.dir, collectionFiles[c])
}

// loadJSON reads a collection file into a typed slice. A missing file is an
// empty collection; malformed content is a hard error.
func loadJSON[T any](s *JSONStore, c Category) ([]T, error) {
	data, err := os.ReadFile(s.path(c))
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", collectionFiles[c], err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", collectionFiles[c], err)
	}
	return records, nil
}

// saveJSON replaces a collection file with the given records. The write
// lands in a temp file first and is renamed into place, so the prior state
// survives a failed write.
func saveJSON[T any](s *JSONStore, c Category, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collectionFiles[c], err)
	}

	tmp, err := os.CreateTemp(s.dir, collectionFiles[c]+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", collectionFiles[c], err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(c)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", collectionFiles[c], err)
	}
	return nil
}

// appendJSON appends one record, preserving existing order.
func appendJSON[T any](s *JSONStore, c Category, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadJSON[T](s, c)
	if err != nil {
		return err
	}
	records = append(records, record)
	return saveJSON(s, c, records)
}

func (s *JSONStore) LoadWorkouts() ([]models.Workout, error) {
	return loadJSON[models.Workout](s, CategoryWorkout)
}

func (s *JSONStore) AppendWorkout(w *models.Workout) error {
	return appendJSON(s, CategoryWorkout, *w)
}

func (s *JSONStore) LoadPersonalRecords() ([]models.PersonalRecord, error) {
	return loadJSON[models.PersonalRecord](s, CategoryPR)
}

func (s *JSONStore) SavePersonalRecords(prs []models.PersonalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveJSON(s, CategoryPR, prs)
}

func (s *JSONStore) LoadBodyMetrics() ([]models.BodyMetric, error) {
	return loadJSON[models.BodyMetric](s, CategoryBody)
}

func (s *JSONStore) AppendBodyMetric(b *models.BodyMetric) error {
	return appendJSON(s, CategoryBody, *b)
}

func (s *JSONStore) LoadNutrition() ([]models.Nutrition, error) {
	return loadJSON[models.Nutrition](s, CategoryNutrition)
}

func (s *JSONStore) AppendNutrition(n *models.Nutrition) error {
	return appendJSON(s, CategoryNutrition, *n)
}

func (s *JSONStore) LoadRecovery() ([]models.Recovery, error) {
	return loadJSON[models.Recovery](s, CategoryRecovery)
}

func (s *JSONStore) AppendRecovery(r *models.Recovery) error {
	return appendJSON(s, CategoryRecovery, *r)
}

func (s *JSONStore) LoadSupplements() ([]models.Supplement, error) {
	return loadJSON[models.Supplement](s, CategorySupplement)
}

func (s *JSONStore) AppendSupplement(sup *models.Supplement) error {
	return appendJSON(s, CategorySupplement, *sup)
}

func (s *JSONStore) LoadHormones() ([]models.Hormone, error) {
	return loadJSON[models.Hormone](s, CategoryHormone)
}

func (s *JSONStore) AppendHormone(h *models.Hormone) error {
	return appendJSON(s, CategoryHormone, *h)
}
