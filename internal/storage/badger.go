// ABOUTME: Badger storage backend, one key per record collection.
// ABOUTME: Append is a single read-modify-write transaction per collection key.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/fittrack/internal/models"
)

const collectionKeyPrefix = "collection:"

// BadgerStore persists collections in an embedded Badger KV database.
// Each category lives under a single key holding the JSON-encoded slice,
// so the append-only contract is identical to the file backend.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) a Badger database at dir.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func collectionKey(c Category) []byte {
	return []byte(collectionKeyPrefix + string(c))
}

// loadBadger reads a collection from its key. A missing key is an empty
// collection; malformed content is a hard error.
func loadBadger[T any](s *BadgerStore, c Category) ([]T, error) {
	records := []T{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(collectionKey(c))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &records)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load %s collection: %w", c, err)
	}
	return records, nil
}

// saveBadger replaces a collection under its key.
func saveBadger[T any](s *BadgerStore, c Category, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", c, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(collectionKey(c), data)
	})
	if err != nil {
		return fmt.Errorf("save %s collection: %w", c, err)
	}
	return nil
}

// appendBadger appends one record in a single transaction.
func appendBadger[T any](s *BadgerStore, c Category, record T) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		var records []T
		item, err := txn.Get(collectionKey(c))
		switch {
		case err == nil:
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &records)
			}); err != nil {
				return err
			}
		case errors.Is(err, badger.ErrKeyNotFound):
			// first record in this collection
		default:
			return err
		}

		records = append(records, record)
		data, err := json.Marshal(records)
		if err != nil {
			return err
		}
		return txn.Set(collectionKey(c), data)
	})
	if err != nil {
		return fmt.Errorf("append to %s collection: %w", c, err)
	}
	return nil
}

func (s *BadgerStore) LoadWorkouts() ([]models.Workout, error) {
	return loadBadger[models.Workout](s, CategoryWorkout)
}

func (s *BadgerStore) AppendWorkout(w *models.Workout) error {
	return appendBadger(s, CategoryWorkout, *w)
}

func (s *BadgerStore) LoadPersonalRecords() ([]models.PersonalRecord, error) {
	return loadBadger[models.PersonalRecord](s, CategoryPR)
}

func (s *BadgerStore) SavePersonalRecords(prs []models.PersonalRecord) error {
	return saveBadger(s, CategoryPR, prs)
}

func (s *BadgerStore) LoadBodyMetrics() ([]models.BodyMetric, error) {
	return loadBadger[models.BodyMetric](s, CategoryBody)
}

func (s *BadgerStore) AppendBodyMetric(b *models.BodyMetric) error {
	return appendBadger(s, CategoryBody, *b)
}

func (s *BadgerStore) LoadNutrition() ([]models.Nutrition, error) {
	return loadBadger[models.Nutrition](s, CategoryNutrition)
}

func (s *BadgerStore) AppendNutrition(n *models.Nutrition) error {
	return appendBadger(s, CategoryNutrition, *n)
}

func (s *BadgerStore) LoadRecovery() ([]models.Recovery, error) {
	return loadBadger[models.Recovery](s, CategoryRecovery)
}

func (s *BadgerStore) AppendRecovery(r *models.Recovery) error {
	return appendBadger(s, CategoryRecovery, *r)
}

func (s *BadgerStore) LoadSupplements() ([]models.Supplement, error) {
	return loadBadger[models.Supplement](s, CategorySupplement)
}

func (s *BadgerStore) AppendSupplement(sup *models.Supplement) error {
	return appendBadger(s, CategorySupplement, *sup)
}

func (s *BadgerStore) LoadHormones() ([]models.Hormone, error) {
	return loadBadger[models.Hormone](s, CategoryHormone)
}

func (s *BadgerStore) AppendHormone(h *models.Hormone) error {
	return appendBadger(s, CategoryHormone, *h)
}
