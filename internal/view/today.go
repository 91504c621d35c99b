// ABOUTME: Today/latest view builder: most recent value and delta per metric.
// ABOUTME: Latest means last appended, and deltas need two records to exist.
package view

import (
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/metrics"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// ErrNoData means a metric has no underlying records yet. The view layer
// shows an explicit "no data" marker, never a fabricated zero.
var ErrNoData = errors.New("no data")

// Delta pairs a metric's latest value with its change from the previous
// entry. Change is nil when only one record exists; a delta of zero means
// two equal entries, which is a different statement.
type Delta struct {
	Latest float64  `json:"latest"`
	Change *float64 `json:"change,omitempty"`
}

// LatestDelta computes latest and delta over an append-ordered series.
func LatestDelta(values []float64) (Delta, error) {
	if len(values) == 0 {
		return Delta{}, ErrNoData
	}
	d := Delta{Latest: values[len(values)-1]}
	if len(values) >= 2 {
		change := d.Latest - values[len(values)-2]
		d.Change = &change
	}
	return d, nil
}

// Latest returns the last appended record of a collection.
func Latest[T any](records []T) (T, error) {
	var zero T
	if len(records) == 0 {
		return zero, ErrNoData
	}
	return records[len(records)-1], nil
}

// SupplementFor returns the supplement entry for the given date: the last
// appended record whose date matches. The boolean is false when nothing was
// logged that day, which is distinct from an all-false checklist.
func SupplementFor(entries []models.Supplement, date string) (models.Supplement, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Date == date {
			return entries[i], true
		}
	}
	return models.Supplement{}, false
}

// TodaySummary is the dashboard snapshot across all collections. Nil fields
// mean no data has been logged for that metric yet.
type TodaySummary struct {
	Date        string                  `json:"date"`
	Bodyweight  *Delta                  `json:"bodyweight,omitempty"`
	LeanMass    *Delta                  `json:"lean_mass,omitempty"`
	Calories    *Delta                  `json:"calories,omitempty"`
	Protein     *Delta                  `json:"protein,omitempty"`
	SleepHours  *Delta                  `json:"sleep_hours,omitempty"`
	DailySteps  *Delta                  `json:"daily_steps,omitempty"`
	Recovery    *metrics.RecoveryVector `json:"recovery,omitempty"`
	Supplements *models.Supplement      `json:"supplements,omitempty"`
}

// BuildToday assembles the snapshot for the given date from a store.
// Missing collections simply leave their fields nil.
func BuildToday(store storage.Store, date string) (*TodaySummary, error) {
	summary := &TodaySummary{Date: date}

	body, err := store.LoadBodyMetrics()
	if err != nil {
		return nil, fmt.Errorf("load body metrics: %w", err)
	}
	summary.Bodyweight = deltaOf(series(body, func(b models.BodyMetric) *float64 {
		v := b.Bodyweight
		return &v
	}))
	summary.LeanMass = deltaOf(series(body, func(b models.BodyMetric) *float64 { return b.LeanMass }))

	nutrition, err := store.LoadNutrition()
	if err != nil {
		return nil, fmt.Errorf("load nutrition: %w", err)
	}
	summary.Calories = deltaOf(series(nutrition, func(n models.Nutrition) *float64 { return n.Calories }))
	summary.Protein = deltaOf(series(nutrition, func(n models.Nutrition) *float64 { return n.Protein }))

	recovery, err := store.LoadRecovery()
	if err != nil {
		return nil, fmt.Errorf("load recovery: %w", err)
	}
	summary.SleepHours = deltaOf(series(recovery, func(r models.Recovery) *float64 {
		v := r.SleepHours
		return &v
	}))
	if latest, err := Latest(recovery); err == nil {
		vector := metrics.RecoveryScore(latest)
		summary.Recovery = &vector
	}

	hormones, err := store.LoadHormones()
	if err != nil {
		return nil, fmt.Errorf("load hormones: %w", err)
	}
	summary.DailySteps = deltaOf(series(hormones, func(h models.Hormone) *float64 {
		v := float64(h.DailySteps)
		return &v
	}))

	supplements, err := store.LoadSupplements()
	if err != nil {
		return nil, fmt.Errorf("load supplements: %w", err)
	}
	if today, ok := SupplementFor(supplements, date); ok {
		summary.Supplements = &today
	}

	return summary, nil
}

// series extracts an append-ordered value series for one field, dropping
// records that never logged it.
func series[T any](records []T, field func(T) *float64) []float64 {
	var out []float64
	for _, r := range records {
		if v := field(r); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func deltaOf(values []float64) *Delta {
	d, err := LatestDelta(values)
	if err != nil {
		return nil
	}
	return &d
}
