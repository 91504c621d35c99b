// ABOUTME: BodyMetric model for body composition measurements.
// ABOUTME: Lean mass is derived from bodyweight and bodyfat at write time.
package models

import (
	"time"

	"github.com/google/uuid"
)

// BodyMetric represents one body measurement entry. Tape measurements and
// bodyfat are optional; lean mass is only stored when bodyfat was logged.
type BodyMetric struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	Bodyweight float64   `json:"bodyweight"`
	BodyfatPct *float64  `json:"bodyfat_pct,omitempty"`
	Waist      *float64  `json:"waist,omitempty"`
	Chest      *float64  `json:"chest,omitempty"`
	Arms       *float64  `json:"arms,omitempty"`
	Hips       *float64  `json:"hips,omitempty"`
	LeanMass   *float64  `json:"lean_mass,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewBodyMetric creates a BodyMetric for the given date and bodyweight.
func NewBodyMetric(date string, bodyweight float64) *BodyMetric {
	return &BodyMetric{
		ID:         uuid.New(),
		Date:       date,
		Bodyweight: bodyweight,
		CreatedAt:  time.Now(),
	}
}

// WithBodyfat sets the bodyfat percentage and computes lean mass.
func (b *BodyMetric) WithBodyfat(pct float64) *BodyMetric {
	b.BodyfatPct = &pct
	lean := b.Bodyweight * (1 - pct/100)
	b.LeanMass = &lean
	return b
}

// WithTape sets the tape measurements. Zero values are treated as not taken.
func (b *BodyMetric) WithTape(waist, chest, arms, hips float64) *BodyMetric {
	if waist > 0 {
		b.Waist = &waist
	}
	if chest > 0 {
		b.Chest = &chest
	}
	if arms > 0 {
		b.Arms = &arms
	}
	if hips > 0 {
		b.Hips = &hips
	}
	return b
}

// WithNotes sets notes on the measurement.
func (b *BodyMetric) WithNotes(notes string) *BodyMetric {
	b.Notes = notes
	return b
}
