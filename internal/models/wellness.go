// ABOUTME: Recovery, Supplement and Hormone models for daily wellness logs.
// ABOUTME: Supplement adherence count is computed at write time.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Recovery represents one recovery check-in. Stress and energy are on a
// 1-5 scale. Resting heart rate is optional; the recovery score applies a
// neutral default when it is absent.
type Recovery struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	SleepHours  float64   `json:"sleep_hours"`
	StressLevel int       `json:"stress_level"`
	EnergyLevel int       `json:"energy_level"`
	RestingHR   *float64  `json:"resting_hr,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRecovery creates a Recovery entry.
func NewRecovery(date string, sleepHours float64, stress, energy int) *Recovery {
	return &Recovery{
		ID:          uuid.New(),
		Date:        date,
		SleepHours:  sleepHours,
		StressLevel: stress,
		EnergyLevel: energy,
		CreatedAt:   time.Now(),
	}
}

// WithRestingHR sets the resting heart rate in bpm.
func (r *Recovery) WithRestingHR(bpm float64) *Recovery {
	r.RestingHR = &bpm
	return r
}

// Supplement represents one day's supplement checklist.
type Supplement struct {
	ID             uuid.UUID `json:"id"`
	Date           string    `json:"date"`
	Creatine       bool      `json:"creatine"`
	VitaminD       bool      `json:"vitamin_d"`
	Omega3         bool      `json:"omega_3"`
	Magnesium      bool      `json:"magnesium"`
	Zinc           bool      `json:"zinc"`
	AdherenceCount int       `json:"adherence_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSupplement creates a Supplement entry with the adherence count derived
// from the taken flags.
func NewSupplement(date string, creatine, vitaminD, omega3, magnesium, zinc bool) *Supplement {
	s := &Supplement{
		ID:        uuid.New(),
		Date:      date,
		Creatine:  creatine,
		VitaminD:  vitaminD,
		Omega3:    omega3,
		Magnesium: magnesium,
		Zinc:      zinc,
		CreatedAt: time.Now(),
	}
	for _, taken := range []bool{creatine, vitaminD, omega3, magnesium, zinc} {
		if taken {
			s.AdherenceCount++
		}
	}
	return s
}

// Hormone represents one day's hormone-adjacent readings.
type Hormone struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date"`
	DailySteps    int       `json:"daily_steps"`
	MorningEnergy *int      `json:"morning_energy,omitempty"`
	Libido        *int      `json:"libido,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewHormone creates a Hormone entry.
func NewHormone(date string, dailySteps int) *Hormone {
	return &Hormone{
		ID:         uuid.New(),
		Date:       date,
		DailySteps: dailySteps,
		CreatedAt:  time.Now(),
	}
}

// WithMorningEnergy sets the morning energy rating (1-5).
func (h *Hormone) WithMorningEnergy(level int) *Hormone {
	h.MorningEnergy = &level
	return h
}

// WithLibido sets the libido rating (1-5).
func (h *Hormone) WithLibido(level int) *Hormone {
	h.Libido = &level
	return h
}

// WithNotes sets notes on the entry.
func (h *Hormone) WithNotes(notes string) *Hormone {
	h.Notes = notes
	return h
}
