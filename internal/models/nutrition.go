// ABOUTME: Nutrition model for daily intake logs.
// ABOUTME: Macro-estimated calories are computed at write time when all macros are present.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Nutrition represents one intake entry. All fields are optional; a record
// may log only water, or only macros. Downstream computations signal
// insufficient data instead of defaulting missing fields to zero.
type Nutrition struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Calories    *float64  `json:"calories,omitempty"`
	Protein     *float64  `json:"protein,omitempty"`
	Carbs       *float64  `json:"carbs,omitempty"`
	Fats        *float64  `json:"fats,omitempty"`
	WaterL      *float64  `json:"water_l,omitempty"`
	Fiber       *float64  `json:"fiber,omitempty"`
	EstCalories *float64  `json:"est_calories_from_macros,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewNutrition creates an empty Nutrition entry for the given date.
func NewNutrition(date string) *Nutrition {
	return &Nutrition{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// WithCalories sets the directly-logged calorie total.
func (n *Nutrition) WithCalories(kcal float64) *Nutrition {
	n.Calories = &kcal
	return n
}

// WithMacros sets protein/carbs/fats in grams and stores the
// macro-estimated calories (4/4/9 kcal per gram).
func (n *Nutrition) WithMacros(protein, carbs, fats float64) *Nutrition {
	return n.WithProtein(protein).WithCarbs(carbs).WithFats(fats)
}

// WithProtein sets protein in grams.
func (n *Nutrition) WithProtein(grams float64) *Nutrition {
	n.Protein = &grams
	n.recomputeEstimate()
	return n
}

// WithCarbs sets carbs in grams.
func (n *Nutrition) WithCarbs(grams float64) *Nutrition {
	n.Carbs = &grams
	n.recomputeEstimate()
	return n
}

// WithFats sets fats in grams.
func (n *Nutrition) WithFats(grams float64) *Nutrition {
	n.Fats = &grams
	n.recomputeEstimate()
	return n
}

// recomputeEstimate stores the macro-estimated calories once all three
// macros are present. A partial macro log carries no estimate.
func (n *Nutrition) recomputeEstimate() {
	if n.Protein == nil || n.Carbs == nil || n.Fats == nil {
		return
	}
	est := *n.Protein*4 + *n.Carbs*4 + *n.Fats*9
	n.EstCalories = &est
}

// WithWater sets water intake in liters.
func (n *Nutrition) WithWater(liters float64) *Nutrition {
	n.WaterL = &liters
	return n
}

// WithFiber sets fiber intake in grams.
func (n *Nutrition) WithFiber(grams float64) *Nutrition {
	n.Fiber = &grams
	return n
}

// WithNotes sets notes on the entry.
func (n *Nutrition) WithNotes(notes string) *Nutrition {
	n.Notes = notes
	return n
}
