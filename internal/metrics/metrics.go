// ABOUTME: Derived metrics engine: pure computations over loaded collections.
// ABOUTME: Weekly volume, macro splits, goal adherence, recovery scores, rolling averages.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	// ErrInsufficientData means the records needed for a computation are
	// missing. Computations fail with this instead of defaulting missing
	// fields to zero, which would render a misleading result.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidTarget means a goal target was zero or negative. Distinct
	// from a legitimate 0% adherence.
	ErrInvalidTarget = errors.New("target must be greater than zero")
)

// Energy per gram of each macronutrient, in kcal.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// RollingWindow is the number of trailing entries used for rolling averages.
const RollingWindow = 7

// WeekVolume is total training volume for one ISO week.
type WeekVolume struct {
	Year   int     `json:"year"`
	Week   int     `json:"week"`
	Volume float64 `json:"volume"`
}

// Label formats the week as "2024-W05".
func (wv WeekVolume) Label() string {
	return fmt.Sprintf("%d-W%02d", wv.Year, wv.Week)
}

// WeeklyVolume groups workouts by ISO week and sums their stored volume.
// Records with unparseable dates are excluded, not fatal. The result is
// ordered by week ascending.
func WeeklyVolume(workouts []models.Workout) []WeekVolume {
	type week struct{ year, num int }
	totals := make(map[week]float64)
	for _, w := range workouts {
		d, err := models.ParseDate(w.Date)
		if err != nil {
			continue
		}
		y, n := d.ISOWeek()
		totals[week{y, n}] += w.Volume
	}

	out := make([]WeekVolume, 0, len(totals))
	for k, v := range totals {
		out = append(out, WeekVolume{Year: k.year, Week: k.num, Volume: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Week < out[j].Week
	})
	return out
}

// MacroSplit is the caloric contribution of each macronutrient.
type MacroSplit struct {
	ProteinKcal float64 `json:"protein_kcal"`
	CarbsKcal   float64 `json:"carbs_kcal"`
	FatsKcal    float64 `json:"fats_kcal"`
	TotalKcal   float64 `json:"total_kcal"`
}

// SplitMacros computes the energy split for one nutrition entry. If any of
// protein, carbs or fats was not logged the whole split is unavailable.
func SplitMacros(n models.Nutrition) (MacroSplit, error) {
	if n.Protein == nil || n.Carbs == nil || n.Fats == nil {
		return MacroSplit{}, ErrInsufficientData
	}
	s := MacroSplit{
		ProteinKcal: *n.Protein * KcalPerGramProtein,
		CarbsKcal:   *n.Carbs * KcalPerGramCarbs,
		FatsKcal:    *n.Fats * KcalPerGramFat,
	}
	s.TotalKcal = s.ProteinKcal + s.CarbsKcal + s.FatsKcal
	return s, nil
}

// AdherenceStatus classifies how close a value is to its goal target.
type AdherenceStatus string

const (
	StatusOnTrack  AdherenceStatus = "on-track"
	StatusCaution  AdherenceStatus = "caution"
	StatusOffTrack AdherenceStatus = "off-track"
)

// Adherence is a goal-adherence percentage with its classification.
type Adherence struct {
	Pct    int             `json:"pct"`
	Status AdherenceStatus `json:"status"`
}

// GoalAdherence computes value as a percentage of target, capped at 100.
// Fractional percentages count down, so 90% is only reported once the
// target is fully at 90%. Classification: >=90 on-track, 70-89 caution,
// <70 off-track.
func GoalAdherence(value, target float64) (Adherence, error) {
	if target <= 0 {
		return Adherence{}, ErrInvalidTarget
	}

	pct := int(value / target * 100)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	a := Adherence{Pct: pct}
	switch {
	case pct >= 90:
		a.Status = StatusOnTrack
	case pct >= 70:
		a.Status = StatusCaution
	default:
		a.Status = StatusOffTrack
	}
	return a, nil
}

// RecoveryVector is four normalized 0-5 sub-scores. They are rendered as
// separate axes; there is deliberately no single scalar rollup.
type RecoveryVector struct {
	Sleep  float64 `json:"sleep"`
	Stress float64 `json:"stress"`
	Energy float64 `json:"energy"`
	Heart  float64 `json:"heart"`
}

// Axis is one labeled recovery sub-score for presentation.
type Axis struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Axes returns the vector as labeled axes in stable order.
func (v RecoveryVector) Axes() []Axis {
	return []Axis{
		{Label: "Sleep", Score: v.Sleep},
		{Label: "Low Stress", Score: v.Stress},
		{Label: "Energy", Score: v.Energy},
		{Label: "Heart", Score: v.Heart},
	}
}

// neutralHeartScore is used when resting heart rate was not logged.
// Explicit policy: absence scores mid-scale rather than best or worst.
const neutralHeartScore = 2.5

// RecoveryScore computes the composite recovery vector for one check-in.
// Sleep normalizes against a 9-hour target, stress inverts the 1-5 scale,
// energy passes through, and heart rate maps 50 bpm to a full score losing
// half a point per 10 bpm above it.
func RecoveryScore(r models.Recovery) RecoveryVector {
	v := RecoveryVector{
		Sleep:  math.Min(r.SleepHours/9*5, 5),
		Stress: 5 - float64(r.StressLevel),
		Energy: float64(r.EnergyLevel),
		Heart:  neutralHeartScore,
	}
	if r.RestingHR != nil {
		v.Heart = math.Max(0, 5-(*r.RestingHR-50)/10)
	}
	return v
}

// RollingAverages holds per-field means over the trailing entry window.
// A field nobody logged inside the window stays nil.
type RollingAverages struct {
	Window   int      `json:"window"`
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fats     *float64 `json:"fats,omitempty"`
}

// RollingNutrition averages each nutrition field over the last `window`
// appended entries (entry-aligned, not calendar-aligned). Fails with
// ErrInsufficientData when there are no entries at all.
func RollingNutrition(entries []models.Nutrition, window int) (RollingAverages, error) {
	if len(entries) == 0 {
		return RollingAverages{}, ErrInsufficientData
	}
	if window <= 0 {
		window = RollingWindow
	}
	if len(entries) > window {
		entries = entries[len(entries)-window:]
	}

	avg := RollingAverages{Window: window}
	avg.Calories = meanOf(entries, func(n models.Nutrition) *float64 { return n.Calories })
	avg.Protein = meanOf(entries, func(n models.Nutrition) *float64 { return n.Protein })
	avg.Carbs = meanOf(entries, func(n models.Nutrition) *float64 { return n.Carbs })
	avg.Fats = meanOf(entries, func(n models.Nutrition) *float64 { return n.Fats })
	return avg, nil
}

func meanOf(entries []models.Nutrition, field func(models.Nutrition) *float64) *float64 {
	var sum float64
	var count int
	for _, n := range entries {
		if v := field(n); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}
