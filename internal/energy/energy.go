// Package energy estimates basal metabolic rate, total daily energy
// expenditure and a macronutrient split from a body profile.
package energy

import "math"

// InputProfile is one calculation request. Numeric fields are already coerced
// (see ParseNumber); nothing here is validated.
type InputProfile struct {
	Sex           Sex           `json:"sex"`
	AgeYears      float64       `json:"age_years"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	GoalLevel     GoalLevel     `json:"goal_level"`
}

// Macros holds daily gram targets.
type Macros struct {
	Protein int `json:"protein"`
	Fats    int `json:"fats"`
	Carbs   int `json:"carbs"`
}

// EnergyResult is the rounded output of Estimate. TDEEBase is activity-adjusted
// only; TDEE also applies the goal multiplier.
type EnergyResult struct {
	BMR       int       `json:"bmr"`
	TDEEBase  int       `json:"tdee_base"`
	TDEE      int       `json:"tdee"`
	GoalLevel GoalLevel `json:"goal_level"`
	Macros    *Macros   `json:"macros,omitempty"`
}

const (
	proteinPerKg = 2.5
	fatsPerKg    = 0.8

	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

// Estimate computes BMR (revised Harris-Benedict), TDEE and macros for p.
// It never fails: negative inputs and negative carbohydrate targets are
// reported as computed.
func Estimate(p InputProfile) EnergyResult {
	bmr := basalMetabolicRate(p)
	tdeeBase := bmr * activityMultipliers[p.ActivityLevel]
	tdee := tdeeBase * goalMultipliers[p.GoalLevel]

	// Carbs fill whatever calories protein and fat leave, from the unrounded tdee.
	protein := p.WeightKg * proteinPerKg
	fats := p.WeightKg * fatsPerKg
	carbs := (tdee - float64(protein*kcalPerGramProtein) - float64(fats*kcalPerGramFat)) / kcalPerGramCarb

	return EnergyResult{
		BMR:       roundHalfUp(bmr),
		TDEEBase:  roundHalfUp(tdeeBase),
		TDEE:      roundHalfUp(tdee),
		GoalLevel: p.GoalLevel,
		Macros: &Macros{
			Protein: roundHalfUp(protein),
			Fats:    roundHalfUp(fats),
			Carbs:   roundHalfUp(carbs),
		},
	}
}

// basalMetabolicRate evaluates the sex-specific formula term by term; any Sex
// other than Male takes the female formula. The float64 conversions stop the
// compiler from fusing multiply-adds, which would change the last bit on some
// architectures.
func basalMetabolicRate(p InputProfile) float64 {
	if p.Sex == Male {
		return 88.362 + float64(13.397*p.WeightKg) + float64(4.799*p.HeightCm) - float64(5.677*p.AgeYears)
	}
	return 447.593 + float64(9.247*p.WeightKg) + float64(3.098*p.HeightCm) - float64(4.33*p.AgeYears)
}

// Saturated reports whether any field was clamped to the int range, which
// only happens for inputs far outside any human body.
func (r EnergyResult) Saturated() bool {
	vals := []int{r.BMR, r.TDEEBase, r.TDEE}
	if r.Macros != nil {
		vals = append(vals, r.Macros.Protein, r.Macros.Fats, r.Macros.Carbs)
	}
	for _, v := range vals {
		if v == math.MaxInt || v == math.MinInt {
			return true
		}
	}
	return false
}

// minIntFloat is -2^63, exactly representable; float64(math.MaxInt) rounds up
// to 2^63, so values at or above it are out of range.
const (
	minIntFloat = float64(math.MinInt)
	maxIntFloat = float64(math.MaxInt)
)

// roundHalfUp rounds to the nearest integer with halves going toward +Inf
// (-2.5 -> -2), unlike math.Round which rounds them away from zero. Values
// outside the int range saturate; NaN yields 0.
func roundHalfUp(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	switch {
	case r >= maxIntFloat:
		return math.MaxInt
	case r < minIntFloat:
		return math.MinInt
	}
	return int(r)
}
