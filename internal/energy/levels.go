package energy

import "strings"

// Sex selects the BMR formula.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ActivityLevel scales BMR to daily expenditure.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "veryActive"
)

// GoalLevel is the caloric deficit or surplus applied on top of TDEE.
type GoalLevel string

const (
	Cut           GoalLevel = "cut"
	AggressiveCut GoalLevel = "aggressiveCut"
	Maintain      GoalLevel = "maintain"
	LeanBulk      GoalLevel = "leanBulk"
	Bulk          GoalLevel = "bulk"
)

// Defaults preselected by the calculator form.
const (
	DefaultSex           = Male
	DefaultActivityLevel = Moderate
	DefaultGoalLevel     = Maintain
)

// activityMultipliers maps each activity level to its TDEE multiplier.
// Also the source of truth for which levels ParseActivityLevel accepts.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

var goalMultipliers = map[GoalLevel]float64{
	Cut:           0.85,
	AggressiveCut: 0.70,
	Maintain:      1.0,
	LeanBulk:      1.10,
	Bulk:          1.20,
}

// Ordered lists for rendering selects; map iteration order is random.
var (
	Sexes          = []Sex{Male, Female}
	ActivityLevels = []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}
	GoalLevels     = []GoalLevel{Cut, AggressiveCut, Maintain, LeanBulk, Bulk}
)

var sexLabels = map[Sex]string{
	Male:   "Male",
	Female: "Female",
}

var activityLabels = map[ActivityLevel]string{
	Sedentary:  "Sedentary (little or no exercise)",
	Light:      "Lightly Active (light exercise 1-3 days/week)",
	Moderate:   "Moderately Active (moderate exercise 3-5 days/week)",
	Active:     "Active (hard exercise 6-7 days/week)",
	VeryActive: "Very Active (very hard exercise + physical job)",
}

// goalLabels holds the short name shown next to the goal-adjusted target and
// the longer option text with the approximate daily calorie change.
var goalLabels = map[GoalLevel]struct{ short, option string }{
	Cut:           {"Cutting", "Cutting (-500 kcal)"},
	AggressiveCut: {"Aggressive Cutting", "Aggressive Cutting (-800 kcal)"},
	Maintain:      {"Weight Maintenance", "Weight Maintenance"},
	LeanBulk:      {"Lean Bulking", "Lean Bulking (+300 kcal)"},
	Bulk:          {"Bulking", "Bulking (+500 kcal)"},
}

// ActivityMultiplier returns the multiplier for a, and false for an unknown level.
func ActivityMultiplier(a ActivityLevel) (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// GoalMultiplier returns the multiplier for g, and false for an unknown goal.
func GoalMultiplier(g GoalLevel) (float64, bool) {
	m, ok := goalMultipliers[g]
	return m, ok
}

// ParseSex maps form text to a Sex. Matching ignores case and surrounding
// space; anything else yields DefaultSex and ok=false.
func ParseSex(s string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, true
	case "female", "f":
		return Female, true
	}
	return DefaultSex, false
}

// ParseActivityLevel accepts the canonical keys case-insensitively, plus
// "very_active" as written by snake_case clients.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "very_active" {
		return VeryActive, true
	}
	for _, a := range ActivityLevels {
		if strings.ToLower(string(a)) == key {
			return a, true
		}
	}
	return DefaultActivityLevel, false
}

// ParseGoalLevel accepts the canonical keys case-insensitively. The legacy
// misspelling "agressiveCut" is still sent by older form builds.
func ParseGoalLevel(s string) (GoalLevel, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "agressivecut", "aggressive_cut":
		return AggressiveCut, true
	case "lean_bulk":
		return LeanBulk, true
	}
	for _, g := range GoalLevels {
		if strings.ToLower(string(g)) == key {
			return g, true
		}
	}
	return DefaultGoalLevel, false
}

// SexLabel returns the display text for s.
func SexLabel(s Sex) string {
	return sexLabels[s]
}

// ActivityLabel returns the option text for a, or "" for an unknown level.
func ActivityLabel(a ActivityLevel) string {
	return activityLabels[a]
}

// GoalLabel returns the short display name used when rendering a result.
func GoalLabel(g GoalLevel) string {
	return goalLabels[g].short
}

// GoalOptionLabel returns the option text including the approximate calorie change.
func GoalOptionLabel(g GoalLevel) string {
	return goalLabels[g].option
}
