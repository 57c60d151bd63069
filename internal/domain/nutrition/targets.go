// Package nutrition provides energy-target math: basal metabolic rate,
// total daily energy expenditure and calorie goals derived from the user's
// weight trajectory.
package nutrition

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sex is the biological sex used by the BMR formulas
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ActivityLevel scales BMR into daily energy expenditure
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtreme   ActivityLevel = "extreme"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityExtreme:   1.9,
}

// legacyActivityLabels maps profile labels from the old intake forms onto
// activity levels
var legacyActivityLabels = map[string]ActivityLevel{
	"sedentary":         ActivitySedentary,
	"light":             ActivityLight,
	"lightly active":    ActivityLight,
	"moderate":          ActivityModerate,
	"moderately active": ActivityModerate,
	"active":            ActivityActive,
	"very active":       ActivityActive,
	"extremely active":  ActivityExtreme,
	"extreme":           ActivityExtreme,
}

// goalAdjustment is the fixed daily surplus/deficit applied when the goal
// weight differs from the current weight
const goalAdjustment = 500

// ParseActivityLevel normalizes a stored activity label. Unknown labels map
// to sedentary.
func ParseActivityLevel(label string) ActivityLevel {
	if lvl, ok := legacyActivityLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return lvl
	}
	return ActivitySedentary
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor formula
func BMR(weightKg, heightCm float64, ageYears int, sex Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if sex == SexMale {
		return base + 5
	}
	return base - 161
}

// BMRKatchMcArdle computes basal metabolic rate from lean body mass. Used
// when a body-fat percentage is available; more accurate than Mifflin-St
// Jeor for lean or very muscular users.
func BMRKatchMcArdle(weightKg, bodyFatPct float64) float64 {
	leanMass := weightKg * (1 - bodyFatPct/100)
	return 370 + 21.6*leanMass
}

// TDEE applies the activity multiplier to BMR. Unknown levels fall back to
// sedentary, the conservative choice.
func TDEE(bmr float64, level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return bmr * m
	}
	return bmr * activityMultipliers[ActivitySedentary]
}

// CalorieGoal derives the daily calorie target from TDEE and the user's
// weight trajectory: a fixed deficit to lose, surplus to gain.
func CalorieGoal(tdee, currentWeightKg, goalWeightKg float64) int {
	switch {
	case goalWeightKg < currentWeightKg:
		return int(tdee) - goalAdjustment
	case goalWeightKg > currentWeightKg:
		return int(tdee) + goalAdjustment
	default:
		return int(tdee)
	}
}

// MacroCalories applies the standard 4-4-9 rule: grams of protein and carbs
// contribute 4 kcal each, grams of fat contribute 9
func MacroCalories(protein, carbs, fat decimal.Decimal) decimal.Decimal {
	four := decimal.NewFromInt(4)
	nine := decimal.NewFromInt(9)
	return protein.Mul(four).Add(carbs.Mul(four)).Add(fat.Mul(nine))
}

// MacrosConsistent reports whether reported calories are within tolerance
// (a fraction, e.g. 0.1 for 10%) of the 4-4-9 macro-derived calories
func MacrosConsistent(calories, protein, carbs, fat decimal.Decimal, tolerance float64) bool {
	if calories.IsZero() {
		return true
	}
	macro := MacroCalories(protein, carbs, fat)
	diff := calories.Sub(macro).Abs()
	return diff.LessThanOrEqual(calories.Mul(decimal.NewFromFloat(tolerance)))
}

// Efficiency returns calories per currency unit. Free items rank as
// maximally efficient; invalid prices rank as worthless.
func Efficiency(calories int, price float64) float64 {
	if price > 0 {
		return float64(calories) / price
	}
	if price == 0 {
		return 9999
	}
	return 0
}
