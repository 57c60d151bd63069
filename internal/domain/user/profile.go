// Package user contains the planning-side view of a user profile: the
// physical attributes, budget and location needed to generate a plan, plus
// the strategy rotation index that plan generation advances.
package user

import (
	"github.com/google/uuid"

	"github.com/nileplate/v1/internal/domain/nutrition"
	"github.com/nileplate/v1/internal/domain/pricing"
)

// PlanningProfile holds everything the plan generator reads from a user.
// The rotation index is the only field the planner ever writes back.
type PlanningProfile struct {
	UserID            uuid.UUID
	CurrentWeightKg   float64
	HeightCm          float64
	AgeYears          int
	Sex               nutrition.Sex
	ActivityLevel     nutrition.ActivityLevel
	GoalWeightKg      float64
	BodyFatPct        float64 // 0 when unknown
	CalorieGoal       int     // 0 when not set; derived from TDEE instead
	DailyBudgetLimit  float64
	City              string
	Location          pricing.Category // resolved from City when empty
	LastStrategyIndex int
}

// Defaults applied when a profile is missing physical attributes. Kept
// deliberately ordinary so a half-filled profile still yields a sane plan.
const (
	defaultWeightKg = 70
	defaultHeightCm = 170
	defaultAgeYears = 25
)

// ResolveLocation returns the profile's pricing tier, resolving it from the
// stored city name when no explicit category is set
func (p *PlanningProfile) ResolveLocation() pricing.Category {
	if p.Location != "" {
		return p.Location
	}
	return pricing.CategoryForCity(p.City)
}

// TargetCalories returns the profile's daily calorie target: the stored
// goal when present, otherwise derived from BMR, activity level and weight
// trajectory. Body fat, when known, switches the BMR formula.
func (p *PlanningProfile) TargetCalories() int {
	if p.CalorieGoal > 0 {
		return p.CalorieGoal
	}

	weight := p.CurrentWeightKg
	if weight <= 0 {
		weight = defaultWeightKg
	}
	height := p.HeightCm
	if height <= 0 {
		height = defaultHeightCm
	}
	age := p.AgeYears
	if age <= 0 {
		age = defaultAgeYears
	}
	sex := p.Sex
	if sex == "" {
		sex = nutrition.SexMale
	}

	bmr := nutrition.BMR(weight, height, age, sex)
	if p.BodyFatPct > 0 {
		bmr = nutrition.BMRKatchMcArdle(weight, p.BodyFatPct)
	}

	tdee := nutrition.TDEE(bmr, p.ActivityLevel)

	goal := p.GoalWeightKg
	if goal <= 0 {
		goal = weight
	}
	return nutrition.CalorieGoal(tdee, weight, goal)
}
