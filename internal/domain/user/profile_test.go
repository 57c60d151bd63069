package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nileplate/v1/internal/domain/nutrition"
	"github.com/nileplate/v1/internal/domain/pricing"
)

func TestResolveLocation(t *testing.T) {
	p := &PlanningProfile{Location: pricing.CategoryRural, City: "Cairo"}
	assert.Equal(t, pricing.CategoryRural, p.ResolveLocation(), "explicit category wins over city")

	p = &PlanningProfile{City: "Alexandria"}
	assert.Equal(t, pricing.CategoryMajorCity, p.ResolveLocation())

	p = &PlanningProfile{}
	assert.Equal(t, pricing.CategoryMetro, p.ResolveLocation(), "empty profile prices at metro")
}

func TestTargetCalories_StoredGoalWins(t *testing.T) {
	p := &PlanningProfile{CalorieGoal: 2200, CurrentWeightKg: 90, HeightCm: 190}
	assert.Equal(t, 2200, p.TargetCalories())
}

func TestTargetCalories_DerivedFromTDEE(t *testing.T) {
	p := &PlanningProfile{
		CurrentWeightKg: 80,
		HeightCm:        180,
		AgeYears:        30,
		Sex:             nutrition.SexMale,
		ActivityLevel:   nutrition.ActivityModerate,
		GoalWeightKg:    75,
	}

	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	// TDEE: 1780 * 1.55 = 2759; losing weight: -500
	assert.Equal(t, 2259, p.TargetCalories())
}

func TestTargetCalories_BodyFatSwitchesFormula(t *testing.T) {
	p := &PlanningProfile{
		CurrentWeightKg: 80,
		HeightCm:        180,
		AgeYears:        30,
		Sex:             nutrition.SexMale,
		ActivityLevel:   nutrition.ActivitySedentary,
		BodyFatPct:      20,
	}

	// Katch-McArdle: 370 + 21.6*64 = 1752.4; TDEE: 1752.4 * 1.2 = 2102.88
	assert.Equal(t, 2102, p.TargetCalories())
}

func TestTargetCalories_DefaultsForEmptyProfile(t *testing.T) {
	p := &PlanningProfile{}

	// 70 kg, 170 cm, 25 y, male, sedentary: BMR 1642.5, TDEE 1971
	assert.Equal(t, 1971, p.TargetCalories())
}
