package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIngredient(name string, calories, protein, carbs, fat, price float64) Ingredient {
	return Ingredient{
		Name:           name,
		Unit:           UnitGram,
		CaloriesPer100: decimal.NewFromFloat(calories),
		ProteinPer100:  decimal.NewFromFloat(protein),
		CarbsPer100:    decimal.NewFromFloat(carbs),
		FatPer100:      decimal.NewFromFloat(fat),
		BasePrice:      decimal.NewFromFloat(price),
	}
}

func TestNewCompositeMeal_Validation(t *testing.T) {
	_, err := NewCompositeMeal("", "Koshary", "كشري", 300)
	assert.ErrorIs(t, err, ErrMealKeyRequired)

	_, err = NewCompositeMeal("koshary", "", "كشري", 300)
	assert.ErrorIs(t, err, ErrMealNameRequired)

	_, err = NewCompositeMeal("koshary", "Koshary", "كشري", 0)
	assert.ErrorIs(t, err, ErrInvalidServingWeight)

	meal, err := NewCompositeMeal("koshary", "Koshary", "كشري", 300)
	require.NoError(t, err)
	assert.Equal(t, "koshary", meal.Key())
	assert.Equal(t, 300, meal.DefaultServingWeight())
}

func TestComputeNutrition_SingleIngredient(t *testing.T) {
	// 200 g of cooked rice at 130 kcal/100 g composes to 260 kcal
	meal, err := NewCompositeMeal("plain-rice", "Plain Rice Bowl", "أرز", 200)
	require.NoError(t, err)
	require.NoError(t, meal.AddLine(RecipeLine{
		Ingredient: testIngredient("rice", 130, 2.7, 28, 0.3, 2),
		Percentage: decimal.NewFromInt(100),
	}))

	nut, err := meal.ComputeNutrition(200)
	require.NoError(t, err)
	assert.True(t, nut.Calories.Equal(decimal.NewFromInt(260)), "calories = %s", nut.Calories)
	assert.True(t, nut.Protein.Equal(decimal.NewFromFloat(5.4)), "protein = %s", nut.Protein)
	assert.True(t, nut.Carbs.Equal(decimal.NewFromInt(56)), "carbs = %s", nut.Carbs)
}

func TestComputeNutrition_ScalesLinearly(t *testing.T) {
	meal, err := NewCompositeMeal("lentil-soup", "Lentil Soup", "شوربة عدس", 250)
	require.NoError(t, err)
	require.NoError(t, meal.AddLine(RecipeLine{
		Ingredient: testIngredient("lentils", 116, 9, 20, 0.4, 6),
		Percentage: decimal.NewFromInt(40),
	}))
	require.NoError(t, meal.AddLine(RecipeLine{
		Ingredient: testIngredient("onion", 40, 1.1, 9.3, 0.1, 1.5),
		Percentage: decimal.NewFromInt(10),
	}))

	at250, err := meal.ComputeNutrition(250)
	require.NoError(t, err)
	at500, err := meal.ComputeNutrition(500)
	require.NoError(t, err)

	assert.True(t, at500.Calories.Equal(at250.Calories.Mul(decimal.NewFromInt(2))),
		"calories at 500 g = %s, at 250 g = %s", at500.Calories, at250.Calories)
	assert.True(t, at500.Protein.Equal(at250.Protein.Mul(decimal.NewFromInt(2))))
}

func TestComputeNutrition_ZeroWeightUsesDefault(t *testing.T) {
	meal, err := NewCompositeMeal("foul", "Foul Medames", "فول", 300)
	require.NoError(t, err)
	require.NoError(t, meal.AddLine(RecipeLine{
		Ingredient: testIngredient("fava beans", 110, 7.6, 19, 0.4, 3),
		Percentage: decimal.NewFromInt(100),
	}))

	atDefault, err := meal.ComputeNutrition(0)
	require.NoError(t, err)
	at300, err := meal.ComputeNutrition(300)
	require.NoError(t, err)
	assert.True(t, atDefault.Calories.Equal(at300.Calories))
}

func TestComputeNutrition_NoLines(t *testing.T) {
	meal, err := NewCompositeMeal("empty", "Empty Meal", "", 300)
	require.NoError(t, err)

	_, err = meal.ComputeNutrition(300)
	assert.ErrorIs(t, err, ErrNoRecipeLines)
}

func TestComputeNutrition_PriceMarkupAndCeiling(t *testing.T) {
	// 300 g at 100% of an ingredient costing 2.00 per 100 g: raw cost 6.00.
	// Substantial markup 2.2 -> 13.2, ceiled to 14. Light markup 1.6 -> 9.6,
	// ceiled to 10.
	meal, err := NewCompositeMeal("molokhia", "Molokhia", "ملوخية", 300)
	require.NoError(t, err)
	require.NoError(t, meal.AddLine(RecipeLine{
		Ingredient: testIngredient("molokhia leaves", 30, 3, 6, 0.2, 2),
		Percentage: decimal.NewFromInt(100),
	}))

	meal.SetClass(MealClassSubstantial)
	nut, err := meal.ComputeNutrition(300)
	require.NoError(t, err)
	assert.True(t, nut.Price.Equal(decimal.NewFromInt(14)), "substantial price = %s", nut.Price)

	meal.SetClass(MealClassLight)
	nut, err = meal.ComputeNutrition(300)
	require.NoError(t, err)
	assert.True(t, nut.Price.Equal(decimal.NewFromInt(10)), "light price = %s", nut.Price)

	// Marked-up price never drops below raw cost
	assert.True(t, nut.Price.GreaterThanOrEqual(decimal.NewFromInt(6)))
}

func TestClass_KeywordFallback(t *testing.T) {
	tests := []struct {
		name string
		want MealClass
	}{
		{"Foul Sandwich", MealClassLight},
		{"Koshary", MealClassLight},
		{"Green Salad Side", MealClassLight},
		{"Grilled Chicken with Rice", MealClassSubstantial},
		{"Molokhia with Rabbit", MealClassSubstantial},
	}

	for _, tt := range tests {
		meal, err := NewCompositeMeal("k", tt.name, "", 300)
		require.NoError(t, err)
		assert.Equal(t, tt.want, meal.Class(), "meal %q", tt.name)
	}
}

func TestClass_ExplicitOverridesKeywords(t *testing.T) {
	// A name that matches light keywords still prices as substantial when
	// the record says so
	meal, err := NewCompositeMeal("hawawshi-plate", "Hawawshi Plate", "حواوشي", 350)
	require.NoError(t, err)
	meal.SetClass(MealClassSubstantial)
	assert.Equal(t, MealClassSubstantial, meal.Class())
}

func TestAddLine_RejectsInvalid(t *testing.T) {
	meal, err := NewCompositeMeal("test", "Test Meal", "", 300)
	require.NoError(t, err)

	err = meal.AddLine(RecipeLine{
		Ingredient: testIngredient("rice", 130, 2.7, 28, 0.3, 2),
		Percentage: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, ErrNegativePercentage)

	err = meal.AddLine(RecipeLine{
		Ingredient: Ingredient{},
		Percentage: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, ErrIngredientNameRequired)
}
