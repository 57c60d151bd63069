package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerServing(t *testing.T) {
	// 400 g rice (130 kcal/100 g, 2 per 100 g) plus 2 eggs (70 kcal and
	// 5 per piece), split over 4 servings
	recipe := UserRecipe{
		Name:     "Rice with Eggs",
		Servings: 4,
		Items: []UserRecipeItem{
			{
				Ingredient: testIngredient("rice", 130, 2.7, 28, 0.3, 2),
				Amount:     decimal.NewFromInt(400),
			},
			{
				Ingredient: Ingredient{
					Name:           "egg",
					Unit:           UnitPiece,
					CaloriesPer100: decimal.NewFromInt(70),
					ProteinPer100:  decimal.NewFromInt(6),
					BasePrice:      decimal.NewFromInt(5),
				},
				Amount: decimal.NewFromInt(2),
			},
		},
	}

	nut, err := recipe.PerServing()
	require.NoError(t, err)

	// (130*4 + 70*2) / 4 = 165 kcal per serving
	assert.True(t, nut.Calories.Equal(decimal.NewFromInt(165)), "calories = %s", nut.Calories)
	// (2.7*4 + 6*2) / 4 = 5.7 g protein
	assert.True(t, nut.Protein.Equal(decimal.NewFromFloat(5.7)), "protein = %s", nut.Protein)
	// (2*4 + 5*2) / 4 = 4.50, no vendor markup on home cooking
	assert.True(t, nut.Cost.Equal(decimal.NewFromFloat(4.5)), "cost = %s", nut.Cost)
}

func TestPerServing_Validation(t *testing.T) {
	recipe := UserRecipe{Name: "No Servings", Servings: 0, Items: []UserRecipeItem{{}}}
	_, err := recipe.PerServing()
	assert.ErrorIs(t, err, ErrZeroServings)

	recipe = UserRecipe{Name: "No Items", Servings: 2}
	_, err = recipe.PerServing()
	assert.ErrorIs(t, err, ErrNoRecipeLines)
}
