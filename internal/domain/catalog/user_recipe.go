package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRecipeItem is one ingredient amount in a user-authored recipe. Amount
// is in the ingredient's own unit: grams/milliliters for mass and volume
// ingredients, piece count for counted ones.
type UserRecipeItem struct {
	Ingredient Ingredient
	Amount     decimal.Decimal
}

// UserRecipe is a recipe saved by a user in their own kitchen, expressed as
// absolute ingredient amounts divided across a number of servings.
type UserRecipe struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Name     string
	NameAr   string
	Servings int
	Items    []UserRecipeItem
}

// ServingNutrition holds per-serving values derived from a user recipe
type ServingNutrition struct {
	Calories decimal.Decimal
	Protein  decimal.Decimal
	Cost     decimal.Decimal
}

// PerServing computes per-serving calories, protein and raw ingredient cost.
// User recipes carry no vendor markup: the user cooks them at home.
func (r UserRecipe) PerServing() (ServingNutrition, error) {
	if r.Servings <= 0 {
		return ServingNutrition{}, ErrZeroServings
	}
	if len(r.Items) == 0 {
		return ServingNutrition{}, ErrNoRecipeLines
	}

	hundred := decimal.NewFromInt(100)
	servings := decimal.NewFromInt(int64(r.Servings))

	var calories, protein, cost decimal.Decimal
	for _, item := range r.Items {
		ing := item.Ingredient

		// Counted ingredients store nutrition and price per piece;
		// mass/volume values are per 100 units
		scale := item.Amount
		if !ing.IsCounted() {
			scale = item.Amount.Div(hundred)
		}

		calories = calories.Add(ing.CaloriesPer100.Mul(scale))
		protein = protein.Add(ing.ProteinPer100.Mul(scale))
		cost = cost.Add(ing.BasePrice.Mul(scale))
	}

	return ServingNutrition{
		Calories: calories.Div(servings).Round(1),
		Protein:  protein.Div(servings).Round(1),
		Cost:     cost.Div(servings).Round(2),
	}, nil
}
