package planner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileplate/v1/internal/domain/catalog"
	"github.com/nileplate/v1/internal/domain/pricing"
)

func marketMeal(name, mealType string, calories int, price float64) catalog.CatalogMeal {
	return catalog.CatalogMeal{
		ID:        uuid.New(),
		Name:      name,
		MealType:  mealType,
		Calories:  calories,
		Protein:   decimal.NewFromInt(20),
		BasePrice: decimal.NewFromFloat(price),
	}
}

func compositeMeal(t *testing.T, key, name string, servingWeightG int, caloriesPer100, pricePer100 float64) *catalog.CompositeMeal {
	t.Helper()
	m, err := catalog.NewCompositeMeal(key, name, "", servingWeightG)
	require.NoError(t, err)
	require.NoError(t, m.AddLine(catalog.RecipeLine{
		Ingredient: catalog.Ingredient{
			Name:           key + "-base",
			Unit:           catalog.UnitGram,
			CaloriesPer100: decimal.NewFromFloat(caloriesPer100),
			ProteinPer100:  decimal.NewFromInt(8),
			BasePrice:      decimal.NewFromFloat(pricePer100),
		},
		Percentage: decimal.NewFromInt(100),
	}))
	return m
}

func TestBuild_ClassifiesAndLocalizes(t *testing.T) {
	b := NewPoolBuilder(newTestLogger())

	pools := b.Build(BuildInput{
		CatalogMeals: []catalog.CatalogMeal{
			marketMeal("Foul Sandwich", "breakfast", 300, 10),
			marketMeal("Grilled Chicken Plate", "lunch", 650, 40),
		},
		Location:    pricing.CategoryRural,
		DailyBudget: 100,
	})

	require.Len(t, pools.Breakfast, 1)
	assert.Equal(t, "Foul Sandwich", pools.Breakfast[0].Name)
	assert.Equal(t, SlotBreakfast, pools.Breakfast[0].Slot)
	assert.Equal(t, SourceMarket, pools.Breakfast[0].Source)
	// Rural multiplier 0.70 applied to the metro base price
	assert.InDelta(t, 7, pools.Breakfast[0].Price, 0.001)

	// Mains are cross-listed into both lunch and dinner
	require.Len(t, pools.Lunch, 1)
	require.Len(t, pools.Dinner, 1)
	assert.Equal(t, pools.Lunch[0].ID, pools.Dinner[0].ID)
	assert.Equal(t, SlotLunch, pools.Lunch[0].Slot)
	assert.Equal(t, SlotDinner, pools.Dinner[0].Slot)
}

func TestBuild_MealTypeHintRouting(t *testing.T) {
	b := NewPoolBuilder(newTestLogger())

	// Neutral names that no keyword list matches: the catalog meal type
	// alone decides the pool
	pools := b.Build(BuildInput{
		CatalogMeals: []catalog.CatalogMeal{
			marketMeal("Oat Bowl", "breakfast", 340, 12),
			marketMeal("Stuffed Pigeon", "dinner", 700, 45),
			marketMeal("Roasted Chickpeas", "snack", 260, 8),
		},
		Location:    pricing.CategoryMetro,
		DailyBudget: 100,
	})

	require.Len(t, pools.Breakfast, 1)
	assert.Equal(t, "Oat Bowl", pools.Breakfast[0].Name)
	assert.Equal(t, SlotBreakfast, pools.Breakfast[0].Slot)

	require.Len(t, pools.Snack, 1)
	assert.Equal(t, "Roasted Chickpeas", pools.Snack[0].Name)

	// A dinner-typed meal is dinner-primary and cross-listed for lunch
	require.Len(t, pools.Dinner, 1)
	assert.Equal(t, "Stuffed Pigeon", pools.Dinner[0].Name)
	assert.Equal(t, SlotDinner, pools.Dinner[0].Slot)
	require.Len(t, pools.Lunch, 1)
	assert.Equal(t, pools.Dinner[0].ID, pools.Lunch[0].ID)
	assert.Equal(t, SlotLunch, pools.Lunch[0].Slot)
}

func TestBuild_BudgetHardFilter(t *testing.T) {
	b := NewPoolBuilder(newTestLogger())

	pools := b.Build(BuildInput{
		CatalogMeals: []catalog.CatalogMeal{
			marketMeal("Affordable Kofta", "lunch", 600, 30),
			marketMeal("Premium Seafood Platter", "lunch", 800, 300),
		},
		Location:    pricing.CategoryMetro,
		DailyBudget: 50,
	})

	require.Len(t, pools.Lunch, 1, "a single item exceeding the daily budget is excluded")
	assert.Equal(t, "Affordable Kofta", pools.Lunch[0].Name)
}

func TestBuild_CompositeMeals(t *testing.T) {
	b := NewPoolBuilder(newTestLogger())

	koshary := compositeMeal(t, "koshary", "Koshary", 400, 160, 3)
	broken, err := catalog.NewCompositeMeal("broken", "Broken Meal", "", 300)
	require.NoError(t, err)

	pools := b.Build(BuildInput{
		CompositeMeals: []*catalog.CompositeMeal{koshary, broken},
		Location:       pricing.CategoryMetro,
		DailyBudget:    100,
	})

	all := pools.All()
	require.Len(t, all, 1, "composite meals without recipe lines are skipped")
	assert.Equal(t, SourceTraditional, all[0].Source)
	// 400 g at 160 kcal/100 g
	assert.Equal(t, 640, all[0].Calories)
}

func TestBuild_UserRecipesOnlyWhenRequested(t *testing.T) {
	b := NewPoolBuilder(newTestLogger())

	recipe := catalog.UserRecipe{
		ID:       uuid.New(),
		Name:     "Home Molokhia",
		Servings: 4,
		Items: []catalog.UserRecipeItem{{
			Ingredient: catalog.Ingredient{
				Name:           "molokhia",
				Unit:           catalog.UnitGram,
				CaloriesPer100: decimal.NewFromInt(120),
				ProteinPer100:  decimal.NewFromInt(6),
				BasePrice:      decimal.NewFromInt(4),
			},
			Amount: decimal.NewFromInt(1000),
		}},
	}

	excluded := b.Build(BuildInput{
		UserRecipes:        []catalog.UserRecipe{recipe},
		Location:           pricing.CategoryMetro,
		DailyBudget:        100,
		IncludeUserRecipes: false,
	})
	assert.Empty(t, excluded.All())

	included := b.Build(BuildInput{
		UserRecipes:        []catalog.UserRecipe{recipe},
		Location:           pricing.CategoryMetro,
		DailyBudget:        100,
		IncludeUserRecipes: true,
	})
	all := included.All()
	require.Len(t, all, 1)
	assert.Equal(t, SourceUserRecipe, all[0].Source)
	assert.Equal(t, 300, all[0].Calories, "per-serving calories")
}

func TestBuild_BackfillEmptyPools(t *testing.T) {
	b := NewPoolBuilder(newTestLogger())

	// Only mains in the input: breakfast borrows them, snack borrows sides
	pools := b.Build(BuildInput{
		CatalogMeals: []catalog.CatalogMeal{
			marketMeal("Grilled Kofta", "lunch", 600, 30),
			marketMeal("White Rice", "side", 200, 5),
		},
		Location:    pricing.CategoryMetro,
		DailyBudget: 100,
	})

	assert.NotEmpty(t, pools.Breakfast, "empty breakfast pool borrows mains")
	assert.NotEmpty(t, pools.Snack, "empty snack pool borrows sides")
}

func TestPools_AllDeduplicates(t *testing.T) {
	c := Candidate{ID: "market_1", Name: "Kofta", Slot: SlotLunch}
	pools := &Pools{
		Lunch:  []Candidate{c},
		Dinner: []Candidate{retag(c, SlotDinner)},
	}

	assert.Len(t, pools.All(), 1, "cross-listed mains collapse by id")
}
