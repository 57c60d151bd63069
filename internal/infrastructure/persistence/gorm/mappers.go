// Mapping between domain entities and GORM models
package gorm

import (
	"github.com/nileplate/v1/internal/domain/catalog"
	"github.com/nileplate/v1/internal/domain/nutrition"
	"github.com/nileplate/v1/internal/domain/pricing"
	"github.com/nileplate/v1/internal/domain/user"
)

// ModelToIngredient converts a GORM model to a domain ingredient
func ModelToIngredient(m *IngredientModel) catalog.Ingredient {
	return catalog.Ingredient{
		ID:             m.ID,
		Name:           m.Name,
		NameAr:         m.NameAr,
		Unit:           catalog.MeasurementUnit(m.Unit),
		CaloriesPer100: m.CaloriesPer100,
		ProteinPer100:  m.ProteinPer100,
		CarbsPer100:    m.CarbsPer100,
		FatPer100:      m.FatPer100,
		FiberPer100:    m.FiberPer100,
		BasePrice:      m.BasePrice,
	}
}

// ModelToCompositeMeal converts a GORM model (with preloaded lines) to a
// domain composite meal
func ModelToCompositeMeal(m *CompositeMealModel) *catalog.CompositeMeal {
	lines := make([]catalog.RecipeLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, catalog.RecipeLine{
			Ingredient: ModelToIngredient(&l.Ingredient),
			Percentage: l.Percentage,
		})
	}

	return catalog.RestoreCompositeMeal(
		m.ID,
		m.Key,
		m.NameEn,
		m.NameAr,
		catalog.MealClass(m.Class),
		m.DefaultServingWeightG,
		lines,
		m.ImageURL,
		m.Description,
	)
}

// ModelToCatalogMeal converts a GORM model to a domain catalog meal
func ModelToCatalogMeal(m *CatalogMealModel) catalog.CatalogMeal {
	return catalog.CatalogMeal{
		ID:        m.ID,
		Name:      m.Name,
		NameAr:    m.NameAr,
		MealType:  m.MealType,
		Calories:  m.Calories,
		Protein:   m.Protein,
		BasePrice: m.BasePrice,
		ImageURL:  m.ImageURL,
	}
}

// ModelToProfile converts a GORM model to a domain planning profile
func ModelToProfile(m *PlanningProfileModel) *user.PlanningProfile {
	return &user.PlanningProfile{
		UserID:            m.UserID,
		CurrentWeightKg:   m.CurrentWeightKg,
		HeightCm:          m.HeightCm,
		AgeYears:          m.AgeYears,
		Sex:               nutrition.Sex(m.Sex),
		ActivityLevel:     nutrition.ParseActivityLevel(m.ActivityLevel),
		GoalWeightKg:      m.GoalWeightKg,
		BodyFatPct:        m.BodyFatPct,
		CalorieGoal:       m.CalorieGoal,
		DailyBudgetLimit:  m.DailyBudgetLimit,
		City:              m.City,
		Location:          pricing.Category(m.Location),
		LastStrategyIndex: m.LastStrategyIndex,
	}
}

// ModelToUserRecipe converts a GORM model (with preloaded items) to a
// domain user recipe
func ModelToUserRecipe(m *UserRecipeModel) catalog.UserRecipe {
	items := make([]catalog.UserRecipeItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, catalog.UserRecipeItem{
			Ingredient: ModelToIngredient(&it.Ingredient),
			Amount:     it.Amount,
		})
	}

	return catalog.UserRecipe{
		ID:       m.ID,
		UserID:   m.UserID,
		Name:     m.Name,
		NameAr:   m.NameAr,
		Servings: m.Servings,
		Items:    items,
	}
}
