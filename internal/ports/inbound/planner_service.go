// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
)

// PlannerService defines the meal-plan generation use cases. This is the
// primary port that HTTP handlers and other driving adapters use.
type PlannerService interface {
	// GeneratePlan assembles a daily meal plan for a user
	GeneratePlan(ctx context.Context, cmd GeneratePlanCommand) (*DietPlanDTO, error)

	// ListCompositeMeals returns the ingredient-composed catalog
	ListCompositeMeals(ctx context.Context) ([]CompositeMealDTO, error)

	// ComputeMealNutrition composes nutrition for one catalog meal at a
	// serving weight (0 = the meal's default)
	ComputeMealNutrition(ctx context.Context, mealKey string, servingWeightG int) (*MealNutritionDTO, error)
}

// GeneratePlanCommand contains data for one plan request. Zero values mean
// "use the profile": overrides are optional.
type GeneratePlanCommand struct {
	UserID             uuid.UUID
	TargetCalories     int
	DailyBudget        float64
	MealsCount         int
	IncludeUserRecipes bool
}

// PlanItemDTO is one line of a generated plan
type PlanItemDTO struct {
	Label    string  `json:"meal_label"`
	Name     string  `json:"name"`
	NameAr   string  `json:"name_ar"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Price    float64 `json:"price"`
	Source   string  `json:"source"`
	ID       string  `json:"id"`
	ImageURL string  `json:"image,omitempty"`
}

// DietPlanDTO is the full plan response
type DietPlanDTO struct {
	Items          []PlanItemDTO `json:"plan"`
	TotalCalories  int           `json:"total_calories"`
	TotalProtein   int           `json:"total_protein"`
	TotalCost      float64       `json:"total_cost"`
	Strategy       string        `json:"plan_variant"`
	Warning        string        `json:"warning,omitempty"`
	MealsCount     int           `json:"meals_count"`
	TargetCalories int           `json:"target_calories"`
	DailyBudget    float64       `json:"daily_budget"`
}

// CompositeMealDTO summarizes one ingredient-composed meal
type CompositeMealDTO struct {
	Key                  string `json:"meal_id"`
	Name                 string `json:"name"`
	NameAr               string `json:"name_ar"`
	DefaultServingWeight int    `json:"default_serving_weight_g"`
	Lines                int    `json:"ingredient_count"`
	ImageURL             string `json:"image,omitempty"`
	Description          string `json:"description,omitempty"`
}

// MealNutritionDTO is the composed nutrition of one meal at one weight
type MealNutritionDTO struct {
	Key            string  `json:"meal_id"`
	ServingWeightG int     `json:"serving_weight_g"`
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
	Fiber          float64 `json:"fiber"`
	Price          float64 `json:"price"`
}
