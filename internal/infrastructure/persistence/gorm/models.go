// Package gorm provides GORM model definitions and repository
// implementations for the meal catalog and planning profiles
package gorm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientModel represents the GORM model for reference ingredients.
// Nutrition values are per 100 reference units, prices are metro reference
// prices.
type IngredientModel struct {
	ID             uuid.UUID       `gorm:"type:char(36);primaryKey"`
	Name           string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	NameAr         string          `gorm:"type:varchar(100)"`
	Unit           string          `gorm:"type:varchar(10);default:'g'"`
	CaloriesPer100 decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	ProteinPer100  decimal.Decimal `gorm:"type:decimal(8,2);default:0"`
	CarbsPer100    decimal.Decimal `gorm:"type:decimal(8,2);default:0"`
	FatPer100      decimal.Decimal `gorm:"type:decimal(8,2);default:0"`
	FiberPer100    decimal.Decimal `gorm:"type:decimal(8,2);default:0"`
	BasePrice      decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the table name
func (IngredientModel) TableName() string { return "ingredients" }

// CompositeMealModel represents an ingredient-composed meal
type CompositeMealModel struct {
	ID                    uuid.UUID `gorm:"type:char(36);primaryKey"`
	Key                   string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	NameEn                string    `gorm:"type:varchar(100);index;not null"`
	NameAr                string    `gorm:"type:varchar(100);index"`
	Class                 string    `gorm:"type:varchar(20)"`
	DefaultServingWeightG int       `gorm:"default:300"`
	ImageURL              string    `gorm:"type:text"`
	Description           string    `gorm:"type:text"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Lines []MealRecipeLineModel `gorm:"foreignKey:MealID"`
}

// TableName overrides the table name
func (CompositeMealModel) TableName() string { return "composite_meals" }

// MealRecipeLineModel joins composite meals to ingredients with a
// weight-percentage
type MealRecipeLineModel struct {
	ID           uint            `gorm:"primaryKey"`
	MealID       uuid.UUID       `gorm:"type:char(36);index;not null"`
	IngredientID uuid.UUID       `gorm:"type:char(36);not null"`
	Percentage   decimal.Decimal `gorm:"type:decimal(5,2);default:100"`

	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName overrides the table name
func (MealRecipeLineModel) TableName() string { return "meal_recipe_lines" }

// CatalogMealModel represents a standardized market meal with flat
// nutrition fields
type CatalogMealModel struct {
	ID        uuid.UUID       `gorm:"type:char(36);primaryKey"`
	Name      string          `gorm:"type:varchar(100);index;not null"`
	NameAr    string          `gorm:"type:varchar(100)"`
	MealType  string          `gorm:"type:varchar(20)"`
	Calories  int             `gorm:"default:0"`
	Protein   decimal.Decimal `gorm:"type:decimal(8,2);default:0"`
	BasePrice decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	ImageURL  string          `gorm:"type:text"`
	Active    bool            `gorm:"default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (CatalogMealModel) TableName() string { return "catalog_meals" }

// PlanningProfileModel holds the planning view of a user profile
type PlanningProfileModel struct {
	UserID            uuid.UUID `gorm:"type:char(36);primaryKey"`
	CurrentWeightKg   float64   `gorm:"default:0"`
	HeightCm          float64   `gorm:"default:0"`
	AgeYears          int       `gorm:"default:0"`
	Sex               string    `gorm:"type:char(1)"`
	ActivityLevel     string    `gorm:"type:varchar(30)"`
	GoalWeightKg      float64   `gorm:"default:0"`
	BodyFatPct        float64   `gorm:"default:0"`
	CalorieGoal       int       `gorm:"default:0"`
	DailyBudgetLimit  float64   `gorm:"default:0"`
	City              string    `gorm:"type:varchar(100)"`
	Location          string    `gorm:"type:varchar(20)"`
	LastStrategyIndex int       `gorm:"default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the table name
func (PlanningProfileModel) TableName() string { return "planning_profiles" }

// UserRecipeModel represents a user-authored recipe
type UserRecipeModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);index;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	NameAr    string    `gorm:"type:varchar(100)"`
	Servings  int       `gorm:"default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []UserRecipeItemModel `gorm:"foreignKey:RecipeID"`
}

// TableName overrides the table name
func (UserRecipeModel) TableName() string { return "user_recipes" }

// UserRecipeItemModel is one ingredient amount in a user recipe
type UserRecipeItemModel struct {
	ID           uint            `gorm:"primaryKey"`
	RecipeID     uuid.UUID       `gorm:"type:char(36);index;not null"`
	IngredientID uuid.UUID       `gorm:"type:char(36);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);default:0"`

	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName overrides the table name
func (UserRecipeItemModel) TableName() string { return "user_recipe_items" }
