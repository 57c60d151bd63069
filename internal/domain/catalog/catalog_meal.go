package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogMeal is a standardized market meal with flat nutrition fields.
// Unlike CompositeMeal, its values come straight from the catalog feed and
// need no composition step. BasePrice is the metro reference price.
type CatalogMeal struct {
	ID        uuid.UUID
	Name      string
	NameAr    string
	MealType  string // catalog hint: breakfast / lunch / dinner
	Calories  int
	Protein   decimal.Decimal
	BasePrice decimal.Decimal
	ImageURL  string
}

// Validate validates the catalog meal
func (m CatalogMeal) Validate() error {
	if m.Name == "" {
		return ErrMealNameRequired
	}
	if m.BasePrice.IsNegative() {
		return ErrNegativeIngredientValue
	}
	return nil
}
