package catalog

import "errors"

// Domain errors for catalog operations

var (
	// Ingredient validation errors
	ErrIngredientNameRequired  = errors.New("ingredient name is required")
	ErrNegativeIngredientValue = errors.New("ingredient nutrition and price values cannot be negative")

	// Composite meal validation errors
	ErrMealKeyRequired      = errors.New("composite meal key is required")
	ErrMealNameRequired     = errors.New("composite meal name is required")
	ErrInvalidServingWeight = errors.New("default serving weight must be greater than 0")
	ErrNegativePercentage   = errors.New("recipe line percentage cannot be negative")

	// Composition errors
	ErrNoRecipeLines = errors.New("composite meal has no ingredient lines")

	// User recipe errors
	ErrZeroServings = errors.New("recipe servings must be greater than 0")
)
