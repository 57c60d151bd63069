package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealClass determines the price markup tier applied on top of raw
// ingredient cost. Light meals (street breakfast, snacks, sides) carry a
// lower vendor markup than substantial mains.
type MealClass string

const (
	MealClassUnspecified MealClass = ""
	MealClassLight       MealClass = "light"
	MealClassSubstantial MealClass = "substantial"
)

// Vendor markup tiers. Prices in this market are always rounded up to the
// next whole currency unit, never down.
var (
	lightMarkup       = decimal.NewFromFloat(1.6)
	substantialMarkup = decimal.NewFromFloat(2.2)
)

// lightClassKeywords backs the legacy name-based tier detection used when a
// meal record carries no explicit class. New catalog data should set the
// class field instead of relying on this list.
var lightClassKeywords = []string{
	"sandwich", "pudding", "foul", "tameya", "basbousa", "om ali", "baba",
	"side", "salad", "tahini", "dip", "hawawshi", "koshary", "fiteer", "zalabya",
}

// RecipeLine pairs an ingredient with its weight-percentage of the meal's
// total serving weight. Percentages are independent fractions and are not
// required to sum to 100.
type RecipeLine struct {
	Ingredient Ingredient
	Percentage decimal.Decimal
}

// Validate validates the recipe line
func (l RecipeLine) Validate() error {
	if l.Percentage.IsNegative() {
		return ErrNegativePercentage
	}
	return l.Ingredient.Validate()
}

// Nutrition holds the composed nutrition and marked-up price of a meal at a
// given serving weight. Nutrient values are rounded to one decimal place;
// price is a whole currency amount (ceiling).
type Nutrition struct {
	Calories decimal.Decimal
	Protein  decimal.Decimal
	Carbs    decimal.Decimal
	Fat      decimal.Decimal
	Fiber    decimal.Decimal
	Price    decimal.Decimal
}

// CompositeMeal is a meal whose nutrition and price are derived from its
// weighted ingredient composition rather than stored as flat fields.
type CompositeMeal struct {
	id                   uuid.UUID
	key                  string
	nameEn               string
	nameAr               string
	class                MealClass
	defaultServingWeight int // grams
	lines                []RecipeLine
	imageURL             string
	description          string
}

// NewCompositeMeal creates a new composite meal with validation
func NewCompositeMeal(key, nameEn, nameAr string, defaultServingWeightG int) (*CompositeMeal, error) {
	if key == "" {
		return nil, ErrMealKeyRequired
	}
	if nameEn == "" {
		return nil, ErrMealNameRequired
	}
	if defaultServingWeightG <= 0 {
		return nil, ErrInvalidServingWeight
	}

	return &CompositeMeal{
		id:                   uuid.New(),
		key:                  key,
		nameEn:               nameEn,
		nameAr:               nameAr,
		defaultServingWeight: defaultServingWeightG,
	}, nil
}

// RestoreCompositeMeal rebuilds a composite meal from persisted state
func RestoreCompositeMeal(id uuid.UUID, key, nameEn, nameAr string, class MealClass, defaultServingWeightG int, lines []RecipeLine, imageURL, description string) *CompositeMeal {
	return &CompositeMeal{
		id:                   id,
		key:                  key,
		nameEn:               nameEn,
		nameAr:               nameAr,
		class:                class,
		defaultServingWeight: defaultServingWeightG,
		lines:                lines,
		imageURL:             imageURL,
		description:          description,
	}
}

// ID returns the meal's unique identifier
func (m *CompositeMeal) ID() uuid.UUID { return m.id }

// Key returns the meal's stable catalog key, e.g. "koshary"
func (m *CompositeMeal) Key() string { return m.key }

// NameEn returns the English display name
func (m *CompositeMeal) NameEn() string { return m.nameEn }

// NameAr returns the Arabic display name
func (m *CompositeMeal) NameAr() string { return m.nameAr }

// DefaultServingWeight returns the default serving weight in grams
func (m *CompositeMeal) DefaultServingWeight() int { return m.defaultServingWeight }

// Lines returns the meal's recipe lines
func (m *CompositeMeal) Lines() []RecipeLine { return m.lines }

// ImageURL returns the meal's image URL
func (m *CompositeMeal) ImageURL() string { return m.imageURL }

// Description returns the meal's description
func (m *CompositeMeal) Description() string { return m.description }

// SetImageURL sets the meal's image URL
func (m *CompositeMeal) SetImageURL(url string) { m.imageURL = url }

// SetDescription sets the meal's description
func (m *CompositeMeal) SetDescription(d string) { m.description = d }

// SetClass sets the explicit markup class
func (m *CompositeMeal) SetClass(c MealClass) { m.class = c }

// AddLine appends a validated recipe line
func (m *CompositeMeal) AddLine(line RecipeLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	m.lines = append(m.lines, line)
	return nil
}

// Class returns the meal's markup class, falling back to name keyword
// detection when no explicit class was set on the record
func (m *CompositeMeal) Class() MealClass {
	if m.class != MealClassUnspecified {
		return m.class
	}
	name := strings.ToLower(m.nameEn)
	for _, kw := range lightClassKeywords {
		if strings.Contains(name, kw) {
			return MealClassLight
		}
	}
	return MealClassSubstantial
}

// ComputeNutrition composes total nutrition and marked-up price for the
// meal at the given serving weight. A weight of 0 or less uses the meal's
// default serving weight. Sums carry full precision; nutrient outputs are
// rounded to one decimal place at the end, price is rounded up to the next
// whole currency unit.
func (m *CompositeMeal) ComputeNutrition(servingWeightG int) (Nutrition, error) {
	if len(m.lines) == 0 {
		return Nutrition{}, ErrNoRecipeLines
	}
	if servingWeightG <= 0 {
		servingWeightG = m.defaultServingWeight
	}

	weight := decimal.NewFromInt(int64(servingWeightG))
	hundred := decimal.NewFromInt(100)

	var calories, protein, carbs, fat, fiber, cost decimal.Decimal
	for _, line := range m.lines {
		ingredientWeight := weight.Mul(line.Percentage).Div(hundred)
		// Nutrition values are per 100 reference units
		scale := ingredientWeight.Div(hundred)

		ing := line.Ingredient
		calories = calories.Add(ing.CaloriesPer100.Mul(scale))
		protein = protein.Add(ing.ProteinPer100.Mul(scale))
		carbs = carbs.Add(ing.CarbsPer100.Mul(scale))
		fat = fat.Add(ing.FatPer100.Mul(scale))
		fiber = fiber.Add(ing.FiberPer100.Mul(scale))

		// Mass/volume prices are per 100 units; counted prices are per
		// piece with one piece per 100 g of line weight, which reduces to
		// the same normalization
		cost = cost.Add(ingredientWeight.Div(hundred).Mul(ing.BasePrice))
	}

	markup := substantialMarkup
	if m.Class() == MealClassLight {
		markup = lightMarkup
	}

	return Nutrition{
		Calories: calories.Round(1),
		Protein:  protein.Round(1),
		Carbs:    carbs.Round(1),
		Fat:      fat.Round(1),
		Fiber:    fiber.Round(1),
		Price:    cost.Mul(markup).Ceil(),
	}, nil
}
