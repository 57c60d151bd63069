// Package catalog contains the core domain logic for the meal catalog:
// reference ingredients, composite meals built from weighted ingredient
// lines, and the nutrition/price composition rules.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MeasurementUnit represents an ingredient's unit of measure
type MeasurementUnit string

const (
	UnitGram       MeasurementUnit = "g"
	UnitMilliliter MeasurementUnit = "ml"
	UnitPiece      MeasurementUnit = "piece"
)

// Ingredient is immutable reference data. Nutrition values are per 100
// reference units (grams or milliliters), or per piece for counted items.
// BasePrice is the metro (Cairo/Giza) reference price per 100 units, or
// per piece for counted items.
type Ingredient struct {
	ID             uuid.UUID
	Name           string
	NameAr         string
	Unit           MeasurementUnit
	CaloriesPer100 decimal.Decimal
	ProteinPer100  decimal.Decimal
	CarbsPer100    decimal.Decimal
	FatPer100      decimal.Decimal
	FiberPer100    decimal.Decimal
	BasePrice      decimal.Decimal
}

// Validate validates the ingredient reference data
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return ErrIngredientNameRequired
	}
	if i.CaloriesPer100.IsNegative() || i.BasePrice.IsNegative() {
		return ErrNegativeIngredientValue
	}
	return nil
}

// IsCounted reports whether the ingredient is measured in pieces rather
// than by mass or volume
func (i Ingredient) IsCounted() bool {
	return i.Unit == UnitPiece
}
