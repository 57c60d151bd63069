package planner

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nileplate/v1/internal/domain/catalog"
	"github.com/nileplate/v1/internal/domain/pricing"
)

// Pools holds slot-categorized candidates. Lunch and dinner overlap by
// construction: midday and evening staples are interchangeable in this
// market, so a lunch main is also eligible for dinner and vice versa.
type Pools struct {
	Breakfast []Candidate
	Lunch     []Candidate
	Dinner    []Candidate
	Snack     []Candidate
	Side      []Candidate
}

// All flattens every pool into one candidate set, collapsing duplicates
// across slot pools by id
func (p *Pools) All() []Candidate {
	seen := make(map[string]struct{})
	var out []Candidate
	for _, pool := range [][]Candidate{p.Breakfast, p.Lunch, p.Dinner, p.Snack, p.Side} {
		for _, c := range pool {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// BuildInput carries everything the pool builder needs. Catalog data is
// assumed already loaded into memory; the builder does no I/O.
type BuildInput struct {
	CatalogMeals       []catalog.CatalogMeal
	CompositeMeals     []*catalog.CompositeMeal
	UserRecipes        []catalog.UserRecipe
	Location           pricing.Category
	DailyBudget        float64
	IncludeUserRecipes bool
}

// PoolBuilder assembles eligible meals into slot-categorized,
// budget-filtered, price-localized candidate pools
type PoolBuilder struct {
	logger *zap.Logger
}

// NewPoolBuilder creates a new pool builder
func NewPoolBuilder(logger *zap.Logger) *PoolBuilder {
	return &PoolBuilder{logger: logger.Named("pool-builder")}
}

// Build produces candidate pools for one optimization run. Candidates whose
// localized price alone exceeds the daily budget are excluded outright: a
// single item that busts the day's budget is never useful. Composite meals
// with broken compositions are skipped, not fatal.
func (b *PoolBuilder) Build(in BuildInput) *Pools {
	pools := &Pools{}

	for _, m := range in.CatalogMeals {
		price, _ := pricing.Localize(m.BasePrice, in.Location).Round(2).Float64()
		if price > in.DailyBudget {
			continue
		}
		protein, _ := m.Protein.Float64()
		b.add(pools, Candidate{
			ID:       fmt.Sprintf("market_%s", m.ID),
			Name:     m.Name,
			NameAr:   orDefault(m.NameAr, m.Name),
			Calories: m.Calories,
			Protein:  protein,
			Price:    price,
			Source:   SourceMarket,
			ImageURL: m.ImageURL,
		}, ClassifyWithHint(m.Name, "", m.MealType, m.Calories))
	}

	for _, cm := range in.CompositeMeals {
		nut, err := cm.ComputeNutrition(0)
		if err != nil {
			if errors.Is(err, catalog.ErrNoRecipeLines) {
				b.logger.Warn("Skipping composite meal with no recipe lines",
					zap.String("meal_key", cm.Key()),
				)
			}
			continue
		}

		price, _ := pricing.Localize(nut.Price, in.Location).Round(2).Float64()
		if price > in.DailyBudget {
			continue
		}

		calories := int(nut.Calories.IntPart())
		protein, _ := nut.Protein.Float64()
		b.add(pools, Candidate{
			ID:       fmt.Sprintf("trad_%s", cm.ID()),
			Name:     cm.NameEn(),
			NameAr:   orDefault(cm.NameAr(), cm.NameEn()),
			Calories: calories,
			Protein:  protein,
			Price:    price,
			Source:   SourceTraditional,
			ImageURL: cm.ImageURL(),
		}, Classify(cm.NameEn(), cm.Key(), calories))
	}

	if in.IncludeUserRecipes {
		for _, r := range in.UserRecipes {
			serving, err := r.PerServing()
			if err != nil {
				b.logger.Warn("Skipping unusable user recipe",
					zap.String("recipe", r.Name),
					zap.Error(err),
				)
				continue
			}

			price, _ := pricing.Localize(serving.Cost, in.Location).Round(2).Float64()
			if price > in.DailyBudget {
				continue
			}

			calories := int(serving.Calories.IntPart())
			protein, _ := serving.Protein.Float64()
			b.add(pools, Candidate{
				ID:       fmt.Sprintf("recipe_%s", r.ID),
				Name:     r.Name,
				NameAr:   orDefault(r.NameAr, r.Name),
				Calories: calories,
				Protein:  protein,
				Price:    price,
				Source:   SourceUserRecipe,
			}, Classify(r.Name, "", calories))
		}
	}

	b.backfill(pools)
	return pools
}

// add routes a candidate into its slot pool, cross-listing mains between
// lunch and dinner
func (b *PoolBuilder) add(pools *Pools, c Candidate, slot Slot) {
	c.Slot = slot
	switch slot {
	case SlotBreakfast:
		pools.Breakfast = append(pools.Breakfast, c)
	case SlotSnack:
		pools.Snack = append(pools.Snack, c)
	case SlotSide:
		pools.Side = append(pools.Side, c)
	case SlotDinner:
		pools.Dinner = append(pools.Dinner, c)
		pools.Lunch = append(pools.Lunch, retag(c, SlotLunch))
	default:
		pools.Lunch = append(pools.Lunch, c)
		pools.Dinner = append(pools.Dinner, retag(c, SlotDinner))
	}
}

// backfill guarantees the optimizer is never handed an empty main pool: an
// empty slot borrows the union of the other main pools, and an empty snack
// pool borrows the sides.
func (b *PoolBuilder) backfill(pools *Pools) {
	if len(pools.Breakfast) == 0 {
		pools.Breakfast = unionMains(pools.Lunch, pools.Dinner)
	}
	if len(pools.Lunch) == 0 {
		pools.Lunch = unionMains(pools.Breakfast, pools.Dinner)
	}
	if len(pools.Dinner) == 0 {
		pools.Dinner = unionMains(pools.Breakfast, pools.Lunch)
	}
	if len(pools.Snack) == 0 {
		pools.Snack = append([]Candidate(nil), pools.Side...)
	}
}

func unionMains(pools ...[]Candidate) []Candidate {
	seen := make(map[string]struct{})
	var out []Candidate
	for _, pool := range pools {
		for _, c := range pool {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func retag(c Candidate, slot Slot) Candidate {
	c.Slot = slot
	return c
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
