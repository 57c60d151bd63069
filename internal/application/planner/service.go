// Package planner provides the application layer for meal-plan generation
// This implements the use cases defined in the inbound ports
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/nileplate/v1/internal/domain/planner"
	"github.com/nileplate/v1/internal/domain/pricing"
	"github.com/nileplate/v1/internal/ports/inbound"
	"github.com/nileplate/v1/internal/ports/outbound"
	"github.com/nileplate/v1/pkg/errors"
)

// Boundary clamps: malformed or out-of-range inputs are clamped to
// supported bounds rather than rejected, keeping the optimizer's
// preconditions simple and total.
const (
	minCalories = 500
	maxCalories = 5000
	minBudget   = 1.0
	minMeals    = 1
	maxMeals    = 6

	defaultMealsCount = 3

	// calorieWarningGap is the deviation above which the plan carries a
	// "hard to match" warning
	calorieWarningGap = 250
)

// slotLabels maps selection slots to client-facing labels
var slotLabels = map[planner.Slot]string{
	planner.SlotBreakfast: "Breakfast",
	planner.SlotLunch:     "Lunch",
	planner.SlotDinner:    "Dinner",
	planner.SlotSnack:     "Snack",
	planner.SlotSide:      "Extras",
}

// Options tunes the plan service
type Options struct {
	// Trials bounds the optimizer's randomized search; 0 selects the
	// domain default
	Trials int

	// DefaultDailyBudget applies when neither the request nor the profile
	// carries a budget
	DefaultDailyBudget float64

	// PlanCacheTTL is how long the last generated plan stays cached per
	// user; 0 disables caching
	PlanCacheTTL time.Duration

	// NewRand supplies the optimizer's random source. Production leaves it
	// nil for a fresh time-based seed per call; tests inject a fixed seed.
	NewRand func() *rand.Rand
}

// Service implements the plan generation use cases
type Service struct {
	catalogRepo outbound.CatalogRepository
	userRepo    outbound.UserRepository
	recipeRepo  outbound.RecipeRepository
	cache       outbound.CacheRepository
	poolBuilder *planner.PoolBuilder
	logger      *zap.Logger
	opts        Options
}

// NewService creates a new plan service
func NewService(
	catalogRepo outbound.CatalogRepository,
	userRepo outbound.UserRepository,
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
	opts Options,
) inbound.PlannerService {
	if opts.DefaultDailyBudget <= 0 {
		opts.DefaultDailyBudget = 50
	}
	if opts.NewRand == nil {
		opts.NewRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &Service{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		recipeRepo:  recipeRepo,
		cache:       cache,
		poolBuilder: planner.NewPoolBuilder(logger),
		logger:      logger.Named("planner-service"),
		opts:        opts,
	}
}

// GeneratePlan assembles a daily meal plan for a user
func (s *Service) GeneratePlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*inbound.DietPlanDTO, error) {
	profile, err := s.userRepo.FindProfile(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("load planning profile", err)
	}
	if profile == nil {
		return nil, errors.NewProfileNotFoundError(cmd.UserID.String())
	}

	targetCalories := cmd.TargetCalories
	if targetCalories <= 0 {
		targetCalories = profile.TargetCalories()
	}
	targetCalories = clampInt(targetCalories, minCalories, maxCalories)

	budget := cmd.DailyBudget
	if budget <= 0 {
		budget = profile.DailyBudgetLimit
	}
	if budget <= 0 {
		budget = s.opts.DefaultDailyBudget
	}
	budget = math.Max(budget, minBudget)

	mealsCount := cmd.MealsCount
	if mealsCount == 0 {
		mealsCount = defaultMealsCount
	}
	mealsCount = clampInt(mealsCount, minMeals, maxMeals)

	strategy, nextIndex := planner.NextStrategy(profile.LastStrategyIndex)
	if err := s.userRepo.SaveStrategyIndex(ctx, cmd.UserID, nextIndex); err != nil {
		// Losing a rotation step is cosmetic; the plan still goes out
		s.logger.Warn("Failed to persist strategy rotation index",
			zap.String("user_id", cmd.UserID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("Generating meal plan",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("target_calories", targetCalories),
		zap.Float64("daily_budget", budget),
		zap.Int("meals_count", mealsCount),
		zap.String("strategy", string(strategy)),
	)

	pools, err := s.buildPools(ctx, cmd, profile.ResolveLocation(), budget)
	if err != nil {
		return nil, err
	}

	optimizer := planner.NewOptimizer(s.opts.Trials, s.opts.NewRand(), s.logger)
	selection, err := optimizer.Optimize(pools, targetCalories, budget, mealsCount, strategy)
	if err != nil {
		return nil, errors.NewPlanInfeasibleError(mealsCount, budget, err)
	}

	dto := s.selectionToDTO(selection, targetCalories, budget, mealsCount)
	s.cachePlan(ctx, cmd.UserID.String(), dto)

	s.logger.Info("Meal plan generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("total_calories", dto.TotalCalories),
		zap.Float64("total_cost", dto.TotalCost),
		zap.String("strategy", dto.Strategy),
	)
	return dto, nil
}

// ListCompositeMeals returns the ingredient-composed catalog
func (s *Service) ListCompositeMeals(ctx context.Context) ([]inbound.CompositeMealDTO, error) {
	meals, err := s.catalogRepo.CompositeMeals(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list composite meals", err)
	}

	dtos := make([]inbound.CompositeMealDTO, 0, len(meals))
	for _, m := range meals {
		dtos = append(dtos, inbound.CompositeMealDTO{
			Key:                  m.Key(),
			Name:                 m.NameEn(),
			NameAr:               m.NameAr(),
			DefaultServingWeight: m.DefaultServingWeight(),
			Lines:                len(m.Lines()),
			ImageURL:             m.ImageURL(),
			Description:          m.Description(),
		})
	}
	return dtos, nil
}

// ComputeMealNutrition composes nutrition for one catalog meal at a serving
// weight
func (s *Service) ComputeMealNutrition(ctx context.Context, mealKey string, servingWeightG int) (*inbound.MealNutritionDTO, error) {
	meal, err := s.catalogRepo.FindCompositeByKey(ctx, mealKey)
	if err != nil {
		return nil, errors.NewDatabaseError("find composite meal", err)
	}
	if meal == nil {
		return nil, errors.NewMealNotFoundError(mealKey)
	}

	nut, err := meal.ComputeNutrition(servingWeightG)
	if err != nil {
		return nil, errors.NewInvalidRecipeError(mealKey, err)
	}

	if servingWeightG <= 0 {
		servingWeightG = meal.DefaultServingWeight()
	}

	calories, _ := nut.Calories.Float64()
	protein, _ := nut.Protein.Float64()
	carbs, _ := nut.Carbs.Float64()
	fat, _ := nut.Fat.Float64()
	fiber, _ := nut.Fiber.Float64()
	price, _ := nut.Price.Float64()

	return &inbound.MealNutritionDTO{
		Key:            mealKey,
		ServingWeightG: servingWeightG,
		Calories:       calories,
		Protein:        protein,
		Carbs:          carbs,
		Fat:            fat,
		Fiber:          fiber,
		Price:          price,
	}, nil
}

// buildPools loads catalog data and assembles candidate pools
func (s *Service) buildPools(ctx context.Context, cmd inbound.GeneratePlanCommand, location pricing.Category, budget float64) (*planner.Pools, error) {
	catalogMeals, err := s.catalogRepo.ActiveMeals(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load catalog meals", err)
	}
	compositeMeals, err := s.catalogRepo.CompositeMeals(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load composite meals", err)
	}

	input := planner.BuildInput{
		CatalogMeals:       catalogMeals,
		CompositeMeals:     compositeMeals,
		Location:           location,
		DailyBudget:        budget,
		IncludeUserRecipes: cmd.IncludeUserRecipes,
	}

	if cmd.IncludeUserRecipes {
		recipes, err := s.recipeRepo.FindByUser(ctx, cmd.UserID)
		if err != nil {
			return nil, errors.NewDatabaseError("load user recipes", err)
		}
		input.UserRecipes = recipes
	}

	return s.poolBuilder.Build(input), nil
}

// selectionToDTO formats the selection into the ordered, labeled response.
// Items arrive sorted in day order; the first item of each slot carries the
// slot label, further items of the same slot are extras.
func (s *Service) selectionToDTO(sel *planner.Selection, targetCalories int, budget float64, mealsCount int) *inbound.DietPlanDTO {
	items := make([]inbound.PlanItemDTO, 0, len(sel.Items))
	seenSlots := make(map[planner.Slot]bool)
	for _, c := range sel.Items {
		label := slotLabels[c.Slot]
		if seenSlots[c.Slot] && c.Slot != planner.SlotSnack {
			label = "Extras"
		}
		seenSlots[c.Slot] = true

		items = append(items, inbound.PlanItemDTO{
			Label:    label,
			Name:     c.Name,
			NameAr:   c.NameAr,
			Calories: c.Calories,
			Protein:  int(c.Protein),
			Price:    round2(c.Price),
			Source:   string(c.Source),
			ID:       c.ID,
			ImageURL: c.ImageURL,
		})
	}

	warning := ""
	if abs(sel.TotalCalories-targetCalories) >= calorieWarningGap {
		warning = "Calorie target was difficult to match with current budget."
	}

	return &inbound.DietPlanDTO{
		Items:          items,
		TotalCalories:  sel.TotalCalories,
		TotalProtein:   int(sel.TotalProtein),
		TotalCost:      round2(sel.TotalCost),
		Strategy:       string(sel.Strategy),
		Warning:        warning,
		MealsCount:     mealsCount,
		TargetCalories: targetCalories,
		DailyBudget:    budget,
	}
}

// cachePlan stores the last generated plan per user, best effort
func (s *Service) cachePlan(ctx context.Context, userID string, dto *inbound.DietPlanDTO) {
	if s.cache == nil || s.opts.PlanCacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	key := fmt.Sprintf("plan:last:%s", userID)
	if err := s.cache.Set(ctx, key, data, s.opts.PlanCacheTTL); err != nil {
		s.logger.Debug("Failed to cache plan", zap.String("key", key), zap.Error(err))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
