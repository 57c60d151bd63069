package planner

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nileplate/v1/internal/domain/catalog"
	"github.com/nileplate/v1/internal/domain/pricing"
)

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

func fixedRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// testPools builds a pool set wide enough for three-meal plans
func testPools() *Pools {
	pools := &Pools{}
	mains := []Candidate{
		{ID: "m1", Name: "Koshary", Calories: 700, Protein: 20, Price: 25, Slot: SlotLunch},
		{ID: "m2", Name: "Grilled Kofta", Calories: 600, Protein: 45, Price: 40, Slot: SlotLunch},
		{ID: "m3", Name: "Molokhia with Chicken", Calories: 550, Protein: 35, Price: 35, Slot: SlotLunch},
		{ID: "m4", Name: "Fatta", Calories: 800, Protein: 30, Price: 30, Slot: SlotLunch},
	}
	for _, m := range mains {
		pools.Lunch = append(pools.Lunch, m)
		pools.Dinner = append(pools.Dinner, retag(m, SlotDinner))
	}
	pools.Breakfast = []Candidate{
		{ID: "b1", Name: "Foul Sandwich", Calories: 350, Protein: 12, Price: 8, Slot: SlotBreakfast},
		{ID: "b2", Name: "Tameya Plate", Calories: 420, Protein: 14, Price: 10, Slot: SlotBreakfast},
	}
	pools.Side = []Candidate{
		{ID: "s1", Name: "White Rice", Calories: 200, Protein: 4, Price: 5, Slot: SlotSide},
		{ID: "s2", Name: "Green Salad", Calories: 90, Protein: 2, Price: 6, Slot: SlotSide},
	}
	pools.Snack = []Candidate{
		{ID: "k1", Name: "Basbousa", Calories: 320, Protein: 5, Price: 12, Slot: SlotSnack},
	}
	return pools
}

func TestOptimize_RespectsBudgetAndCount(t *testing.T) {
	o := NewOptimizer(200, fixedRand(), newTestLogger())

	sel, err := o.Optimize(testPools(), 1800, 60, 3, StrategyBalanced)
	require.NoError(t, err)

	assert.Len(t, sel.Items, 3)
	assert.LessOrEqual(t, sel.TotalCost, 60.0, "total never exceeds the daily budget")
	assert.Equal(t, StrategyBalanced, sel.Strategy)

	totalCal := 0
	for _, item := range sel.Items {
		totalCal += item.Calories
	}
	assert.Equal(t, totalCal, sel.TotalCalories)
}

func TestOptimize_NoDuplicates(t *testing.T) {
	o := NewOptimizer(200, fixedRand(), newTestLogger())

	sel, err := o.Optimize(testPools(), 2000, 100, 5, StrategyBalanced)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, item := range sel.Items {
		assert.False(t, seen[item.ID], "candidate %s selected twice", item.ID)
		seen[item.ID] = true
	}
}

func TestOptimize_DayOrder(t *testing.T) {
	o := NewOptimizer(200, fixedRand(), newTestLogger())

	sel, err := o.Optimize(testPools(), 1800, 100, 4, StrategyBalanced)
	require.NoError(t, err)

	for i := 1; i < len(sel.Items); i++ {
		assert.LessOrEqual(t,
			slotDayOrder[sel.Items[i-1].Slot], slotDayOrder[sel.Items[i].Slot],
			"items are ordered breakfast, lunch, dinner, snack, side")
	}
}

// mainsOnlyPools has no breakfast, snack or side candidates: every
// selection is built entirely from mains
func mainsOnlyPools() *Pools {
	pools := &Pools{}
	mains := []Candidate{
		{ID: "m1", Name: "Koshary", Calories: 700, Protein: 20, Price: 25, Slot: SlotLunch},
		{ID: "m2", Name: "Grilled Kofta", Calories: 600, Protein: 45, Price: 40, Slot: SlotLunch},
		{ID: "m3", Name: "Molokhia with Chicken", Calories: 550, Protein: 35, Price: 35, Slot: SlotLunch},
		{ID: "m4", Name: "Fatta", Calories: 800, Protein: 30, Price: 30, Slot: SlotLunch},
	}
	for _, m := range mains {
		pools.Lunch = append(pools.Lunch, m)
		pools.Dinner = append(pools.Dinner, retag(m, SlotDinner))
	}
	return pools
}

func TestOptimize_SecondMainTakesDinner(t *testing.T) {
	o := NewOptimizer(200, fixedRand(), newTestLogger())

	sel, err := o.Optimize(mainsOnlyPools(), 1800, 120, 3, StrategyBalanced)
	require.NoError(t, err)
	require.Len(t, sel.Items, 3)

	counts := make(map[Slot]int)
	for _, item := range sel.Items {
		counts[item.Slot]++
	}
	assert.Equal(t, 1, counts[SlotDinner], "a multi-main day carries exactly one dinner")
	assert.Equal(t, 2, counts[SlotLunch])
}

func TestOptimize_SingleMealDayIsDinner(t *testing.T) {
	o := NewOptimizer(100, fixedRand(), newTestLogger())

	sel, err := o.Optimize(mainsOnlyPools(), 700, 50, 1, StrategyBalanced)
	require.NoError(t, err)
	require.Len(t, sel.Items, 1)
	assert.Equal(t, SlotDinner, sel.Items[0].Slot)
}

func TestOptimize_DinnerTypedCatalogReachesDinner(t *testing.T) {
	b := NewPoolBuilder(newTestLogger())
	pools := b.Build(BuildInput{
		CatalogMeals: []catalog.CatalogMeal{
			marketMeal("Stuffed Pigeon", "dinner", 700, 35),
			marketMeal("Grilled Fish Plate", "dinner", 600, 30),
			marketMeal("Mixed Grill", "lunch", 650, 25),
		},
		Location:    pricing.CategoryMetro,
		DailyBudget: 120,
	})

	o := NewOptimizer(200, fixedRand(), newTestLogger())
	sel, err := o.Optimize(pools, 1900, 120, 3, StrategyBalanced)
	require.NoError(t, err)

	dinners := 0
	for _, item := range sel.Items {
		if item.Slot == SlotDinner {
			dinners++
		}
	}
	assert.Equal(t, 1, dinners, "dinner-typed catalog meals surface as a dinner line")
}

func TestOptimize_InfeasibleBudget(t *testing.T) {
	o := NewOptimizer(50, fixedRand(), newTestLogger())

	_, err := o.Optimize(testPools(), 1800, 0.01, 3, StrategyBalanced)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestOptimize_EmptyPools(t *testing.T) {
	o := NewOptimizer(50, fixedRand(), newTestLogger())

	_, err := o.Optimize(&Pools{}, 1800, 50, 3, StrategyBalanced)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestOptimize_InvalidMealsCount(t *testing.T) {
	o := NewOptimizer(50, fixedRand(), newTestLogger())

	_, err := o.Optimize(testPools(), 1800, 50, 0, StrategyBalanced)
	assert.ErrorIs(t, err, ErrInvalidMealsCount)

	_, err = o.Optimize(testPools(), 1800, 50, -2, StrategyBalanced)
	assert.ErrorIs(t, err, ErrInvalidMealsCount)
}

func TestOptimize_ApproachesTarget(t *testing.T) {
	// A wide pool with many calorie values: the search should land well
	// within the warning band of the target
	pools := &Pools{}
	for i := 0; i < 30; i++ {
		pools.Lunch = append(pools.Lunch, Candidate{
			ID:       fmt.Sprintf("w%d", i),
			Name:     fmt.Sprintf("Dish %d", i),
			Calories: 300 + i*25,
			Protein:  20,
			Price:    10 + float64(i),
			Slot:     SlotLunch,
		})
	}

	o := NewOptimizer(0, fixedRand(), newTestLogger())
	sel, err := o.Optimize(pools, 1600, 120, 3, StrategyBalanced)
	require.NoError(t, err)

	deviation := sel.TotalCalories - 1600
	if deviation < 0 {
		deviation = -deviation
	}
	assert.Less(t, deviation, 250, "deviation %d too large for a dense pool", deviation)
}

func TestScore_StrategyBias(t *testing.T) {
	o := NewOptimizer(1, fixedRand(), newTestLogger())

	cheap := Candidate{Calories: 600, Protein: 20, Price: 15}
	pricey := Candidate{Calories: 600, Protein: 20, Price: 45}
	assert.Greater(t,
		o.score(cheap, 600, StrategyBudgetSaver),
		o.score(pricey, 600, StrategyBudgetSaver),
		"budget saver prefers the cheaper of two equal-calorie candidates")

	lean := Candidate{Calories: 600, Protein: 50, Price: 30}
	plain := Candidate{Calories: 600, Protein: 10, Price: 30}
	assert.Greater(t,
		o.score(lean, 600, StrategyHighProtein),
		o.score(plain, 600, StrategyHighProtein),
		"high protein prefers protein-dense candidates")

	// The base score rewards closing the calorie gap
	fit := Candidate{Calories: 600, Protein: 20, Price: 30}
	overshoot := Candidate{Calories: 1400, Protein: 20, Price: 30}
	assert.Greater(t,
		o.score(fit, 600, StrategyBalanced),
		o.score(overshoot, 600, StrategyBalanced))
}

func TestNewOptimizer_Defaults(t *testing.T) {
	o := NewOptimizer(0, nil, newTestLogger())
	assert.Equal(t, DefaultTrials, o.trials)
	assert.NotNil(t, o.rng)
}
