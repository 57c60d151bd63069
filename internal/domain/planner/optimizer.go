package planner

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/nileplate/v1/internal/domain/nutrition"
)

const (
	// DefaultTrials bounds the randomized search. High enough to cover
	// sparse pools, low enough to cap worst-case latency deterministically.
	DefaultTrials = 600

	// Base desirability weights: how well a candidate closes the calorie
	// gap versus how many calories it buys per currency unit
	calMatchWeight   = 0.7
	efficiencyWeight = 0.3

	// lookahead is how many affordable candidates from the shuffled order
	// compete for each acceptance. Keeps strategy bias meaningful without
	// collapsing the search into a deterministic greedy.
	lookahead = 5
)

// Selection is the result of a successful optimization run: an ordered,
// slot-tagged list of non-duplicate candidates plus aggregate totals.
type Selection struct {
	Items         []Candidate
	TotalCalories int
	TotalProtein  float64
	TotalCost     float64
	Strategy      Strategy
}

// Optimizer performs the stochastic constrained search. The random source
// is injectable: production seeds fresh per call for run-to-run variety,
// tests fix the seed for exact assertions.
type Optimizer struct {
	trials int
	rng    *rand.Rand
	logger *zap.Logger
}

// NewOptimizer creates an optimizer. A trials value of 0 or less selects
// DefaultTrials; a nil rng gets a time-seeded source.
func NewOptimizer(trials int, rng *rand.Rand, logger *zap.Logger) *Optimizer {
	if trials <= 0 {
		trials = DefaultTrials
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Optimizer{
		trials: trials,
		rng:    rng,
		logger: logger.Named("optimizer"),
	}
}

// Optimize searches for mealsCount distinct candidates whose total calories
// approximate targetCalories without the total price exceeding dailyBudget.
// It runs bounded randomized trials and keeps the best-scoring feasible one;
// exact ties are broken by coin flip to preserve run-to-run variety. Returns
// ErrInfeasible when no trial assembles a full selection within budget.
func (o *Optimizer) Optimize(pools *Pools, targetCalories int, dailyBudget float64, mealsCount int, strategy Strategy) (*Selection, error) {
	if mealsCount <= 0 {
		return nil, ErrInvalidMealsCount
	}

	candidates := pools.All()
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	var best *Selection
	bestDeviation := math.MaxInt
	trialsRun := 0

	for t := 0; t < o.trials; t++ {
		trialsRun++

		order := make([]Candidate, len(candidates))
		copy(order, candidates)
		o.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		trial, ok := o.runTrial(order, targetCalories, dailyBudget, mealsCount, strategy)
		if !ok {
			continue
		}

		deviation := abs(targetCalories - trial.TotalCalories)
		if deviation < bestDeviation || (deviation == bestDeviation && o.rng.Intn(2) == 0) {
			best = trial
			bestDeviation = deviation
		}
		if bestDeviation == 0 {
			break
		}
	}

	if best == nil {
		o.logger.Info("No feasible selection found",
			zap.Int("meals_count", mealsCount),
			zap.Float64("daily_budget", dailyBudget),
			zap.Int("candidates", len(candidates)),
			zap.Int("trials", trialsRun),
		)
		return nil, ErrInfeasible
	}

	best.Strategy = strategy
	o.logger.Debug("Optimization finished",
		zap.Int("trials", trialsRun),
		zap.Int("deviation", bestDeviation),
		zap.Int("total_calories", best.TotalCalories),
		zap.Float64("total_cost", best.TotalCost),
	)
	return best, nil
}

// runTrial greedily walks the shuffled order. At each step the first
// affordable candidates within the lookahead window compete on desirability;
// the strategy bias decides among them but never overrides the budget check.
func (o *Optimizer) runTrial(order []Candidate, targetCalories int, dailyBudget float64, mealsCount int, strategy Strategy) (*Selection, bool) {
	var items []Candidate
	remaining := dailyBudget
	totalCalories := 0
	totalProtein := 0.0
	totalCost := 0.0

	for len(items) < mealsCount {
		picked := -1
		bestScore := 0.0
		affordable := 0
		for i := 0; i < len(order) && affordable < lookahead; i++ {
			c := order[i]
			if c.Price > remaining {
				continue
			}
			affordable++
			score := o.score(c, targetCalories-totalCalories, strategy)
			if picked == -1 || score > bestScore {
				picked = i
				bestScore = score
			}
		}
		if picked == -1 {
			break
		}

		c := order[picked]
		order = append(order[:picked], order[picked+1:]...)
		items = append(items, c)
		totalCalories += c.Calories
		totalProtein += c.Protein
		totalCost += c.Price
		remaining -= c.Price
	}

	if len(items) < mealsCount {
		return nil, false
	}

	assignMainSlots(items, mealsCount)
	sort.SliceStable(items, func(i, j int) bool {
		return slotDayOrder[items[i].Slot] < slotDayOrder[items[j].Slot]
	})

	return &Selection{
		Items:         items,
		TotalCalories: totalCalories,
		TotalProtein:  totalProtein,
		TotalCost:     totalCost,
	}, true
}

// assignMainSlots spreads the selected mains over the midday and evening
// slots: the first main takes lunch, the second takes dinner, any further
// mains stay on lunch and render as extras. A single-meal day is an
// evening meal.
func assignMainSlots(items []Candidate, mealsCount int) {
	mains := make([]*Candidate, 0, len(items))
	for i := range items {
		if items[i].Slot == SlotLunch || items[i].Slot == SlotDinner {
			mains = append(mains, &items[i])
		}
	}
	if len(mains) == 0 {
		return
	}
	if mealsCount == 1 {
		mains[0].Slot = SlotDinner
		return
	}
	for _, m := range mains {
		m.Slot = SlotLunch
	}
	if len(mains) > 1 {
		mains[1].Slot = SlotDinner
	}
}

// score is the base desirability of a candidate given the remaining calorie
// gap, plus the strategy bias
func (o *Optimizer) score(c Candidate, calorieGap int, strategy Strategy) float64 {
	gap := float64(calorieGap)
	if gap < 100 {
		gap = 100
	}
	calDiff := math.Abs(float64(calorieGap - c.Calories))
	calScore := math.Max(0, 1-calDiff/gap)

	efficiency := nutrition.Efficiency(c.Calories, math.Max(c.Price, 1))
	base := calScore*calMatchWeight + math.Min(efficiency/50, 1)*efficiencyWeight

	return base + strategy.bonus(c, o.rng)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
