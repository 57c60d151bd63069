package planner

import "math/rand"

// Strategy is a scoring bias applied during optimization. Strategies never
// change the budget accept/reject logic, only which of several viable
// candidates the search prefers.
type Strategy string

const (
	StrategyBalanced    Strategy = "Balanced"
	StrategyHighProtein Strategy = "High Protein"
	StrategyBudgetSaver Strategy = "Budget Saver"
	StrategyHighEnergy  Strategy = "High Energy"
	StrategyVariety     Strategy = "Variety"
)

// Strategies is the fixed rotation order
var Strategies = []Strategy{
	StrategyBalanced,
	StrategyHighProtein,
	StrategyBudgetSaver,
	StrategyHighEnergy,
	StrategyVariety,
}

// bonus returns the additive strategy bias for a candidate
func (s Strategy) bonus(c Candidate, rng *rand.Rand) float64 {
	switch s {
	case StrategyHighProtein:
		return c.Protein * 0.5
	case StrategyBudgetSaver:
		return -c.Price
	case StrategyHighEnergy:
		return float64(c.Calories) / 100 * 0.2
	case StrategyVariety:
		// Small bounded jitter so shuffling dominates substance
		return rng.Float64()*4 - 2
	default:
		return 0
	}
}

// NextStrategy advances the per-user rotation: consecutive plan requests
// from the same user cycle through all five strategies before repeating.
// The updated index is persisted by the caller; losing a step to a
// concurrent request is acceptable (last write wins).
func NextStrategy(lastIndex int) (Strategy, int) {
	next := (lastIndex + 1) % len(Strategies)
	if next < 0 {
		next += len(Strategies)
	}
	return Strategies[next], next
}
