// Package planner implements the meal-plan optimization engine: candidate
// pool construction, the stochastic constrained search that fills a day's
// meal slots, and the per-user strategy rotation.
package planner

// Slot is a time-of-day meal category. Side is a filler category fed into
// slots alongside mains, never a slot of its own in the output.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotSnack     Slot = "snack"
	SlotSide      Slot = "side"
)

// slotDayOrder fixes the presentation order of a day's plan
var slotDayOrder = map[Slot]int{
	SlotBreakfast: 0,
	SlotLunch:     1,
	SlotDinner:    2,
	SlotSnack:     3,
	SlotSide:      4,
}

// Source tags where a candidate came from
type Source string

const (
	SourceMarket      Source = "market"      // standardized catalog meal
	SourceTraditional Source = "traditional" // ingredient-composed meal
	SourceUserRecipe  Source = "recipe"      // user-authored recipe
)

// Candidate is a meal in its localized, priced form, eligible for selection
// into a plan. Candidates are ephemeral: rebuilt on every optimization run
// from the current catalog and the user's current location.
type Candidate struct {
	ID       string
	Name     string
	NameAr   string
	Calories int
	Protein  float64
	Price    float64 // localized
	Source   Source
	Slot     Slot
	ImageURL string
}
