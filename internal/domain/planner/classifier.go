package planner

import "strings"

// Slot classification is a keyword lookup over the meal's name and catalog
// key, with an explicit priority order:
//
//  1. calorie override: anything under sideCalorieCeiling is a side/filler,
//     it cannot anchor a meal slot on its own
//  2. snack/dessert keywords
//  3. side keywords, unless a combo keyword marks the item as a full dish
//  4. breakfast keywords
//  5. default: main (lunch/dinner, interchangeable in this market)
const sideCalorieCeiling = 180

var snackKeywords = []string{
	"basbousa", "zalabya", "om ali", "om_ali", "pudding", "halawa",
	"honey", "sugar", "sweet", "dessert",
}

var sideKeywords = []string{
	"rice", "bread", "salad", "baladi", "عيش", "أرز", "سلطة", "خبز",
	"vegetables", "fino", "toast", "shamy", "dip", "tahina", "baba",
	"soup", "pickle",
}

// comboKeywords mark items that contain a side word but are full dishes,
// e.g. "Chicken with Rice" or koshary
var comboKeywords = []string{
	"with", "and", "كشري", "koshari", "koshary", "sandwich", "hawawshi",
	"burger", "pizza",
}

var breakfastKeywords = []string{
	"foul", "tameya", "beid", "shakshuka", "cheese", "falafel", "egg",
}

// Classify assigns a candidate to a slot from its display name, catalog key
// and calories. SlotLunch doubles as the generic main classification; the
// pool builder cross-lists mains into both lunch and dinner.
func Classify(name, key string, calories int) Slot {
	nameL := strings.ToLower(name)
	keyL := strings.ToLower(key)

	if calories < sideCalorieCeiling {
		return SlotSide
	}
	if matchesAny(nameL, keyL, snackKeywords) {
		return SlotSnack
	}
	if matchesAny(nameL, keyL, sideKeywords) && !matchesAny(nameL, keyL, comboKeywords) {
		return SlotSide
	}
	if matchesAny(nameL, keyL, breakfastKeywords) {
		return SlotBreakfast
	}
	return SlotLunch
}

// ClassifyWithHint routes a candidate that carries an explicit catalog
// meal-type hint. The side and snack overrides still apply: a low-calorie
// or side-named item cannot anchor a main slot whatever its hint says.
func ClassifyWithHint(name, key, mealType string, calories int) Slot {
	hint, ok := slotFromHint(mealType)
	if !ok {
		return Classify(name, key, calories)
	}
	if slot := Classify(name, key, calories); slot == SlotSide || slot == SlotSnack {
		return slot
	}
	return hint
}

// slotFromHint maps a catalog meal-type hint onto a slot
func slotFromHint(mealType string) (Slot, bool) {
	switch strings.ToLower(strings.TrimSpace(mealType)) {
	case "breakfast":
		return SlotBreakfast, true
	case "lunch":
		return SlotLunch, true
	case "dinner":
		return SlotDinner, true
	case "snack", "dessert":
		return SlotSnack, true
	case "side":
		return SlotSide, true
	default:
		return "", false
	}
}

func matchesAny(name, key string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) || strings.Contains(key, kw) {
			return true
		}
	}
	return false
}
