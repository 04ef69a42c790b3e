package dailymenu

import "foodplan/internal/catalog"

// Resolve projects the menu onto one user: safe slots are kept, unsafe
// slots are replaced by the first candidate matching the slot's meal
// type and one of the user's menu types, empty or unreplaceable slots
// resolve to nil. Candidates are expected in ascending ID order, which
// is the documented tie-break. The stored menu is never touched.
//
// candidates should already be the user's safe set (catalog.SafeRecipes).
func Resolve(
	menu *DailyMenu,
	candidates []*catalog.Recipe,
	menuTypeIDs []int,
	allergyIDs []int,
) map[catalog.MealType]*catalog.Recipe {

	resolved := make(map[catalog.MealType]*catalog.Recipe, 4)

	for slot, recipe := range menu.Slots() {
		if recipe == nil {
			resolved[slot] = nil
			continue
		}
		if recipe.IsSafeFor(allergyIDs) {
			resolved[slot] = recipe
			continue
		}
		resolved[slot] = substitute(recipe, candidates, menuTypeIDs)
	}
	return resolved
}

// substitute picks the first safe candidate sharing the unsafe recipe's
// meal type and at least one subscribed menu type. No match leaves the
// slot empty: a visible "no recipe available", not an error.
func substitute(
	unsafe *catalog.Recipe,
	candidates []*catalog.Recipe,
	menuTypeIDs []int,
) *catalog.Recipe {

	for _, candidate := range candidates {
		if candidate.MealType != unsafe.MealType {
			continue
		}
		if !candidate.HasAnyMenuType(menuTypeIDs) {
			continue
		}
		return candidate
	}
	return nil
}
