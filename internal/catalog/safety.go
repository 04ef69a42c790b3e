package catalog

// Allergen-safety resolution.
// A recipe is safe for a user iff the user's allergy set is empty OR
// the recipe's allergen union does not intersect it.

// ContainsAllergen reports whether any composition ingredient carries
// the given allergen tag.
func (r *Recipe) ContainsAllergen(tagID int) bool {
	for _, ri := range r.Ingredients {
		for _, tag := range ri.Ingredient.Allergens {
			if tag.ID == tagID {
				return true
			}
		}
	}
	return false
}

// IsSafeFor reports whether the recipe is safe for a user holding the
// given allergy tags.
func (r *Recipe) IsSafeFor(allergyIDs []int) bool {
	for _, id := range allergyIDs {
		if r.ContainsAllergen(id) {
			return false
		}
	}
	return true
}

// SafeRecipes narrows recipes to those a user may eat:
// first restrict to the user's subscribed menu types (an empty menu-type
// set means NO restriction), then drop every recipe
// containing one of the user's allergens. Input order is preserved and
// the result holds each recipe at most once.
func SafeRecipes(recipes []*Recipe, menuTypeIDs, allergyIDs []int) []*Recipe {
	seen := make(map[int]bool)
	safe := make([]*Recipe, 0, len(recipes))

	for _, r := range recipes {
		if seen[r.ID] {
			continue
		}
		if len(menuTypeIDs) > 0 && !r.HasAnyMenuType(menuTypeIDs) {
			continue
		}
		if !r.IsSafeFor(allergyIDs) {
			continue
		}
		seen[r.ID] = true
		safe = append(safe, r)
	}
	return safe
}
