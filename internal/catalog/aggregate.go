package catalog

// Derived recipe attributes.
// PURE computations over the loaded composition (NO caching);
// callers that need repeated access should memoize on their side.

// TotalPrice sums ingredient price × mass / 100 over the composition.
// Entries with zero price or zero mass contribute zero, not an error.
func (r *Recipe) TotalPrice() float64 {
	var price float64
	for _, ri := range r.Ingredients {
		if ri.Ingredient.Price > 0 && ri.Mass > 0 {
			price += ri.Ingredient.Price * ri.Mass / 100
		}
	}
	return price
}

// TotalMass sums the composition masses in grams.
func (r *Recipe) TotalMass() float64 {
	var mass float64
	for _, ri := range r.Ingredients {
		if ri.Mass > 0 {
			mass += ri.Mass
		}
	}
	return mass
}

// TotalCalories sums ingredient caloricity × mass / 100, with the same
// zero-skip policy as TotalPrice.
func (r *Recipe) TotalCalories() float64 {
	var calories float64
	for _, ri := range r.Ingredients {
		if ri.Ingredient.Caloricity > 0 && ri.Mass > 0 {
			calories += ri.Mass * ri.Ingredient.Caloricity / 100
		}
	}
	return calories
}

// Allergens returns the union of the composition's allergen tags,
// deduplicated by tag ID.
func (r *Recipe) Allergens() []FoodTag {
	seen := make(map[int]bool)
	var tags []FoodTag
	for _, ri := range r.Ingredients {
		for _, tag := range ri.Ingredient.Allergens {
			if seen[tag.ID] {
				continue
			}
			seen[tag.ID] = true
			tags = append(tags, tag)
		}
	}
	return tags
}
