package catalog

import "testing"

// Small fixture catalog: two menu types, three allergens spread over
// four recipes.
func fixtureRecipes() []*Recipe {
	vegan := MenuType{ID: 1, Title: "vegan"}
	keto := MenuType{ID: 2, Title: "keto"}

	nuts := FoodTag{ID: 1, Name: "nuts"}
	milk := FoodTag{ID: 2, Name: "milk"}
	fish := FoodTag{ID: 3, Name: "fish"}

	return []*Recipe{
		{
			ID: 1, Title: "Nut porridge", MealType: MealBreakfast,
			MenuTypes: []MenuType{vegan},
			Ingredients: []RecipeIngredient{
				{Ingredient: Ingredient{ID: 1, Allergens: []FoodTag{nuts}}, Mass: 50},
			},
		},
		{
			ID: 2, Title: "Green salad", MealType: MealLunch,
			MenuTypes: []MenuType{vegan, keto},
			Ingredients: []RecipeIngredient{
				{Ingredient: Ingredient{ID: 2}, Mass: 200},
			},
		},
		{
			ID: 3, Title: "Baked salmon", MealType: MealDinner,
			MenuTypes: []MenuType{keto},
			Ingredients: []RecipeIngredient{
				{Ingredient: Ingredient{ID: 3, Allergens: []FoodTag{fish}}, Mass: 180},
			},
		},
		{
			ID: 4, Title: "Cheesecake", MealType: MealDessert,
			MenuTypes: []MenuType{keto},
			Ingredients: []RecipeIngredient{
				{Ingredient: Ingredient{ID: 4, Allergens: []FoodTag{milk}}, Mass: 120},
				{Ingredient: Ingredient{ID: 5, Allergens: []FoodTag{nuts}}, Mass: 30},
			},
		},
	}
}

func TestIsSafeForMatchesAllergenIntersection(t *testing.T) {
	for _, r := range fixtureRecipes() {
		for _, allergy := range []int{1, 2, 3} {
			unsafe := r.ContainsAllergen(allergy)
			if r.IsSafeFor([]int{allergy}) == unsafe {
				t.Errorf("recipe %q, allergy %d: IsSafeFor must be the negation of ContainsAllergen", r.Title, allergy)
			}
		}
	}
}

func TestIsSafeForEmptyAllergySet(t *testing.T) {
	for _, r := range fixtureRecipes() {
		if !r.IsSafeFor(nil) {
			t.Errorf("recipe %q must be safe for an empty allergy set", r.Title)
		}
	}
}

func TestSafeRecipesNoRestrictions(t *testing.T) {
	recipes := fixtureRecipes()

	safe := SafeRecipes(recipes, nil, nil)
	if len(safe) != len(recipes) {
		t.Fatalf("expected full catalog (%d), got %d", len(recipes), len(safe))
	}
}

func TestSafeRecipesMenuTypeFilter(t *testing.T) {
	// vegan only: recipes 1 and 2
	safe := SafeRecipes(fixtureRecipes(), []int{1}, nil)
	if len(safe) != 2 {
		t.Fatalf("expected 2 vegan recipes, got %d", len(safe))
	}
	if safe[0].ID != 1 || safe[1].ID != 2 {
		t.Errorf("expected recipes [1 2], got [%d %d]", safe[0].ID, safe[1].ID)
	}
}

func TestSafeRecipesAllergenExclusion(t *testing.T) {
	// nut allergy removes 1 and 4
	safe := SafeRecipes(fixtureRecipes(), nil, []int{1})
	if len(safe) != 2 {
		t.Fatalf("expected 2 safe recipes, got %d", len(safe))
	}
	for _, r := range safe {
		if r.ContainsAllergen(1) {
			t.Errorf("recipe %q contains the excluded allergen", r.Title)
		}
	}
}

func TestSafeRecipesMonotonicNarrowing(t *testing.T) {
	recipes := fixtureRecipes()

	base := SafeRecipes(recipes, nil, nil)
	withAllergy := SafeRecipes(recipes, nil, []int{1})
	withBoth := SafeRecipes(recipes, []int{2}, []int{1})

	if len(withAllergy) > len(base) {
		t.Errorf("adding an allergy grew the safe set: %d > %d", len(withAllergy), len(base))
	}
	if len(withBoth) > len(withAllergy) {
		t.Errorf("adding a menu-type restriction grew the safe set: %d > %d", len(withBoth), len(withAllergy))
	}
}

func TestSafeRecipesDeduplicates(t *testing.T) {
	recipes := fixtureRecipes()
	doubled := append(recipes, recipes...)

	safe := SafeRecipes(doubled, nil, nil)
	seen := make(map[int]int)
	for _, r := range safe {
		seen[r.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("recipe %d appears %d times", id, n)
		}
	}
}
