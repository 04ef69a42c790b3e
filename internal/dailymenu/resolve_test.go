package dailymenu

import (
	"testing"

	"foodplan/internal/catalog"
)

func recipeWith(id int, meal catalog.MealType, menuTypeID int, allergenIDs ...int) *catalog.Recipe {
	var ings []catalog.RecipeIngredient
	for _, aID := range allergenIDs {
		ings = append(ings, catalog.RecipeIngredient{
			Ingredient: catalog.Ingredient{
				ID:        aID * 100,
				Allergens: []catalog.FoodTag{{ID: aID}},
			},
			Mass: 100,
		})
	}
	return &catalog.Recipe{
		ID:          id,
		MealType:    meal,
		Ingredients: ings,
		MenuTypes:   []catalog.MenuType{{ID: menuTypeID}},
	}
}

func TestResolveKeepsSafeSlots(t *testing.T) {
	breakfast := recipeWith(1, catalog.MealBreakfast, 1)
	lunch := recipeWith(2, catalog.MealLunch, 1)
	menu := &DailyMenu{Day: Monday, Breakfast: breakfast, Lunch: lunch}

	resolved := Resolve(menu, nil, []int{1}, []int{5})

	if resolved[catalog.MealBreakfast] != breakfast {
		t.Errorf("breakfast replaced although safe")
	}
	if resolved[catalog.MealLunch] != lunch {
		t.Errorf("lunch replaced although safe")
	}
	if resolved[catalog.MealDinner] != nil {
		t.Errorf("empty dinner slot resolved to %v", resolved[catalog.MealDinner])
	}
}

func TestResolveSubstitutesUnsafeSlot(t *testing.T) {
	unsafe := recipeWith(1, catalog.MealLunch, 1, 7)
	menu := &DailyMenu{Day: Monday, Lunch: unsafe}

	candidates := []*catalog.Recipe{
		recipeWith(2, catalog.MealDinner, 1), // wrong meal type
		recipeWith(3, catalog.MealLunch, 9),  // wrong menu type
		recipeWith(4, catalog.MealLunch, 1),  // first acceptable
		recipeWith(5, catalog.MealLunch, 1),
	}

	resolved := Resolve(menu, candidates, []int{1}, []int{7})

	got := resolved[catalog.MealLunch]
	if got == nil || got.ID != 4 {
		t.Fatalf("expected substitute ID 4, got %v", got)
	}
}

func TestResolveNoSubstituteLeavesSlotEmpty(t *testing.T) {
	unsafe := recipeWith(1, catalog.MealDessert, 2, 3)
	menu := &DailyMenu{Day: Friday, Dessert: unsafe}

	candidates := []*catalog.Recipe{
		recipeWith(2, catalog.MealBreakfast, 2),
		recipeWith(3, catalog.MealDessert, 9),
	}

	resolved := Resolve(menu, candidates, []int{2}, []int{3})

	if resolved[catalog.MealDessert] != nil {
		t.Errorf("slot should be empty without a matching substitute, got %v",
			resolved[catalog.MealDessert])
	}
}

func TestResolveDoesNotMutateMenu(t *testing.T) {
	unsafe := recipeWith(1, catalog.MealBreakfast, 1, 4)
	menu := &DailyMenu{Day: Tuesday, Breakfast: unsafe}

	candidates := []*catalog.Recipe{recipeWith(2, catalog.MealBreakfast, 1)}
	resolved := Resolve(menu, candidates, []int{1}, []int{4})

	if resolved[catalog.MealBreakfast].ID != 2 {
		t.Fatalf("expected substitution, got %v", resolved[catalog.MealBreakfast])
	}
	if menu.Breakfast != unsafe {
		t.Errorf("stored menu mutated by resolution")
	}
}

func TestResolveIsIdempotentOnSafeMenu(t *testing.T) {
	breakfast := recipeWith(1, catalog.MealBreakfast, 1)
	menu := &DailyMenu{Day: Sunday, Breakfast: breakfast}

	first := Resolve(menu, nil, []int{1}, nil)
	second := Resolve(menu, nil, []int{1}, nil)

	if first[catalog.MealBreakfast] != second[catalog.MealBreakfast] {
		t.Errorf("resolution not stable across calls on a safe menu")
	}
}
