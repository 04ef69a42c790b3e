package catalog

import "fmt"

// MealType is one of the four daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealDessert   MealType = "dessert"
)

// MealTypes lists all slots in day order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealDessert}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealDessert:
		return true
	}
	return false
}

// FoodTag is a named allergen. Ingredients declare which tags they
// contain, users declare which tags they must avoid.
type FoodTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PriceRange is a named price band shown on the order form.
// Either bound may be open.
type PriceRange struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// Label returns the display name, deriving one from the bounds
// when none was set by the catalog maintainer.
func (p *PriceRange) Label() string {
	if p.Name != "" {
		return p.Name
	}
	switch {
	case p.MinPrice != nil && p.MaxPrice != nil:
		return fmt.Sprintf("From %d to %d RUB", int(*p.MinPrice), int(*p.MaxPrice))
	case p.MinPrice != nil:
		return fmt.Sprintf("From %d RUB", int(*p.MinPrice))
	case p.MaxPrice != nil:
		return fmt.Sprintf("Up to %d RUB", int(*p.MaxPrice))
	}
	return ""
}

// Ingredient is immutable reference data. Price is RUB per 100 g,
// Caloricity is kcal per 100 g.
type Ingredient struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Caloricity float64   `json:"caloricity"`
	Allergens  []FoodTag `json:"allergens,omitempty"`
}

// MenuType is a named dietary category (vegan, keto, ...) that recipes,
// subscriptions, user profiles and daily menus reference.
type MenuType struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// RecipeIngredient is one composition entry: an ingredient and its
// mass in grams.
type RecipeIngredient struct {
	Ingredient Ingredient `json:"ingredient"`
	Mass       float64    `json:"mass"`
}

// Recipe with its full composition and menu-type memberships loaded.
// Price, mass, calories and allergens are derived, never stored.
type Recipe struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	Image       string             `json:"image,omitempty"`
	Description string             `json:"description,omitempty"`
	Sequence    string             `json:"sequence,omitempty"`
	MealType    MealType           `json:"meal_type"`
	Premium     bool               `json:"premium"`
	OnIndex     bool               `json:"on_index"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty"`
	MenuTypes   []MenuType         `json:"menu_types,omitempty"`
}

// HasMenuType reports whether the recipe belongs to the given menu type.
func (r *Recipe) HasMenuType(menuTypeID int) bool {
	for _, mt := range r.MenuTypes {
		if mt.ID == menuTypeID {
			return true
		}
	}
	return false
}

// HasAnyMenuType reports whether the recipe belongs to at least one of
// the given menu types. An empty filter matches nothing.
func (r *Recipe) HasAnyMenuType(menuTypeIDs []int) bool {
	for _, id := range menuTypeIDs {
		if r.HasMenuType(id) {
			return true
		}
	}
	return false
}
