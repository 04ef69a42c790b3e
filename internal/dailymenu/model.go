package dailymenu

import "foodplan/internal/catalog"

// Weekday labels as the catalog stores them.
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wen"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// DailyMenu is a prebuilt plan for one weekday: up to one recipe per
// meal slot. Slots may be empty. Substitution never mutates it; unsafe
// slots are repaired per request, on read.
type DailyMenu struct {
	ID          int     `json:"id"`
	Day         Weekday `json:"day"`
	MenuTypeIDs []int   `json:"menu_type_ids"`

	Breakfast *catalog.Recipe `json:"breakfast,omitempty"`
	Lunch     *catalog.Recipe `json:"lunch,omitempty"`
	Dinner    *catalog.Recipe `json:"dinner,omitempty"`
	Dessert   *catalog.Recipe `json:"dessert,omitempty"`

	// Pages this menu is shown to.
	UserPageIDs []int `json:"user_page_ids,omitempty"`
}

// Slots returns the menu's recipes keyed by meal slot.
func (m *DailyMenu) Slots() map[catalog.MealType]*catalog.Recipe {
	return map[catalog.MealType]*catalog.Recipe{
		catalog.MealBreakfast: m.Breakfast,
		catalog.MealLunch:     m.Lunch,
		catalog.MealDinner:    m.Dinner,
		catalog.MealDessert:   m.Dessert,
	}
}
