package subscription

import "time"

// PromoCode is a discount token. Either validity bound may be open.
type PromoCode struct {
	ID              int        `json:"id"`
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	IsActive        bool       `json:"is_active"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidTo         *time.Time `json:"valid_to,omitempty"`
}

// ValidOn reports whether the code's validity window covers the given
// day. The window is inclusive at calendar-date granularity: a code
// whose ValidTo falls on today is good for the whole day, regardless
// of the stored time-of-day. Open bounds are unbounded; the active
// flag is checked by the lookup, not here.
func (p *PromoCode) ValidOn(day time.Time) bool {
	d := dateOf(day)
	if p.ValidFrom != nil && d.Before(dateOf(*p.ValidFrom)) {
		return false
	}
	if p.ValidTo != nil && d.After(dateOf(*p.ValidTo)) {
		return false
	}
	return true
}

// dateOf drops the time-of-day, keeping only the calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Subscription is the active plan of one user page. A page holds at
// most one: creating a new subscription replaces the prior one.
type Subscription struct {
	ID          int   `json:"id"`
	UserPageID  int   `json:"user_page_id"`
	Months      int   `json:"months"`
	Persons     int   `json:"persons"`
	Breakfast   bool  `json:"breakfast"`
	Lunch       bool  `json:"lunch"`
	Dinner      bool  `json:"dinner"`
	Dessert     bool  `json:"dessert"`
	MenuTypeIDs []int `json:"menu_type_ids"`
	Price       int   `json:"price"`

	// Fixed FK-style reference; nil when no promo was applied.
	PromoCodeID *int `json:"promo_code_id,omitempty"`
}

// MealTypes lists the meal categories included in the plan, in day
// order, as catalog meal-type strings.
func (s *Subscription) MealTypes() []string {
	var meals []string
	if s.Breakfast {
		meals = append(meals, "breakfast")
	}
	if s.Lunch {
		meals = append(meals, "lunch")
	}
	if s.Dinner {
		meals = append(meals, "dinner")
	}
	if s.Dessert {
		meals = append(meals, "dessert")
	}
	return meals
}
