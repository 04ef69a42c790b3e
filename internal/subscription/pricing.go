package subscription

import "math"

// Per-meal monthly unit prices (RUB), keyed by plan duration.
// Intentionally a flat table, not a formula.
var mealPrices = map[int]struct {
	breakfast, lunch, dinner, dessert int
}{
	1:  {100, 300, 200, 100},
	3:  {200, 600, 400, 200},
	6:  {300, 900, 600, 300},
	12: {400, 1200, 800, 400},
}

// BasePrice sums the unit prices of the selected meals and multiplies
// by persons. An unrecognized duration silently falls back to the
// 1-month tier; bound validation is the caller's concern.
func BasePrice(months, persons int, breakfast, lunch, dinner, dessert bool) int {
	tier, ok := mealPrices[months]
	if !ok {
		tier = mealPrices[1]
	}

	total := 0
	if breakfast {
		total += tier.breakfast
	}
	if lunch {
		total += tier.lunch
	}
	if dinner {
		total += tier.dinner
	}
	if dessert {
		total += tier.dessert
	}

	return total * persons
}

// ApplyDiscount returns base reduced by discountPercent, clamped to
// [0,100]. Rounding is half away from zero (math.Round), deterministic
// and documented, since the result is a price.
func ApplyDiscount(base, discountPercent int) int {
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	return int(math.Round(float64(base) * float64(100-discountPercent) / 100))
}
