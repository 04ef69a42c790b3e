package subscription

import "testing"

func TestBasePriceTable(t *testing.T) {
	cases := []struct {
		name                               string
		months, persons                    int
		breakfast, lunch, dinner, dessert  bool
		want                               int
	}{
		{"one month breakfast only", 1, 1, true, false, false, false, 100},
		{"three months two persons", 3, 2, true, true, false, false, 1600},
		{"six months full board", 6, 1, true, true, true, true, 2100},
		{"twelve months dinner+dessert", 12, 3, false, false, true, true, 3600},
		{"no meals selected", 6, 4, false, false, false, false, 0},
	}

	for _, tc := range cases {
		got := BasePrice(tc.months, tc.persons, tc.breakfast, tc.lunch, tc.dinner, tc.dessert)
		if got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestBasePriceUnknownDurationFallsBackToOneMonth(t *testing.T) {
	if got := BasePrice(99, 1, true, false, false, false); got != 100 {
		t.Errorf("expected 1-month tier fallback (100), got %d", got)
	}
	if got := BasePrice(2, 2, false, true, false, false); got != 600 {
		t.Errorf("expected 1-month tier fallback (600), got %d", got)
	}
}

func TestApplyDiscount(t *testing.T) {
	if got := ApplyDiscount(1000, 20); got != 800 {
		t.Errorf("expected 800, got %d", got)
	}
	if got := ApplyDiscount(1000, 0); got != 1000 {
		t.Errorf("expected 1000, got %d", got)
	}
	if got := ApplyDiscount(1000, 100); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestApplyDiscountClampsPercent(t *testing.T) {
	if got := ApplyDiscount(1000, -10); got != 1000 {
		t.Errorf("negative discount must clamp to 0, got %d", got)
	}
	if got := ApplyDiscount(1000, 150); got != 0 {
		t.Errorf("discount over 100 must clamp to 100, got %d", got)
	}
}

func TestApplyDiscountRoundsHalfAwayFromZero(t *testing.T) {
	// 150 * 85% = 127.5 -> 128
	if got := ApplyDiscount(150, 15); got != 128 {
		t.Errorf("expected 128, got %d", got)
	}
}
