package subscription

import (
	"context"
	"testing"
	"time"

	"foodplan/internal/catalog"
	"foodplan/internal/core"
)

// --------------------------------------------------
// Stubs
// --------------------------------------------------

type stubProfiles struct {
	tastes    map[string]*core.Tastes
	allergies map[string][]int
}

func newStubProfiles() *stubProfiles {
	return &stubProfiles{
		tastes:    make(map[string]*core.Tastes),
		allergies: make(map[string][]int),
	}
}

func (s *stubProfiles) Tastes(ctx context.Context, userID string) (*core.Tastes, error) {
	if t, ok := s.tastes[userID]; ok {
		return t, nil
	}
	t := &core.Tastes{PageID: len(s.tastes) + 1}
	s.tastes[userID] = t
	return t, nil
}

func (s *stubProfiles) SetAllergies(ctx context.Context, userID string, tagIDs []int) error {
	s.allergies[userID] = tagIDs
	return nil
}

type stubRecipes struct {
	recipes []*catalog.Recipe
}

func (s *stubRecipes) Recipes(ctx context.Context, filter catalog.RecipeFilter) ([]*catalog.Recipe, error) {
	return s.recipes, nil
}

func newTestService(promos PromoRepository) (*Service, *InMemoryRepository, *stubProfiles) {
	repo := NewInMemoryRepository()
	profiles := newStubProfiles()
	service := NewService(repo, promos, profiles, &stubRecipes{})
	return service, repo, profiles
}

func daysFromNow(days int) *time.Time {
	t := time.Now().AddDate(0, 0, days)
	return &t
}

// --------------------------------------------------
// ApplyPromo
// --------------------------------------------------

func TestApplyPromoBlankCode(t *testing.T) {
	service, _, _ := newTestService(NewInMemoryPromoRepository())

	final, promo, applied := service.ApplyPromo(context.Background(), 1000, "   ")
	if final != 1000 || promo != nil || applied {
		t.Errorf("blank code must apply nothing, got (%d, %v, %v)", final, promo, applied)
	}
}

func TestApplyPromoActiveUnboundedCode(t *testing.T) {
	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "SAVE20", DiscountPercent: 20, IsActive: true,
	})
	service, _, _ := newTestService(promos)

	final, promo, applied := service.ApplyPromo(context.Background(), 1000, "SAVE20")
	if !applied || promo == nil {
		t.Fatalf("expected the promo to apply")
	}
	if final != 800 {
		t.Errorf("expected 800, got %d", final)
	}
}

func TestApplyPromoIsCaseInsensitive(t *testing.T) {
	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "SAVE20", DiscountPercent: 20, IsActive: true,
	})
	service, _, _ := newTestService(promos)

	final, _, applied := service.ApplyPromo(context.Background(), 1000, "save20")
	if !applied || final != 800 {
		t.Errorf("lookup must be case-insensitive, got (%d, %v)", final, applied)
	}
}

func TestApplyPromoExpiredCode(t *testing.T) {
	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "EXPIRED10", DiscountPercent: 10, IsActive: true,
		ValidTo: daysFromNow(-1),
	})
	service, _, _ := newTestService(promos)

	final, promo, applied := service.ApplyPromo(context.Background(), 1000, "EXPIRED10")
	if applied || promo != nil || final != 1000 {
		t.Errorf("expired code must not apply, got (%d, %v, %v)", final, promo, applied)
	}
}

func TestApplyPromoCodeExpiringToday(t *testing.T) {
	// A window ending today covers the whole day, even when the bound
	// is stored at midnight (date-only input, DATE column scan).
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "LASTDAY", DiscountPercent: 10, IsActive: true,
		ValidTo: &midnight,
	})
	service, _, _ := newTestService(promos)

	final, _, applied := service.ApplyPromo(context.Background(), 1000, "LASTDAY")
	if !applied || final != 900 {
		t.Errorf("code expiring today must still apply, got (%d, %v)", final, applied)
	}
}

func TestApplyPromoCodeStartingToday(t *testing.T) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "FIRSTDAY", DiscountPercent: 10, IsActive: true,
		ValidFrom: &midnight,
	})
	service, _, _ := newTestService(promos)

	if _, _, applied := service.ApplyPromo(context.Background(), 1000, "FIRSTDAY"); !applied {
		t.Errorf("code starting today must apply")
	}
}

func TestApplyPromoFutureCode(t *testing.T) {
	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "SOON", DiscountPercent: 30, IsActive: true,
		ValidFrom: daysFromNow(7),
	})
	service, _, _ := newTestService(promos)

	if _, _, applied := service.ApplyPromo(context.Background(), 1000, "SOON"); applied {
		t.Errorf("future-dated code must not apply")
	}
}

func TestApplyPromoInactiveCode(t *testing.T) {
	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "OLD", DiscountPercent: 50, IsActive: false,
	})
	service, _, _ := newTestService(promos)

	if _, _, applied := service.ApplyPromo(context.Background(), 1000, "OLD"); applied {
		t.Errorf("inactive code must not apply")
	}
}

func TestApplyPromoDisabledCapability(t *testing.T) {
	// nil promo repository = promo support off
	service, _, _ := newTestService(nil)

	final, promo, applied := service.ApplyPromo(context.Background(), 1000, "SAVE20")
	if applied || promo != nil || final != 1000 {
		t.Errorf("disabled promos must apply nothing, got (%d, %v, %v)", final, promo, applied)
	}
}

func TestApplyPromoIsIdempotent(t *testing.T) {
	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "SAVE20", DiscountPercent: 20, IsActive: true,
	})
	service, _, _ := newTestService(promos)

	first, _, _ := service.ApplyPromo(context.Background(), 1000, "SAVE20")
	second, _, _ := service.ApplyPromo(context.Background(), 1000, "SAVE20")
	if first != second {
		t.Errorf("repeated application diverged: %d != %d", first, second)
	}
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

func validCheckout() CheckoutRequest {
	return CheckoutRequest{
		Months:      3,
		Persons:     2,
		Breakfast:   true,
		Lunch:       true,
		MenuTypeIDs: []int{1},
	}
}

func TestCheckoutRequiresMenuType(t *testing.T) {
	service, repo, _ := newTestService(nil)

	req := validCheckout()
	req.MenuTypeIDs = nil

	if _, err := service.Checkout(context.Background(), "acc-1", req); err != ErrNoMenuType {
		t.Fatalf("expected ErrNoMenuType, got %v", err)
	}
	if repo.Count() != 0 {
		t.Errorf("validation failure must not write a subscription")
	}
}

func TestCheckoutValidatesBounds(t *testing.T) {
	service, _, _ := newTestService(nil)

	req := validCheckout()
	req.Months = 13
	if _, err := service.Checkout(context.Background(), "acc-1", req); err != ErrInvalidMonths {
		t.Errorf("expected ErrInvalidMonths, got %v", err)
	}

	req = validCheckout()
	req.Persons = 0
	if _, err := service.Checkout(context.Background(), "acc-1", req); err != ErrInvalidPersons {
		t.Errorf("expected ErrInvalidPersons, got %v", err)
	}
}

func TestCheckoutComputesPrice(t *testing.T) {
	service, _, _ := newTestService(nil)

	sub, err := service.Checkout(context.Background(), "acc-1", validCheckout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (200 + 600) * 2
	if sub.Price != 1600 {
		t.Errorf("expected price 1600, got %d", sub.Price)
	}
	if sub.PromoCodeID != nil {
		t.Errorf("no promo was given, PromoCodeID must be nil")
	}
}

func TestCheckoutAppliesPromo(t *testing.T) {
	promos := NewInMemoryPromoRepository()
	promos.Create(context.Background(), &PromoCode{
		Code: "SAVE20", DiscountPercent: 20, IsActive: true,
	})
	service, _, _ := newTestService(promos)

	req := validCheckout()
	req.PromoCode = "SAVE20"

	sub, err := service.Checkout(context.Background(), "acc-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Price != 1280 {
		t.Errorf("expected discounted price 1280, got %d", sub.Price)
	}
	if sub.PromoCodeID == nil {
		t.Errorf("applied promo must be referenced on the subscription")
	}
}

func TestCheckoutReplacesPriorSubscription(t *testing.T) {
	service, repo, _ := newTestService(nil)

	first, err := service.Checkout(context.Background(), "acc-1", validCheckout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := validCheckout()
	req.Months = 6
	second, err := service.Checkout(context.Background(), "acc-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.Count() != 1 {
		t.Fatalf("expected exactly one subscription after replace, got %d", repo.Count())
	}
	if second.ID == first.ID {
		t.Errorf("replacement must be a new subscription, not an update")
	}
	if !repo.PageSubscribed(second.UserPageID) {
		t.Errorf("page must be flagged subscribed after checkout")
	}

	active, err := repo.ActiveForPage(context.Background(), second.UserPageID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active.Months != 6 {
		t.Errorf("active subscription is not the replacement")
	}
}

func TestCheckoutStoresChosenAllergies(t *testing.T) {
	service, _, profiles := newTestService(nil)

	req := validCheckout()
	req.AllergyIDs = []int{2, 5}

	if _, err := service.Checkout(context.Background(), "acc-1", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := profiles.allergies["acc-1"]; len(got) != 2 {
		t.Errorf("expected allergies recorded on the profile, got %v", got)
	}
}

// --------------------------------------------------
// Eligible recipes
// --------------------------------------------------

func TestEligibleFiltersByMenuTypeAndMeal(t *testing.T) {
	vegan := catalog.MenuType{ID: 1, Title: "vegan"}
	keto := catalog.MenuType{ID: 2, Title: "keto"}

	recipes := []*catalog.Recipe{
		{ID: 1, Title: "Oatmeal", MealType: catalog.MealBreakfast, MenuTypes: []catalog.MenuType{vegan}},
		{ID: 2, Title: "Steak", MealType: catalog.MealDinner, MenuTypes: []catalog.MenuType{keto}},
		{ID: 3, Title: "Vegan soup", MealType: catalog.MealLunch, MenuTypes: []catalog.MenuType{vegan}},
	}

	repo := NewInMemoryRepository()
	profiles := newStubProfiles()
	service := NewService(repo, nil, profiles, &stubRecipes{recipes: recipes})

	req := validCheckout() // breakfast + lunch, menu type 1
	if _, err := service.Checkout(context.Background(), "acc-1", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eligible, err := service.Eligible(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eligible.Recipes) != 2 {
		t.Fatalf("expected 2 eligible recipes, got %d", len(eligible.Recipes))
	}
	for _, r := range eligible.Recipes {
		if !r.HasMenuType(1) {
			t.Errorf("recipe %q is outside the subscribed menu type", r.Title)
		}
	}
	if got := len(eligible.ByMenuType[1]); got != 2 {
		t.Errorf("expected grouping under menu type 1, got %d entries", got)
	}
}
