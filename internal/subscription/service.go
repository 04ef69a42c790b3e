package subscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"foodplan/internal/catalog"
	"foodplan/internal/core"
)

var (
	ErrNoMenuType     = errors.New("select at least one menu type")
	ErrInvalidMonths  = errors.New("months must be between 1 and 12")
	ErrInvalidPersons = errors.New("persons must be between 1 and 5")
)

// ProfileDirectory is the slice of the profile domain checkout needs.
type ProfileDirectory interface {
	Tastes(ctx context.Context, userID string) (*core.Tastes, error)
	SetAllergies(ctx context.Context, userID string, tagIDs []int) error
}

// RecipeSource provides loaded recipes for eligibility listings.
type RecipeSource interface {
	Recipes(ctx context.Context, filter catalog.RecipeFilter) ([]*catalog.Recipe, error)
}

type Service struct {
	repo     Repository
	promos   PromoRepository // nil = promo codes disabled
	profiles ProfileDirectory
	recipes  RecipeSource
}

func NewService(
	repo Repository,
	promos PromoRepository,
	profiles ProfileDirectory,
	recipes RecipeSource,
) *Service {
	return &Service{
		repo:     repo,
		promos:   promos,
		profiles: profiles,
		recipes:  recipes,
	}
}

// --------------------------------------------------
// Promo application
// --------------------------------------------------

// ApplyPromo applies rawCode to base and returns the final price, the
// matched promo and whether a discount was applied. Every failure mode
// (blank code, unknown code, inactive code, out-of-window code,
// disabled promo support) degrades to "no discount", never an error.
// The promo record is not mutated.
func (s *Service) ApplyPromo(ctx context.Context, base int, rawCode string) (int, *PromoCode, bool) {
	code := strings.TrimSpace(rawCode)
	if code == "" || s.promos == nil {
		return base, nil, false
	}

	promo, err := s.promos.FindActiveByCode(ctx, code)
	if err != nil || promo == nil {
		return base, nil, false
	}

	if !promo.ValidOn(time.Now()) {
		return base, nil, false
	}

	return ApplyDiscount(base, promo.DiscountPercent), promo, true
}

// --------------------------------------------------
// Quote (no persistence)
// --------------------------------------------------

type QuoteRequest struct {
	Months    int
	Persons   int
	Breakfast bool
	Lunch     bool
	Dinner    bool
	Dessert   bool
	PromoCode string
}

type Quote struct {
	BasePrice  int  `json:"base_price"`
	FinalPrice int  `json:"final_price"`
	Discount   int  `json:"discount"`
	Applied    bool `json:"applied"`
}

func (s *Service) Quote(ctx context.Context, req QuoteRequest) *Quote {
	base := BasePrice(req.Months, req.Persons,
		req.Breakfast, req.Lunch, req.Dinner, req.Dessert)

	final, promo, applied := s.ApplyPromo(ctx, base, req.PromoCode)

	quote := &Quote{BasePrice: base, FinalPrice: final, Applied: applied}
	if applied {
		quote.Discount = promo.DiscountPercent
	}
	return quote
}

// --------------------------------------------------
// Checkout (atomic replace)
// --------------------------------------------------

type CheckoutRequest struct {
	Months      int
	Persons     int
	Breakfast   bool
	Lunch       bool
	Dinner      bool
	Dessert     bool
	MenuTypeIDs []int
	AllergyIDs  []int
	PromoCode   string
}

// Checkout validates the request, records the chosen allergies on the
// profile, prices the plan and replaces any prior subscription. The
// replace itself is a single transaction in the repository; validation
// failures happen before any write.
func (s *Service) Checkout(ctx context.Context, userID string, req CheckoutRequest) (*Subscription, error) {
	if req.Months < 1 || req.Months > 12 {
		return nil, ErrInvalidMonths
	}
	if req.Persons < 1 || req.Persons > 5 {
		return nil, ErrInvalidPersons
	}
	if len(req.MenuTypeIDs) == 0 {
		return nil, ErrNoMenuType
	}

	tastes, err := s.profiles.Tastes(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.SetAllergies(ctx, userID, req.AllergyIDs); err != nil {
		return nil, err
	}

	base := BasePrice(req.Months, req.Persons,
		req.Breakfast, req.Lunch, req.Dinner, req.Dessert)
	final, promo, applied := s.ApplyPromo(ctx, base, req.PromoCode)

	sub := &Subscription{
		UserPageID:  tastes.PageID,
		Months:      req.Months,
		Persons:     req.Persons,
		Breakfast:   req.Breakfast,
		Lunch:       req.Lunch,
		Dinner:      req.Dinner,
		Dessert:     req.Dessert,
		MenuTypeIDs: req.MenuTypeIDs,
		Price:       final,
	}
	if applied {
		sub.PromoCodeID = &promo.ID
	}

	if err := s.repo.Replace(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Active returns the caller's current subscription.
func (s *Service) Active(ctx context.Context, userID string) (*Subscription, error) {
	tastes, err := s.profiles.Tastes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ActiveForPage(ctx, tastes.PageID)
}

// --------------------------------------------------
// Eligible recipes for the active subscription
// --------------------------------------------------

type EligibleRecipes struct {
	Subscription *Subscription
	Recipes      []*catalog.Recipe
	// Keyed by the subscription's menu type IDs.
	ByMenuType map[int][]*catalog.Recipe
}

// Eligible lists the recipes the subscription actually delivers: the
// user's safe set, narrowed to the subscription's menu types and its
// included meal categories, grouped by menu type.
func (s *Service) Eligible(ctx context.Context, userID string) (*EligibleRecipes, error) {
	tastes, err := s.profiles.Tastes(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.ActiveForPage(ctx, tastes.PageID)
	if err != nil {
		return nil, err
	}

	all, err := s.recipes.Recipes(ctx, catalog.RecipeFilter{})
	if err != nil {
		return nil, err
	}
	safe := catalog.SafeRecipes(all, tastes.MenuTypeIDs, tastes.AllergyIDs)

	meals := make(map[catalog.MealType]bool)
	for _, m := range sub.MealTypes() {
		meals[catalog.MealType(m)] = true
	}

	var eligible []*catalog.Recipe
	for _, r := range safe {
		if len(sub.MenuTypeIDs) > 0 && !r.HasAnyMenuType(sub.MenuTypeIDs) {
			continue
		}
		if len(meals) > 0 && !meals[r.MealType] {
			continue
		}
		eligible = append(eligible, r)
	}

	byMenuType := make(map[int][]*catalog.Recipe)
	for _, mtID := range sub.MenuTypeIDs {
		for _, r := range eligible {
			if r.HasMenuType(mtID) {
				byMenuType[mtID] = append(byMenuType[mtID], r)
			}
		}
	}

	return &EligibleRecipes{
		Subscription: sub,
		Recipes:      eligible,
		ByMenuType:   byMenuType,
	}, nil
}

// --------------------------------------------------
// Admin: promo maintenance
// --------------------------------------------------

func (s *Service) AddPromoCode(ctx context.Context, promo *PromoCode) error {
	if s.promos == nil {
		return errors.New("promo codes are disabled")
	}
	if promo.Code == "" {
		return errors.New("missing promo code")
	}
	if promo.DiscountPercent < 0 || promo.DiscountPercent > 100 {
		return errors.New("discount must be between 0 and 100")
	}
	return s.promos.Create(ctx, promo)
}
