package dailymenu

import (
	"context"

	"foodplan/internal/catalog"
	"foodplan/internal/core"
)

// RecipeSource provides the loaded catalog for substitution candidates.
type RecipeSource interface {
	Recipes(ctx context.Context, filter catalog.RecipeFilter) ([]*catalog.Recipe, error)
}

type Service struct {
	repo     Repository
	profiles core.ProfileReader
	recipes  RecipeSource
}

func NewService(repo Repository, profiles core.ProfileReader, recipes RecipeSource) *Service {
	return &Service{repo: repo, profiles: profiles, recipes: recipes}
}

// ResolveForUser materializes a concrete, allergy-safe menu for the
// user: fetch the weekday's prebuilt menu, compute the user's safe
// recipe set, and repair unsafe slots. The result is a per-request
// projection; nothing is written back.
func (s *Service) ResolveForUser(
	ctx context.Context,
	day Weekday,
	userID string,
) (*DailyMenu, map[catalog.MealType]*catalog.Recipe, error) {

	menu, err := s.repo.GetByDay(ctx, day)
	if err != nil {
		return nil, nil, err
	}

	tastes, err := s.profiles.Tastes(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	all, err := s.recipes.Recipes(ctx, catalog.RecipeFilter{})
	if err != nil {
		return nil, nil, err
	}
	safe := catalog.SafeRecipes(all, tastes.MenuTypeIDs, tastes.AllergyIDs)

	resolved := Resolve(menu, safe, tastes.MenuTypeIDs, tastes.AllergyIDs)
	return menu, resolved, nil
}

// AddMenu is a maintainer write.
func (s *Service) AddMenu(ctx context.Context, menu *DailyMenu) error {
	if !menu.Day.Valid() {
		return ErrInvalidWeekday
	}
	return s.repo.Create(ctx, menu)
}
