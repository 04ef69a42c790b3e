package catalog

import (
	"context"
	"errors"

	"foodplan/internal/core"
)

type Service struct {
	repo     Repository
	profiles core.ProfileReader
}

func NewService(repo Repository, profiles core.ProfileReader) *Service {
	return &Service{repo: repo, profiles: profiles}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (s *Service) Recipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error) {
	return s.repo.ListRecipes(ctx, filter)
}

func (s *Service) Recipe(ctx context.Context, id int) (*Recipe, error) {
	return s.repo.GetRecipe(ctx, id)
}

// FeaturedRecipes lists recipes flagged for the landing page.
func (s *Service) FeaturedRecipes(ctx context.Context) ([]*Recipe, error) {
	return s.repo.ListRecipes(ctx, RecipeFilter{OnIndex: true})
}

// SafeRecipesFor resolves the user's tastes and narrows the catalog to
// recipes safe for them (menu-type restriction first, then allergen
// exclusion).
func (s *Service) SafeRecipesFor(ctx context.Context, userID string) ([]*Recipe, error) {
	tastes, err := s.profiles.Tastes(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.repo.ListRecipes(ctx, RecipeFilter{})
	if err != nil {
		return nil, err
	}
	return SafeRecipes(recipes, tastes.MenuTypeIDs, tastes.AllergyIDs), nil
}

func (s *Service) MenuTypes(ctx context.Context) ([]MenuType, error) {
	return s.repo.ListMenuTypes(ctx)
}

func (s *Service) FoodTags(ctx context.Context) ([]FoodTag, error) {
	return s.repo.ListFoodTags(ctx)
}

func (s *Service) PriceRanges(ctx context.Context) ([]PriceRange, error) {
	return s.repo.ListPriceRanges(ctx)
}

// --------------------------------------------------
// Maintainer writes
// --------------------------------------------------

func (s *Service) AddFoodTag(ctx context.Context, name string) (*FoodTag, error) {
	if name == "" {
		return nil, errors.New("missing required fields")
	}
	tag := &FoodTag{Name: name}
	if err := s.repo.CreateFoodTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *Service) AddMenuType(ctx context.Context, title, image string) (*MenuType, error) {
	if title == "" {
		return nil, errors.New("missing required fields")
	}
	mt := &MenuType{Title: title, Image: image}
	if err := s.repo.CreateMenuType(ctx, mt); err != nil {
		return nil, err
	}
	return mt, nil
}

func (s *Service) AddIngredient(ctx context.Context, ing *Ingredient) (*Ingredient, error) {
	if ing == nil || ing.Name == "" {
		return nil, errors.New("missing required fields")
	}
	if ing.Price < 0 || ing.Caloricity < 0 {
		return nil, errors.New("price and caloricity must be non-negative")
	}
	if err := s.repo.CreateIngredient(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *Service) AddRecipe(ctx context.Context, rec *Recipe) (*Recipe, error) {
	if rec == nil || rec.Title == "" {
		return nil, errors.New("missing required fields")
	}
	if !rec.MealType.Valid() {
		return nil, errors.New("unknown meal type")
	}
	for _, entry := range rec.Ingredients {
		if entry.Mass < 0 {
			return nil, errors.New("ingredient mass must be non-negative")
		}
	}
	if err := s.repo.CreateRecipe(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
