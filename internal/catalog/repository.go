package catalog

import "context"

// RecipeFilter narrows recipe listings. Zero values mean "no filter".
type RecipeFilter struct {
	MenuTypeID int
	MealType   MealType
	OnIndex    bool
}

// Repository defines all database operations for the catalog.
// Reads are shared by every request; writes are for catalog maintainers.
type Repository interface {

	// -------------------------------
	// Reads
	// -------------------------------

	// Recipes are returned fully loaded (composition + menu types),
	// ordered by ascending ID.
	ListRecipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error)
	GetRecipe(ctx context.Context, id int) (*Recipe, error)

	ListMenuTypes(ctx context.Context) ([]MenuType, error)
	ListFoodTags(ctx context.Context) ([]FoodTag, error)
	ListPriceRanges(ctx context.Context) ([]PriceRange, error)

	// -------------------------------
	// Maintainer writes
	// -------------------------------

	CreateFoodTag(ctx context.Context, tag *FoodTag) error
	CreateMenuType(ctx context.Context, mt *MenuType) error
	CreateIngredient(ctx context.Context, ing *Ingredient) error
	CreateRecipe(ctx context.Context, r *Recipe) error
}
