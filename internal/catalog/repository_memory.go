package catalog

import (
	"context"
	"sort"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	recipes     map[int]*Recipe
	menuTypes   map[int]MenuType
	foodTags    map[int]FoodTag
	priceRanges []PriceRange
	ingredients map[int]Ingredient
	nextID      int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		recipes:     make(map[int]*Recipe),
		menuTypes:   make(map[int]MenuType),
		foodTags:    make(map[int]FoodTag),
		ingredients: make(map[int]Ingredient),
		nextID:      1,
	}
}

func (r *InMemoryRepository) id() int {
	id := r.nextID
	r.nextID++
	return id
}

func (r *InMemoryRepository) ListRecipes(
	ctx context.Context,
	filter RecipeFilter,
) ([]*Recipe, error) {

	var out []*Recipe
	for _, rec := range r.recipes {
		if filter.MenuTypeID != 0 && !rec.HasMenuType(filter.MenuTypeID) {
			continue
		}
		if filter.MealType != "" && rec.MealType != filter.MealType {
			continue
		}
		if filter.OnIndex && !rec.OnIndex {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) GetRecipe(ctx context.Context, id int) (*Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return rec, nil
}

func (r *InMemoryRepository) ListMenuTypes(ctx context.Context) ([]MenuType, error) {
	var out []MenuType
	for _, mt := range r.menuTypes {
		out = append(out, mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) ListFoodTags(ctx context.Context) ([]FoodTag, error) {
	var out []FoodTag
	for _, tag := range r.foodTags {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) ListPriceRanges(ctx context.Context) ([]PriceRange, error) {
	return r.priceRanges, nil
}

func (r *InMemoryRepository) CreateFoodTag(ctx context.Context, tag *FoodTag) error {
	for _, existing := range r.foodTags {
		if existing.Name == tag.Name {
			return ErrDuplicateTitle
		}
	}
	if tag.ID == 0 {
		tag.ID = r.id()
	}
	r.foodTags[tag.ID] = *tag
	return nil
}

func (r *InMemoryRepository) CreateMenuType(ctx context.Context, mt *MenuType) error {
	for _, existing := range r.menuTypes {
		if existing.Title == mt.Title {
			return ErrDuplicateTitle
		}
	}
	if mt.ID == 0 {
		mt.ID = r.id()
	}
	r.menuTypes[mt.ID] = *mt
	return nil
}

func (r *InMemoryRepository) CreateIngredient(ctx context.Context, ing *Ingredient) error {
	if ing.ID == 0 {
		ing.ID = r.id()
	}
	r.ingredients[ing.ID] = *ing
	return nil
}

func (r *InMemoryRepository) CreateRecipe(ctx context.Context, rec *Recipe) error {
	for _, existing := range r.recipes {
		if existing.Title == rec.Title {
			return ErrDuplicateTitle
		}
	}
	if rec.ID == 0 {
		rec.ID = r.id()
	}
	r.recipes[rec.ID] = rec
	return nil
}
