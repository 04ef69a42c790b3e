package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrDuplicateTitle = errors.New("title already exists")
)

// isUniqueViolation matches the Postgres unique_violation error code.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Recipes
// --------------------------------------------------

func (r *PostgresRepository) ListRecipes(
	ctx context.Context,
	filter RecipeFilter,
) ([]*Recipe, error) {

	query := `
		SELECT DISTINCT r.id, r.title, r.image, r.description, r.sequence,
		       r.meal_type, r.premium, r.on_index
		FROM recipes r
	`
	args := []interface{}{}
	where := ""

	if filter.MenuTypeID != 0 {
		query += ` JOIN recipe_menu_types rmt ON rmt.recipe_id = r.id`
		args = append(args, filter.MenuTypeID)
		where = fmt.Sprintf(" WHERE rmt.menu_type_id = $%d", len(args))
	}
	if filter.MealType != "" {
		args = append(args, string(filter.MealType))
		if where == "" {
			where = fmt.Sprintf(" WHERE r.meal_type = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND r.meal_type = $%d", len(args))
		}
	}
	if filter.OnIndex {
		if where == "" {
			where = " WHERE r.on_index"
		} else {
			where += " AND r.on_index"
		}
	}

	rows, err := r.db.Query(ctx, query+where+" ORDER BY r.id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*Recipe
	for rows.Next() {
		rec := &Recipe{}
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Image, &rec.Description,
			&rec.Sequence, &rec.MealType, &rec.Premium, &rec.OnIndex,
		); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rec := range recipes {
		if err := r.loadComposition(ctx, rec); err != nil {
			return nil, err
		}
		if err := r.loadMenuTypes(ctx, rec); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

func (r *PostgresRepository) GetRecipe(ctx context.Context, id int) (*Recipe, error) {
	rec := &Recipe{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, image, description, sequence,
		       meal_type, premium, on_index
		FROM recipes WHERE id = $1
	`, id).Scan(
		&rec.ID, &rec.Title, &rec.Image, &rec.Description,
		&rec.Sequence, &rec.MealType, &rec.Premium, &rec.OnIndex,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadComposition(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadMenuTypes(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *PostgresRepository) loadComposition(ctx context.Context, rec *Recipe) error {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.name, i.price, i.caloricity, ri.mass
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = $1
		ORDER BY ri.id
	`, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	rec.Ingredients = nil
	for rows.Next() {
		var entry RecipeIngredient
		if err := rows.Scan(
			&entry.Ingredient.ID, &entry.Ingredient.Name,
			&entry.Ingredient.Price, &entry.Ingredient.Caloricity,
			&entry.Mass,
		); err != nil {
			return err
		}
		rec.Ingredients = append(rec.Ingredients, entry)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for idx := range rec.Ingredients {
		tags, err := r.ingredientAllergens(ctx, rec.Ingredients[idx].Ingredient.ID)
		if err != nil {
			return err
		}
		rec.Ingredients[idx].Ingredient.Allergens = tags
	}
	return nil
}

func (r *PostgresRepository) ingredientAllergens(ctx context.Context, ingredientID int) ([]FoodTag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.name
		FROM ingredient_allergens ia
		JOIN food_tags t ON t.id = ia.food_tag_id
		WHERE ia.ingredient_id = $1
		ORDER BY t.id
	`, ingredientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []FoodTag
	for rows.Next() {
		var tag FoodTag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *PostgresRepository) loadMenuTypes(ctx context.Context, rec *Recipe) error {
	rows, err := r.db.Query(ctx, `
		SELECT mt.id, mt.title, mt.image
		FROM recipe_menu_types rmt
		JOIN menu_types mt ON mt.id = rmt.menu_type_id
		WHERE rmt.recipe_id = $1
		ORDER BY mt.id
	`, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	rec.MenuTypes = nil
	for rows.Next() {
		var mt MenuType
		if err := rows.Scan(&mt.ID, &mt.Title, &mt.Image); err != nil {
			return err
		}
		rec.MenuTypes = append(rec.MenuTypes, mt)
	}
	return rows.Err()
}

// --------------------------------------------------
// Reference listings
// --------------------------------------------------

func (r *PostgresRepository) ListMenuTypes(ctx context.Context) ([]MenuType, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, image FROM menu_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuType
	for rows.Next() {
		var mt MenuType
		if err := rows.Scan(&mt.ID, &mt.Title, &mt.Image); err != nil {
			return nil, err
		}
		out = append(out, mt)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListFoodTags(ctx context.Context) ([]FoodTag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM food_tags ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FoodTag
	for rows.Next() {
		var tag FoodTag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		out = append(out, tag)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListPriceRanges(ctx context.Context) ([]PriceRange, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, min_price, max_price FROM price_ranges ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PriceRange
	for rows.Next() {
		var pr PriceRange
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.MinPrice, &pr.MaxPrice); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

// --------------------------------------------------
// Maintainer writes
// --------------------------------------------------

func (r *PostgresRepository) CreateFoodTag(ctx context.Context, tag *FoodTag) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO food_tags (name) VALUES ($1) RETURNING id`,
		tag.Name,
	).Scan(&tag.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateTitle
	}
	return err
}

func (r *PostgresRepository) CreateMenuType(ctx context.Context, mt *MenuType) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO menu_types (title, image) VALUES ($1, $2) RETURNING id`,
		mt.Title, mt.Image,
	).Scan(&mt.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateTitle
	}
	return err
}

func (r *PostgresRepository) CreateIngredient(ctx context.Context, ing *Ingredient) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO ingredients (name, price, caloricity)
		VALUES ($1, $2, $3)
		RETURNING id
	`, ing.Name, ing.Price, ing.Caloricity).Scan(&ing.ID)
	if err != nil {
		return err
	}

	for _, tag := range ing.Allergens {
		_, err := r.db.Exec(ctx, `
			INSERT INTO ingredient_allergens (ingredient_id, food_tag_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, ing.ID, tag.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateRecipe inserts the recipe with its composition and menu-type
// links in one transaction.
func (r *PostgresRepository) CreateRecipe(ctx context.Context, rec *Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (title, image, description, sequence,
		                     meal_type, premium, on_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, rec.Title, rec.Image, rec.Description, rec.Sequence,
		string(rec.MealType), rec.Premium, rec.OnIndex,
	).Scan(&rec.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateTitle
	}
	if err != nil {
		return err
	}

	for _, entry := range rec.Ingredients {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, mass)
			VALUES ($1, $2, $3)
		`, rec.ID, entry.Ingredient.ID, entry.Mass)
		if err != nil {
			return err
		}
	}
	for _, mt := range rec.MenuTypes {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_menu_types (recipe_id, menu_type_id)
			VALUES ($1, $2)
		`, rec.ID, mt.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
