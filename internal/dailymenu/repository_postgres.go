package dailymenu

import (
	"context"
	"errors"

	"foodplan/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecipeGetter loads a fully-composed recipe; satisfied by the catalog
// repository.
type RecipeGetter interface {
	GetRecipe(ctx context.Context, id int) (*catalog.Recipe, error)
}

type PostgresRepository struct {
	db      *pgxpool.Pool
	recipes RecipeGetter
}

func NewPostgresRepository(db *pgxpool.Pool, recipes RecipeGetter) *PostgresRepository {
	return &PostgresRepository{db: db, recipes: recipes}
}

func (r *PostgresRepository) GetByDay(ctx context.Context, day Weekday) (*DailyMenu, error) {
	menu := &DailyMenu{}
	var breakfastID, lunchID, dinnerID, dessertID *int

	err := r.db.QueryRow(ctx, `
		SELECT id, day, breakfast_id, lunch_id, dinner_id, dessert_id
		FROM daily_menus WHERE day = $1
		ORDER BY id LIMIT 1
	`, string(day)).Scan(
		&menu.ID, &menu.Day,
		&breakfastID, &lunchID, &dinnerID, &dessertID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}

	slots := []struct {
		id  *int
		dst **catalog.Recipe
	}{
		{breakfastID, &menu.Breakfast},
		{lunchID, &menu.Lunch},
		{dinnerID, &menu.Dinner},
		{dessertID, &menu.Dessert},
	}
	for _, slot := range slots {
		if slot.id == nil {
			continue
		}
		recipe, err := r.recipes.GetRecipe(ctx, *slot.id)
		if errors.Is(err, catalog.ErrRecipeNotFound) {
			continue // dangling slot reference behaves like an empty slot
		}
		if err != nil {
			return nil, err
		}
		*slot.dst = recipe
	}

	rows, err := r.db.Query(ctx, `
		SELECT menu_type_id FROM daily_menu_types
		WHERE daily_menu_id = $1 ORDER BY menu_type_id
	`, menu.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		menu.MenuTypeIDs = append(menu.MenuTypeIDs, id)
	}
	return menu, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, menu *DailyMenu) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO daily_menus (day, breakfast_id, lunch_id, dinner_id, dessert_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, string(menu.Day),
		recipeID(menu.Breakfast), recipeID(menu.Lunch),
		recipeID(menu.Dinner), recipeID(menu.Dessert),
	).Scan(&menu.ID)
	if err != nil {
		return err
	}

	for _, mtID := range menu.MenuTypeIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO daily_menu_types (daily_menu_id, menu_type_id)
			VALUES ($1, $2)
		`, menu.ID, mtID)
		if err != nil {
			return err
		}
	}
	for _, pageID := range menu.UserPageIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO daily_menu_users (daily_menu_id, user_page_id)
			VALUES ($1, $2)
		`, menu.ID, pageID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func recipeID(r *catalog.Recipe) *int {
	if r == nil {
		return nil
	}
	return &r.ID
}
