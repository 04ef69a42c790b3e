package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByUserID(ctx context.Context, userID string) (*UserPage, error) {
	page := &UserPage{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, username, image, is_subscribed
		FROM user_pages WHERE user_id = $1
	`, userID).Scan(
		&page.ID, &page.UserID, &page.Username, &page.Image, &page.IsSubscribed,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, err
	}

	loads := []struct {
		query string
		dst   *[]int
	}{
		{`SELECT food_tag_id FROM user_page_allergies WHERE user_page_id = $1 ORDER BY food_tag_id`, &page.AllergyIDs},
		{`SELECT menu_type_id FROM user_page_menu_types WHERE user_page_id = $1 ORDER BY menu_type_id`, &page.MenuTypeIDs},
		{`SELECT recipe_id FROM user_page_liked WHERE user_page_id = $1 ORDER BY recipe_id`, &page.LikedRecipeIDs},
		{`SELECT recipe_id FROM user_page_disliked WHERE user_page_id = $1 ORDER BY recipe_id`, &page.DislikedRecipeIDs},
	}
	for _, l := range loads {
		ids, err := r.intColumn(ctx, l.query, page.ID)
		if err != nil {
			return nil, err
		}
		*l.dst = ids
	}
	return page, nil
}

func (r *PostgresRepository) intColumn(ctx context.Context, query string, pageID int) ([]int, error) {
	rows, err := r.db.Query(ctx, query, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, page *UserPage) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO user_pages (user_id, username, image, is_subscribed)
		VALUES ($1, $2, $3, false)
		RETURNING id
	`, page.UserID, page.Username, page.Image).Scan(&page.ID)
}

func (r *PostgresRepository) replaceLinks(
	ctx context.Context,
	table, column string,
	pageID int,
	ids []int,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM `+table+` WHERE user_page_id = $1`, pageID); err != nil {
		return err
	}
	for _, id := range ids {
		_, err := tx.Exec(ctx,
			`INSERT INTO `+table+` (user_page_id, `+column+`) VALUES ($1, $2)`,
			pageID, id)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PostgresRepository) SetAllergies(ctx context.Context, pageID int, tagIDs []int) error {
	return r.replaceLinks(ctx, "user_page_allergies", "food_tag_id", pageID, tagIDs)
}

func (r *PostgresRepository) SetMenuTypes(ctx context.Context, pageID int, menuTypeIDs []int) error {
	return r.replaceLinks(ctx, "user_page_menu_types", "menu_type_id", pageID, menuTypeIDs)
}

func (r *PostgresRepository) SetAvatar(ctx context.Context, pageID int, imageURL string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE user_pages SET image = $1 WHERE id = $2`, imageURL, pageID)
	return err
}

func (r *PostgresRepository) Like(ctx context.Context, pageID, recipeID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM user_page_disliked WHERE user_page_id = $1 AND recipe_id = $2`,
		pageID, recipeID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO user_page_liked (user_page_id, recipe_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING
	`, pageID, recipeID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostgresRepository) Dislike(ctx context.Context, pageID, recipeID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM user_page_liked WHERE user_page_id = $1 AND recipe_id = $2`,
		pageID, recipeID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO user_page_disliked (user_page_id, recipe_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING
	`, pageID, recipeID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
