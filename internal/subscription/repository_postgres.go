package subscription

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

func (r *PostgresRepository) ActiveForPage(ctx context.Context, pageID int) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_page_id, months, persons,
		       breakfast, lunch, dinner, dessert, price, promo_code_id
		FROM subscriptions WHERE user_page_id = $1
	`, pageID).Scan(
		&sub.ID, &sub.UserPageID, &sub.Months, &sub.Persons,
		&sub.Breakfast, &sub.Lunch, &sub.Dinner, &sub.Dessert,
		&sub.Price, &sub.PromoCodeID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoActiveSubscription
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT menu_type_id FROM subscription_menu_types
		WHERE subscription_id = $1 ORDER BY menu_type_id
	`, sub.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		sub.MenuTypeIDs = append(sub.MenuTypeIDs, id)
	}
	return sub, rows.Err()
}

// Replace runs the whole supersede sequence in one transaction: delete
// the old subscription, insert the new one, relink menu types on both
// the subscription and the page, and keep the page's denormalized
// is_subscribed flag in step.
func (r *PostgresRepository) Replace(ctx context.Context, sub *Subscription) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM subscriptions WHERE user_page_id = $1`, sub.UserPageID); err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO subscriptions
			(user_page_id, months, persons,
			 breakfast, lunch, dinner, dessert, price, promo_code_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, sub.UserPageID, sub.Months, sub.Persons,
		sub.Breakfast, sub.Lunch, sub.Dinner, sub.Dessert,
		sub.Price, sub.PromoCodeID,
	).Scan(&sub.ID)
	if err != nil {
		return err
	}

	for _, mtID := range sub.MenuTypeIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO subscription_menu_types (subscription_id, menu_type_id)
			VALUES ($1, $2)
		`, sub.ID, mtID)
		if err != nil {
			return err
		}
	}

	// Mirror the chosen menu types onto the page.
	if _, err := tx.Exec(ctx,
		`DELETE FROM user_page_menu_types WHERE user_page_id = $1`, sub.UserPageID); err != nil {
		return err
	}
	for _, mtID := range sub.MenuTypeIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO user_page_menu_types (user_page_id, menu_type_id)
			VALUES ($1, $2)
		`, sub.UserPageID, mtID)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE user_pages SET is_subscribed = true WHERE id = $1`, sub.UserPageID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Promo codes
// --------------------------------------------------

type PostgresPromoRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPromoRepository(db *pgxpool.Pool) *PostgresPromoRepository {
	return &PostgresPromoRepository{db: db}
}

func (r *PostgresPromoRepository) FindActiveByCode(ctx context.Context, code string) (*PromoCode, error) {
	promo := &PromoCode{}
	err := r.db.QueryRow(ctx, `
		SELECT id, code, discount_percent, is_active, valid_from, valid_to
		FROM promo_codes
		WHERE lower(code) = lower($1) AND is_active
	`, code).Scan(
		&promo.ID, &promo.Code, &promo.DiscountPercent,
		&promo.IsActive, &promo.ValidFrom, &promo.ValidTo,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return promo, nil
}

func (r *PostgresPromoRepository) Create(ctx context.Context, promo *PromoCode) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO promo_codes (code, discount_percent, is_active, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, promo.Code, promo.DiscountPercent, promo.IsActive,
		promo.ValidFrom, promo.ValidTo,
	).Scan(&promo.ID)
}
