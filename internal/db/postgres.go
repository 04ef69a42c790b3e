package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// ACCOUNTS
	// -------------------------------
	accountsSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'USER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS user_pages (
			id SERIAL PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id),
			username VARCHAR(255) NOT NULL,
			image VARCHAR(500) NOT NULL DEFAULT '',
			is_subscribed BOOLEAN NOT NULL DEFAULT FALSE
		);
	`
	if _, err := db.Exec(ctx, accountsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATALOG
	// -------------------------------
	catalogSQL := `
		CREATE TABLE IF NOT EXISTS food_tags (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL
		);

		CREATE TABLE IF NOT EXISTS price_ranges (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			min_price DOUBLE PRECISION NULL,
			max_price DOUBLE PRECISION NULL
		);

		CREATE TABLE IF NOT EXISTS menu_types (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) UNIQUE NOT NULL,
			image VARCHAR(500) NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS ingredients (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			caloricity DOUBLE PRECISION NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS ingredient_allergens (
			ingredient_id INT NOT NULL REFERENCES ingredients(id),
			food_tag_id INT NOT NULL REFERENCES food_tags(id),
			PRIMARY KEY (ingredient_id, food_tag_id)
		);

		CREATE TABLE IF NOT EXISTS recipes (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) UNIQUE NOT NULL,
			image VARCHAR(500) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			sequence TEXT NOT NULL DEFAULT '',
			meal_type VARCHAR(50) NOT NULL,
			premium BOOLEAN NOT NULL DEFAULT FALSE,
			on_index BOOLEAN NOT NULL DEFAULT FALSE
		);

		CREATE TABLE IF NOT EXISTS recipe_ingredients (
			recipe_id INT NOT NULL REFERENCES recipes(id),
			ingredient_id INT NOT NULL REFERENCES ingredients(id),
			mass DOUBLE PRECISION NOT NULL DEFAULT 0,
			PRIMARY KEY (recipe_id, ingredient_id)
		);

		CREATE TABLE IF NOT EXISTS recipe_menu_types (
			recipe_id INT NOT NULL REFERENCES recipes(id),
			menu_type_id INT NOT NULL REFERENCES menu_types(id),
			PRIMARY KEY (recipe_id, menu_type_id)
		);
	`
	if _, err := db.Exec(ctx, catalogSQL); err != nil {
		return err
	}

	// -------------------------------
	// USER TASTES
	// -------------------------------
	tastesSQL := `
		CREATE TABLE IF NOT EXISTS user_page_allergies (
			user_page_id INT NOT NULL REFERENCES user_pages(id),
			food_tag_id INT NOT NULL REFERENCES food_tags(id),
			PRIMARY KEY (user_page_id, food_tag_id)
		);

		CREATE TABLE IF NOT EXISTS user_page_menu_types (
			user_page_id INT NOT NULL REFERENCES user_pages(id),
			menu_type_id INT NOT NULL REFERENCES menu_types(id),
			PRIMARY KEY (user_page_id, menu_type_id)
		);

		CREATE TABLE IF NOT EXISTS user_page_liked (
			user_page_id INT NOT NULL REFERENCES user_pages(id),
			recipe_id INT NOT NULL REFERENCES recipes(id),
			PRIMARY KEY (user_page_id, recipe_id)
		);

		CREATE TABLE IF NOT EXISTS user_page_disliked (
			user_page_id INT NOT NULL REFERENCES user_pages(id),
			recipe_id INT NOT NULL REFERENCES recipes(id),
			PRIMARY KEY (user_page_id, recipe_id)
		);
	`
	if _, err := db.Exec(ctx, tastesSQL); err != nil {
		return err
	}

	// -------------------------------
	// SUBSCRIPTIONS
	// -------------------------------
	subscriptionsSQL := `
		CREATE TABLE IF NOT EXISTS promo_codes (
			id SERIAL PRIMARY KEY,
			code VARCHAR(100) UNIQUE NOT NULL,
			discount_percent INT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			valid_from TIMESTAMP NULL,
			valid_to TIMESTAMP NULL
		);

		CREATE TABLE IF NOT EXISTS subscriptions (
			id SERIAL PRIMARY KEY,
			user_page_id INT NOT NULL REFERENCES user_pages(id),
			months INT NOT NULL,
			persons INT NOT NULL,
			breakfast BOOLEAN NOT NULL DEFAULT FALSE,
			lunch BOOLEAN NOT NULL DEFAULT FALSE,
			dinner BOOLEAN NOT NULL DEFAULT FALSE,
			dessert BOOLEAN NOT NULL DEFAULT FALSE,
			price INT NOT NULL,
			promo_code_id INT NULL REFERENCES promo_codes(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS subscription_menu_types (
			subscription_id INT NOT NULL REFERENCES subscriptions(id) ON DELETE CASCADE,
			menu_type_id INT NOT NULL REFERENCES menu_types(id),
			PRIMARY KEY (subscription_id, menu_type_id)
		);
	`
	if _, err := db.Exec(ctx, subscriptionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// DAILY MENUS
	// -------------------------------
	dailyMenusSQL := `
		CREATE TABLE IF NOT EXISTS daily_menus (
			id SERIAL PRIMARY KEY,
			day VARCHAR(10) NOT NULL,
			breakfast_id INT NULL REFERENCES recipes(id),
			lunch_id INT NULL REFERENCES recipes(id),
			dinner_id INT NULL REFERENCES recipes(id),
			dessert_id INT NULL REFERENCES recipes(id)
		);

		CREATE TABLE IF NOT EXISTS daily_menu_types (
			daily_menu_id INT NOT NULL REFERENCES daily_menus(id) ON DELETE CASCADE,
			menu_type_id INT NOT NULL REFERENCES menu_types(id),
			PRIMARY KEY (daily_menu_id, menu_type_id)
		);

		CREATE TABLE IF NOT EXISTS daily_menu_users (
			daily_menu_id INT NOT NULL REFERENCES daily_menus(id) ON DELETE CASCADE,
			user_page_id INT NOT NULL REFERENCES user_pages(id),
			PRIMARY KEY (daily_menu_id, user_page_id)
		);
	`
	if _, err := db.Exec(ctx, dailyMenusSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
