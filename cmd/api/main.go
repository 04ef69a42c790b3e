package main

import (
	"context"
	"os"
	"time"

	"foodplan/internal/auth"
	"foodplan/internal/catalog"
	"foodplan/internal/config"
	"foodplan/internal/dailymenu"
	"foodplan/internal/db"
	"foodplan/internal/middleware"
	"foodplan/internal/profile"
	"foodplan/internal/storage"
	"foodplan/internal/subscription"
	"foodplan/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	sugar := logger.New()
	if cfg.Server.Env != "production" {
		sugar = logger.NewDevelopment()
	}
	defer sugar.Sync()

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			sugar.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		sugar.Fatalf("❌ R2 init failed: %v", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	profileRepo := profile.NewPostgresRepository(pgDB)
	subscriptionRepo := subscription.NewPostgresRepository(pgDB)
	dailyMenuRepo := dailymenu.NewPostgresRepository(pgDB, catalogRepo)

	var promoRepo subscription.PromoRepository
	if cfg.Promo.Enabled {
		promoRepo = subscription.NewPostgresPromoRepository(pgDB)
	} else {
		sugar.Infow("promo codes disabled by config")
	}

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	profileService := profile.NewService(profileRepo, authService, r2Client)
	catalogService := catalog.NewService(catalogRepo, profileService)
	subscriptionService := subscription.NewService(
		subscriptionRepo,
		promoRepo,
		profileService,
		catalogService,
	)
	dailyMenuService := dailymenu.NewService(dailyMenuRepo, profileService, catalogService)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	adminCatalogHandler := catalog.NewAdminHandler(catalogService)
	profileHandler := profile.NewHandler(profileService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	adminSubscriptionHandler := subscription.NewAdminHandler(subscriptionService)
	dailyMenuHandler := dailymenu.NewHandler(dailyMenuService)
	adminDailyMenuHandler := dailymenu.NewAdminHandler(dailyMenuService)

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	recipes := r.Group("/recipes")
	{
		recipes.GET("", catalogHandler.ListRecipes)
		recipes.GET("/featured", catalogHandler.FeaturedRecipes)
		recipes.GET("/:id", catalogHandler.GetRecipe)

		authed := recipes.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/safe", catalogHandler.SafeRecipes)
			authed.GET("/eligible", subscriptionHandler.EligibleRecipes)
		}
	}

	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/menu-types", catalogHandler.ListMenuTypes)
		catalogGroup.GET("/allergens", catalogHandler.ListFoodTags)
		catalogGroup.GET("/price-ranges", catalogHandler.ListPriceRanges)
	}

	// ───────────────────────── PROFILE ROUTES ─────────────────────────
	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.AuthMiddleware())
	{
		profileGroup.GET("/me", profileHandler.Me)
		profileGroup.PUT("/allergies", profileHandler.SetAllergies)
		profileGroup.PUT("/menu-types", profileHandler.SetMenuTypes)
		profileGroup.POST("/avatar", profileHandler.UploadAvatar)
		profileGroup.POST("/recipes/:id/like", profileHandler.LikeRecipe)
		profileGroup.POST("/recipes/:id/dislike", profileHandler.DislikeRecipe)
	}

	// ───────────────────────── SUBSCRIPTION ROUTES ─────────────────────────
	subscriptions := r.Group("/subscriptions")
	subscriptions.Use(middleware.AuthMiddleware())
	{
		subscriptions.POST("/quote", subscriptionHandler.Quote)
		subscriptions.POST("/checkout", subscriptionHandler.Checkout)
		subscriptions.GET("/me", subscriptionHandler.Active)
	}

	// ───────────────────────── DAILY MENU ROUTES ─────────────────────────
	dailyMenus := r.Group("/daily-menu")
	dailyMenus.Use(middleware.AuthMiddleware())
	{
		dailyMenus.GET("/:day/resolved", dailyMenuHandler.Resolved)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/allergens", adminCatalogHandler.CreateFoodTag)
		admin.POST("/menu-types", adminCatalogHandler.CreateMenuType)
		admin.POST("/ingredients", adminCatalogHandler.CreateIngredient)
		admin.POST("/recipes", adminCatalogHandler.CreateRecipe)
		admin.POST("/promo-codes", adminSubscriptionHandler.CreatePromoCode)
		admin.POST("/daily-menus", adminDailyMenuHandler.CreateMenu)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	sugar.Infof("🚀 API running at http://localhost:%s", cfg.Server.Port)
	r.Run(":" + cfg.Server.Port)
}
