package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

type recipeView struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Image       string     `json:"image,omitempty"`
	Description string     `json:"description,omitempty"`
	Sequence    string     `json:"sequence,omitempty"`
	MealType    MealType   `json:"meal_type"`
	Premium     bool       `json:"premium"`
	MenuTypes   []MenuType `json:"menu_types,omitempty"`
	Price       float64    `json:"price"`
	Mass        float64    `json:"mass"`
	Calories    float64    `json:"calories"`
	Allergens   []FoodTag  `json:"allergens,omitempty"`
}

func toView(r *Recipe) recipeView {
	return recipeView{
		ID:          r.ID,
		Title:       r.Title,
		Image:       r.Image,
		Description: r.Description,
		Sequence:    r.Sequence,
		MealType:    r.MealType,
		Premium:     r.Premium,
		MenuTypes:   r.MenuTypes,
		Price:       r.TotalPrice(),
		Mass:        r.TotalMass(),
		Calories:    r.TotalCalories(),
		Allergens:   r.Allergens(),
	}
}

func toViews(recipes []*Recipe) []recipeView {
	views := make([]recipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, toView(r))
	}
	return views
}

// --------------------------------------------------
// Public catalog reads
// --------------------------------------------------

func (h *Handler) ListRecipes(c *gin.Context) {
	var filter RecipeFilter

	if raw := c.Query("menu_type"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu_type"})
			return
		}
		filter.MenuTypeID = id
	}
	if raw := c.Query("meal_type"); raw != "" {
		mt := MealType(raw)
		if !mt.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal_type"})
			return
		}
		filter.MealType = mt
	}

	recipes, err := h.service.Recipes(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": toViews(recipes)})
}

func (h *Handler) FeaturedRecipes(c *gin.Context) {
	recipes, err := h.service.FeaturedRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": toViews(recipes)})
}

func (h *Handler) GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.service.Recipe(c.Request.Context(), id)
	if errors.Is(err, ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toView(recipe))
}

// SafeRecipes lists the catalog narrowed to the authenticated user's
// menu types and allergies.
func (h *Handler) SafeRecipes(c *gin.Context) {
	userID := c.GetString("userID")

	recipes, err := h.service.SafeRecipesFor(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipes": toViews(recipes),
		"count":   len(recipes),
	})
}

func (h *Handler) ListMenuTypes(c *gin.Context) {
	menuTypes, err := h.service.MenuTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_types": menuTypes})
}

func (h *Handler) ListFoodTags(c *gin.Context) {
	tags, err := h.service.FoodTags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allergens": tags})
}

func (h *Handler) ListPriceRanges(c *gin.Context) {
	ranges, err := h.service.PriceRanges(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type rangeView struct {
		ID    int    `json:"id"`
		Label string `json:"label"`
	}
	views := make([]rangeView, 0, len(ranges))
	for i := range ranges {
		views = append(views, rangeView{ID: ranges[i].ID, Label: ranges[i].Label()})
	}
	c.JSON(http.StatusOK, gin.H{"price_ranges": views})
}

// --------------------------------------------------
// Admin: catalog maintenance
// --------------------------------------------------

func (h *AdminHandler) CreateFoodTag(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	tag, err := h.service.AddFoodTag(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *AdminHandler) CreateMenuType(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	mt, err := h.service.AddMenuType(c.Request.Context(), req.Title, req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, mt)
}

func (h *AdminHandler) CreateIngredient(c *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Caloricity  float64 `json:"caloricity"`
		AllergenIDs []int   `json:"allergen_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ing := &Ingredient{
		Name:       req.Name,
		Price:      req.Price,
		Caloricity: req.Caloricity,
	}
	for _, id := range req.AllergenIDs {
		ing.Allergens = append(ing.Allergens, FoodTag{ID: id})
	}

	created, err := h.service.AddIngredient(c.Request.Context(), ing)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) CreateRecipe(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Image       string `json:"image"`
		Description string `json:"description"`
		Sequence    string `json:"sequence"`
		MealType    string `json:"meal_type"`
		Premium     bool   `json:"premium"`
		OnIndex     bool   `json:"on_index"`
		Ingredients []struct {
			IngredientID int     `json:"ingredient_id"`
			Mass         float64 `json:"mass"`
		} `json:"ingredients"`
		MenuTypeIDs []int `json:"menu_type_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rec := &Recipe{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Sequence:    req.Sequence,
		MealType:    MealType(req.MealType),
		Premium:     req.Premium,
		OnIndex:     req.OnIndex,
	}
	for _, entry := range req.Ingredients {
		rec.Ingredients = append(rec.Ingredients, RecipeIngredient{
			Ingredient: Ingredient{ID: entry.IngredientID},
			Mass:       entry.Mass,
		})
	}
	for _, id := range req.MenuTypeIDs {
		rec.MenuTypes = append(rec.MenuTypes, MenuType{ID: id})
	}

	created, err := h.service.AddRecipe(c.Request.Context(), rec)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": created.ID, "title": created.Title})
}
