package dailymenu

import (
	"errors"
	"net/http"

	"foodplan/internal/catalog"

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

// Resolved returns the weekday's menu with unsafe slots already
// substituted for the caller.
func (h *Handler) Resolved(c *gin.Context) {
	day := Weekday(c.Param("day"))
	if !day.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown weekday"})
		return
	}

	menu, resolved, err := h.service.ResolveForUser(
		c.Request.Context(), day, c.GetString("userID"))
	if errors.Is(err, ErrMenuNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no menu for this day"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slots := make(gin.H, 4)
	for _, meal := range catalog.MealTypes {
		if recipe := resolved[meal]; recipe != nil {
			slots[string(meal)] = gin.H{"id": recipe.ID, "title": recipe.Title}
		} else {
			slots[string(meal)] = nil
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"day":   menu.Day,
		"slots": slots,
	})
}

// --------------------------------------------------
// Admin: menu maintenance
// --------------------------------------------------

func (h *AdminHandler) CreateMenu(c *gin.Context) {
	var req struct {
		Day         string `json:"day"`
		BreakfastID *int   `json:"breakfast_id"`
		LunchID     *int   `json:"lunch_id"`
		DinnerID    *int   `json:"dinner_id"`
		DessertID   *int   `json:"dessert_id"`
		MenuTypeIDs []int  `json:"menu_type_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	menu := &DailyMenu{
		Day:         Weekday(req.Day),
		MenuTypeIDs: req.MenuTypeIDs,
	}
	slotRefs := []struct {
		id  *int
		dst **catalog.Recipe
	}{
		{req.BreakfastID, &menu.Breakfast},
		{req.LunchID, &menu.Lunch},
		{req.DinnerID, &menu.Dinner},
		{req.DessertID, &menu.Dessert},
	}
	for _, ref := range slotRefs {
		if ref.id != nil {
			*ref.dst = &catalog.Recipe{ID: *ref.id}
		}
	}

	if err := h.service.AddMenu(c.Request.Context(), menu); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": menu.ID, "day": menu.Day})
}
