package subscription

import (
	"errors"
	"net/http"
	"time"

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

// planRequest is the shared request shape for quoting and checkout.
// Binding coerces/validates the numeric fields before the pricing
// engine ever sees them.
type planRequest struct {
	Months      int    `json:"months"`
	Persons     int    `json:"persons"`
	Breakfast   bool   `json:"breakfast"`
	Lunch       bool   `json:"lunch"`
	Dinner      bool   `json:"dinner"`
	Dessert     bool   `json:"dessert"`
	MenuTypeIDs []int  `json:"menu_type_ids"`
	AllergyIDs  []int  `json:"allergy_ids"`
	PromoCode   string `json:"promocode"`
}

// Quote prices a plan without persisting anything (the order form's
// "apply promo code" preview).
func (h *Handler) Quote(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Months == 0 {
		req.Months = 1
	}
	if req.Persons == 0 {
		req.Persons = 1
	}

	quote := h.service.Quote(c.Request.Context(), QuoteRequest{
		Months:    req.Months,
		Persons:   req.Persons,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
		Dessert:   req.Dessert,
		PromoCode: req.PromoCode,
	})
	c.JSON(http.StatusOK, quote)
}

func (h *Handler) Checkout(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := h.service.Checkout(c.Request.Context(), c.GetString("userID"), CheckoutRequest{
		Months:      req.Months,
		Persons:     req.Persons,
		Breakfast:   req.Breakfast,
		Lunch:       req.Lunch,
		Dinner:      req.Dinner,
		Dessert:     req.Dessert,
		MenuTypeIDs: req.MenuTypeIDs,
		AllergyIDs:  req.AllergyIDs,
		PromoCode:   req.PromoCode,
	})
	switch {
	case errors.Is(err, ErrNoMenuType),
		errors.Is(err, ErrInvalidMonths),
		errors.Is(err, ErrInvalidPersons):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *Handler) Active(c *gin.Context) {
	sub, err := h.service.Active(c.Request.Context(), c.GetString("userID"))
	if errors.Is(err, ErrNoActiveSubscription) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active subscription"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *Handler) EligibleRecipes(c *gin.Context) {
	eligible, err := h.service.Eligible(c.Request.Context(), c.GetString("userID"))
	if errors.Is(err, ErrNoActiveSubscription) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active subscription"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription": eligible.Subscription,
		"recipes":      eligible.Recipes,
		"by_menu_type": eligible.ByMenuType,
		"count":        len(eligible.Recipes),
	})
}

// --------------------------------------------------
// Admin: promo maintenance
// --------------------------------------------------

func (h *AdminHandler) CreatePromoCode(c *gin.Context) {
	var req struct {
		Code            string     `json:"code"`
		DiscountPercent int        `json:"discount_percent"`
		IsActive        *bool      `json:"is_active"`
		ValidFrom       *time.Time `json:"valid_from"`
		ValidTo         *time.Time `json:"valid_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	promo := &PromoCode{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		IsActive:        true,
		ValidFrom:       req.ValidFrom,
		ValidTo:         req.ValidTo,
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}

	if err := h.service.AddPromoCode(c.Request.Context(), promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, promo)
}
