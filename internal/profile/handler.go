package profile

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Me returns the caller's page, creating it on first access.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	page, err := h.service.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) SetAllergies(c *gin.Context) {
	var req struct {
		AllergyIDs []int `json:"allergy_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetAllergies(c.Request.Context(), c.GetString("userID"), req.AllergyIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allergy_ids": req.AllergyIDs})
}

func (h *Handler) SetMenuTypes(c *gin.Context) {
	var req struct {
		MenuTypeIDs []int `json:"menu_type_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetMenuTypes(c.Request.Context(), c.GetString("userID"), req.MenuTypeIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_type_ids": req.MenuTypeIDs})
}

func (h *Handler) UploadAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadAvatar(
		c.Request.Context(),
		c.GetString("userID"),
		file,
		header.Filename,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": url})
}

func (h *Handler) LikeRecipe(c *gin.Context) {
	h.react(c, h.service.LikeRecipe)
}

func (h *Handler) DislikeRecipe(c *gin.Context) {
	h.react(c, h.service.DislikeRecipe)
}

func (h *Handler) react(
	c *gin.Context,
	op func(ctx context.Context, userID string, recipeID int) error,
) {
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := op(c.Request.Context(), c.GetString("userID"), recipeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_id": recipeID})
}
