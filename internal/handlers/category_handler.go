package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneytracker/internal/categories"
	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
)

// CategoryHandler serves the static category catalog.
type CategoryHandler struct {
	catalog *categories.Catalog
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(catalog *categories.Catalog) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// GetCategories lists the catalog
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Security    ApiKeyAuth
// @Param       type query string false "income or expense"
// @Success     200 {array}  models.Category
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	v := c.Query("type")
	if v == "" {
		respondData(c, http.StatusOK, h.catalog.All())
		return
	}

	kind := models.TransactionKind(v)
	if !kind.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "type must be income or expense"))
		return
	}
	respondData(c, http.StatusOK, h.catalog.ByKind(kind))
}

// GetCategoryByID returns one catalog entry
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	cat, err := h.catalog.Lookup(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, cat)
}
