package http

import (
	"photobazaar/internal/usecase"
	"photobazaar/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *logger.Logger
}

func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUseCase: categoryUseCase, logger: logger}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ListCategories godoc
// @Summary      List active categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  Response
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUseCase.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, categories)
}

// GetCategory godoc
// @Summary      Get a category by id or slug
// @Tags         categories
// @Produce      json
// @Param        identifier path string true "Category id or slug"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /categories/{identifier} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryUseCase.GetCategory(c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, category)
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CategoryRequest true "Category"
// @Success      201  {object}  Response
// @Failure      400  {object}  Response
// @Failure      409  {object}  Response
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	category, err := h.categoryUseCase.CreateCategory(usecase.CategoryParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "category created", category)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category id"
// @Param        request body UpdateCategoryRequest true "Fields to update"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Param("id"), usecase.CategoryParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "category updated", category)
}

// DeleteCategory godoc
// @Summary      Deactivate a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUseCase.DeleteCategory(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "category deleted", nil)
}
