package handlers

import (
	"net/http"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler manages the picker lists.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories/:kind")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// kindParam parses the :kind path segment or writes a 400.
func kindParam(c *gin.Context) (domain.CategoryKind, bool) {
	kind, err := domain.ParseCategoryKind(c.Param("kind"))
	if err != nil {
		respondWithError(c, err, "Invalid category kind")
		return "", false
	}
	return kind, true
}

// listCategories godoc
// @Summary List the entries of a picker list
// @Tags categories
// @Produce json
// @Param kind path string true "expense, product, supplier, color or dialColor"
// @Success 200 {array} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{kind} [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	categories, err := h.categoryService.ListCategories(c.Request.Context(), kind)
	if err != nil {
		respondWithError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// createCategory godoc
// @Summary Add an entry to a picker list
// @Tags categories
// @Accept json
// @Produce json
// @Param kind path string true "Category kind"
// @Param category body dto.CreateCategoryRequest true "Category name"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already on the list"
// @Security BearerAuth
// @Router /categories/{kind} [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	category, err := h.categoryService.AddCategory(c.Request.Context(), kind, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to add category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// deleteCategory godoc
// @Summary Remove an entry from a picker list
// @Tags categories
// @Param kind path string true "Category kind"
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{kind}/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), kind, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
