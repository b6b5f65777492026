package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/dto"
	"github.com/SscSPs/fin_assist/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to the category registry.
type categoryHandler struct {
	categoryService  portssvc.CategorySvcFacade
	reportingService portssvc.ReportingService
}

func newCategoryHandler(cs portssvc.CategorySvcFacade, rs portssvc.ReportingService) *categoryHandler {
	return &categoryHandler{
		categoryService:  cs,
		reportingService: rs,
	}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade, reportingService portssvc.ReportingService) {
	h := newCategoryHandler(categoryService, reportingService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/statistics", h.getCategoryStatistics)
		categories.PUT("/:name", h.renameCategory)
		categories.DELETE("/:name", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Description Registers a new category name (letters and spaces, at most 50 characters)
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category name"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 409 {object} map[string]string "Category already exists"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.categoryService.AddCategory(c.Request.Context(), req.Name); err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}

	res := dto.ToCategoryResponse(req.Name)
	logger.Info("Category created", slog.String("category", res.Name))
	c.JSON(http.StatusCreated, res)
}

// listCategories godoc
// @Summary List categories
// @Description Lists every registered category in lexicographic order
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	names, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(names))
}

// getCategoryStatistics godoc
// @Summary Per-category statistics
// @Description Counts and sums the whole ledger per category. Transactions whose category was removed are grouped under "__unknown__".
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryStatResponse
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /categories/statistics [get]
func (h *categoryHandler) getCategoryStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.reportingService.CategoryStatistics(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryStatResponses(stats))
}

// renameCategory godoc
// @Summary Rename a category
// @Description Renames a category and rewrites every transaction and budget that uses it, atomically
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   name path string true "Current category name"
// @Param   rename body dto.RenameCategoryRequest true "New name"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "New name or budget already exists"
// @Failure 500 {object} map[string]string "Failed to rename category"
// @Security BearerAuth
// @Router /categories/{name} [put]
func (h *categoryHandler) renameCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	oldName := c.Param("name")
	var req dto.RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenameCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("old_name", oldName), slog.String("new_name", req.NewName))
	if err := h.categoryService.RenameCategory(c.Request.Context(), oldName, req.NewName); err != nil {
		respondError(c, logger, err, "Failed to rename category")
		return
	}

	logger.Info("Category renamed")
	c.JSON(http.StatusOK, dto.ToCategoryResponse(req.NewName))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes the registry entry only; existing transactions keep the name and aggregate under "__unknown__". Deleting an absent name succeeds.
// @Tags categories
// @Param   name path string true "Category name"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to delete category"
// @Security BearerAuth
// @Router /categories/{name} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")
	if err := h.categoryService.RemoveCategory(c.Request.Context(), name); err != nil {
		respondError(c, logger, err, "Failed to delete category")
		return
	}
	logger.Info("Category deleted", slog.String("category", name))
	c.Status(http.StatusNoContent)
}
