package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/dto"
	"github.com/SscSPs/fin_assist/internal/middleware"
	"github.com/SscSPs/fin_assist/internal/utils"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to monthly budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.PUT("", h.upsertBudget)
		budgets.GET("", h.listBudgets)
		budgets.DELETE("/:budgetID", h.deleteBudget)
	}
}

// upsertBudget godoc
// @Summary Set a monthly budget
// @Description Creates the budget of a category for a month, or replaces its limit when one already exists
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.UpsertBudgetRequest true "Budget details"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown category"
// @Failure 500 {object} map[string]string "Failed to save budget"
// @Security BearerAuth
// @Router /budgets [put]
func (h *budgetHandler) upsertBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// brlamount already accepted the text
	limit, _ := utils.ParseBRLAmount(req.Limit)
	period := dto.PeriodQuery{Month: req.Month, Year: req.Year}.ToPeriod()

	budget, err := h.budgetService.UpsertBudget(c.Request.Context(), req.Category, limit, period)
	if err != nil {
		respondError(c, logger, err, "Failed to save budget")
		return
	}

	logger.Info("Budget saved", slog.Int64("budget_id", budget.BudgetID))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(*budget))
}

// listBudgets godoc
// @Summary List budgets of a month
// @Description Lists the budgets of a month with the expenses consumed against each. Percent is capped at 100; overspent flags consumption above the limit.
// @Tags budgets
// @Produce  json
// @Param   month query int true "Month (1-12)"
// @Param   year query int true "Year"
// @Success 200 {array} dto.BudgetProgressResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to list budgets"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	progress, err := h.budgetService.ListBudgetsForPeriod(c.Request.Context(), q.ToPeriod())
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetProgressResponses(progress))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Description Removes a budget. Deleting an absent id succeeds.
// @Tags budgets
// @Param   budgetID path int true "Budget ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid budget ID"
// @Failure 500 {object} map[string]string "Failed to delete budget"
// @Security BearerAuth
// @Router /budgets/{budgetID} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "budgetID")
	if !ok {
		return
	}
	if err := h.budgetService.RemoveBudget(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}
