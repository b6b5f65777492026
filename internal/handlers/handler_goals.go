package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/dto"
	"github.com/SscSPs/fin_assist/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService      portssvc.GoalSvcFacade
	reportingService portssvc.ReportingService
}

func newGoalHandler(gs portssvc.GoalSvcFacade, rs portssvc.ReportingService) *goalHandler {
	return &goalHandler{
		goalService:      gs,
		reportingService: rs,
	}
}

// registerGoalRoutes registers routes related to goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade, reportingService portssvc.ReportingService) {
	h := newGoalHandler(goalService, reportingService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goalID", h.getGoal)
		goals.PUT("/:goalID", h.updateGoal)
		goals.PATCH("/:goalID/progress", h.updateGoalProgress)
		goals.DELETE("/:goalID", h.deleteGoal)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Description Creates a goal with no progress
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newGoal, err := req.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to create goal")
		return
	}

	goal, err := h.goalService.AddGoal(c.Request.Context(), newGoal)
	if err != nil {
		respondError(c, logger, err, "Failed to create goal")
		return
	}

	logger.Info("Goal created", slog.Int64("goal_id", goal.GoalID))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(*goal, h.reportingService.GoalProgress(*goal)))
}

// listGoals godoc
// @Summary List goals
// @Description Lists every goal with its completion percent, earliest deadline first
// @Tags goals
// @Produce  json
// @Success 200 {array} dto.GoalResponse
// @Failure 500 {object} map[string]string "Failed to list goals"
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	progress, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalProgressResponses(progress))
}

// getGoal godoc
// @Summary Get a goal
// @Tags goals
// @Produce  json
// @Param   goalID path int true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid goal ID"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to get goal"
// @Security BearerAuth
// @Router /goals/{goalID} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "goalID")
	if !ok {
		return
	}
	goal, err := h.goalService.GetGoal(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to get goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(*goal, h.reportingService.GoalProgress(*goal)))
}

// updateGoal godoc
// @Summary Replace a goal
// @Description Overwrites every field of a goal. The status is always recomputed from the amounts.
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goalID path int true "Goal ID"
// @Param   goal body dto.UpdateGoalRequest true "Goal details"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to update goal"
// @Security BearerAuth
// @Router /goals/{goalID} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "goalID")
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	update, err := req.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to update goal")
		return
	}

	goal, err := h.goalService.ReplaceGoal(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, logger, err, "Failed to update goal")
		return
	}

	logger.Info("Goal updated", slog.Int64("goal_id", id))
	c.JSON(http.StatusOK, dto.ToGoalResponse(*goal, h.reportingService.GoalProgress(*goal)))
}

// updateGoalProgress godoc
// @Summary Update goal progress
// @Description Sets the amount saved so far; the goal completes once it reaches the target
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goalID path int true "Goal ID"
// @Param   progress body dto.GoalProgressRequest true "Current amount"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to update goal progress"
// @Security BearerAuth
// @Router /goals/{goalID}/progress [patch]
func (h *goalHandler) updateGoalProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "goalID")
	if !ok {
		return
	}
	var req dto.GoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := req.ToAmount()
	if err != nil {
		respondError(c, logger, err, "Failed to update goal progress")
		return
	}

	goal, err := h.goalService.ApplyProgress(c.Request.Context(), id, amount)
	if err != nil {
		respondError(c, logger, err, "Failed to update goal progress")
		return
	}

	logger.Info("Goal progress updated", slog.Int64("goal_id", id), slog.String("status", string(goal.Status)))
	c.JSON(http.StatusOK, dto.ToGoalResponse(*goal, h.reportingService.GoalProgress(*goal)))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Removes a goal. Deleting an absent id succeeds.
// @Tags goals
// @Param   goalID path int true "Goal ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid goal ID"
// @Failure 500 {object} map[string]string "Failed to delete goal"
// @Security BearerAuth
// @Router /goals/{goalID} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "goalID")
	if !ok {
		return
	}
	if err := h.goalService.RemoveGoal(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}
