package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/dto"
	"github.com/SscSPs/fin_assist/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardRecentCount is the number of latest transactions shown on the dashboard.
const dashboardRecentCount = 5

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, now func() time.Time) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, now func() time.Time) {
	h := newReportingHandler(reportingService, now)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getPeriodSummary)
		reportingGroup.GET("/totals", h.getLedgerTotals)
		reportingGroup.GET("/dashboard", h.getDashboard)
	}
}

// periodFromQuery reads month and year, defaulting to the current month.
func (h *reportingHandler) periodFromQuery(c *gin.Context) (domain.Period, error) {
	current := domain.PeriodOf(h.now())
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(current.Month)))
	if err != nil {
		return domain.Period{}, apperrors.NewValidationError("month", "must be a number")
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(current.Year)))
	if err != nil {
		return domain.Period{}, apperrors.NewValidationError("year", "must be a number")
	}
	period := domain.Period{Month: month, Year: year}
	return period, period.Validate()
}

// getPeriodSummary godoc
// @Summary Monthly summary
// @Description Totals income and expense of a month and breaks expenses down by category. Removed categories are grouped under "__unknown__".
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {object} dto.PeriodSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getPeriodSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period, err := h.periodFromQuery(c)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	logger = logger.With(slog.Int("month", period.Month), slog.Int("year", period.Year))
	summary, err := h.reportingService.PeriodSummary(c.Request.Context(), period)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	logger.Info("Period summary generated")
	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(*summary))
}

// getLedgerTotals godoc
// @Summary All-time totals
// @Description Totals income and expense over the whole ledger
// @Tags reports
// @Produce json
// @Success 200 {object} dto.LedgerTotalsResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/totals [get]
func (h *reportingHandler) getLedgerTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	totals, err := h.reportingService.LedgerTotals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerTotalsResponse(*totals))
}

// getDashboard godoc
// @Summary Dashboard
// @Description Combines the monthly summary, budget consumption, goal progress and the latest transactions
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to generate dashboard"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period, err := h.periodFromQuery(c)
	if err != nil {
		respondError(c, logger, err, "Failed to generate dashboard")
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), period, dashboardRecentCount)
	if err != nil {
		respondError(c, logger, err, "Failed to generate dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(*dashboard))
}
