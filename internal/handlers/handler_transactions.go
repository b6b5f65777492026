package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/fin_assist/internal/core/ports/services"
	"github.com/SscSPs/fin_assist/internal/dto"
	"github.com/SscSPs/fin_assist/internal/middleware"
	"github.com/SscSPs/fin_assist/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to the ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	now           func() time.Time
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade, now func() time.Time) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
		now:           now,
	}
}

// registerTransactionRoutes registers routes related to the ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, now func() time.Time) {
	h := newTransactionHandler(ledgerService, now)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/export", h.exportTransactions)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Appends an income or expense to the ledger. Amounts accept "1.234,56", "1234.56" or an "R$" prefix; dates accept dd/mm/yyyy or yyyy-mm-dd and may not be in the future.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newTxn, err := req.ToDomain(h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	created, err := h.ledgerService.AddTransaction(c.Request.Context(), newTxn)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.Int64("transaction_id", created.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*created))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the ledger newest first, ties broken by id. Pass the returned nextToken to fetch the following page.
// @Tags transactions
// @Produce  json
// @Param   kind query string false "INCOME or EXPENSE"
// @Param   category query string false "Category name"
// @Param   dateFrom query string false "Inclusive lower bound (dd/mm/yyyy or yyyy-mm-dd)"
// @Param   dateTo query string false "Inclusive upper bound (dd/mm/yyyy or yyyy-mm-dd)"
// @Param   limit query int false "Page size (1-500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, params.Limit))
}

// exportTransactions godoc
// @Summary Export transactions as a spreadsheet
// @Description Writes the filtered ledger to an XLSX workbook. Pagination parameters are ignored.
// @Tags transactions
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   kind query string false "INCOME or EXPENSE"
// @Param   category query string false "Category name"
// @Param   dateFrom query string false "Inclusive lower bound"
// @Param   dateTo query string false "Inclusive upper bound"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	params.Limit, params.NextToken = 0, ""

	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteTransactionsXLSX(&buf, txns); err != nil {
		logger.Error("Failed to build workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	filename := fmt.Sprintf("transactions-%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	logger.Info("Transactions exported", slog.Int("count", len(txns)))
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a ledger entry. Deleting an absent id succeeds.
// @Tags transactions
// @Param   transactionID path int true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid transaction ID"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "transactionID")
	if !ok {
		return
	}

	if err := h.ledgerService.RemoveTransaction(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted", slog.Int64("transaction_id", id))
	c.Status(http.StatusNoContent)
}
