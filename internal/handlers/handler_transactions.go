package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finsight_dashboard/internal/apperrors"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finsight_dashboard/internal/dto"
	"github.com/SscSPs/finsight_dashboard/internal/middleware"
	"github.com/SscSPs/finsight_dashboard/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the loaded ledger and its audit log.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
	}
}

// registerTransactionRoutes registers routes related to transactions, categories and the audit log.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	rg.GET("/categories", h.listCategories)
	rg.GET("/audit-log", h.listAuditLog)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("/demo", h.loadDemo)
		transactions.POST("/upload", h.upload)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PATCH("/:transactionID/category", h.updateCategory)
		transactions.GET("/:transactionID/history", h.getHistory)
		transactions.GET("/:transactionID/suggestion", h.getSuggestion)
		transactions.POST("/:transactionID/suggestion/apply", h.applySuggestion)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Lists every transaction category with its chart color
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *transactionHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCategoryResponses())
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves the full loaded ledger in load order
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions))
}

// loadDemo godoc
// @Summary Load demo data
// @Description Replaces the ledger with the demo dataset and re-grounds the assistant
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to load demo data"
// @Router /transactions/demo [post]
func (h *transactionHandler) loadDemo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to load demo data")

	transactions, err := h.ledgerService.LoadDemo(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load demo data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load demo data"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions))
}

// upload godoc
// @Summary Upload a statement
// @Description Accepts a statement file. Statement parsing is not supported, so the demo dataset is loaded instead.
// @Tags transactions
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Statement file"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Missing file"
// @Failure 500 {object} map[string]string "Failed to load statement"
// @Router /transactions/upload [post]
func (h *transactionHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	file, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Upload without file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A statement file is required"})
		return
	}

	logger.Info("Received statement upload", slog.String("filename", file.Filename), slog.Int64("size", file.Size))
	transactions, err := h.ledgerService.Upload(c.Request.Context(), file.Filename)
	if err != nil {
		logger.Error("Failed to load statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves a transaction with its category history, newest change first
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionDetailResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	detail, err := h.ledgerService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionDetailResponse(detail))
}

// updateCategory godoc
// @Summary Recategorize a transaction
// @Description Changes the category of one transaction; a real change is recorded in the audit log with source "User"
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   request body dto.UpdateCategoryRequest true "New category"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update category"
// @Router /transactions/{transactionID}/category [patch]
func (h *transactionHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.ledgerService.RecategorizeTransaction(c.Request.Context(), transactionID, domain.Category(req.Category))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*updated))
}

// getHistory godoc
// @Summary Get category history
// @Description Lists the audit entries of one transaction, newest first
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {array} dto.AuditLogEntryResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve history"
// @Router /transactions/{transactionID}/history [get]
func (h *transactionHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	history, err := h.ledgerService.GetHistory(c.Request.Context(), transactionID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve history")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogEntryResponses(history))
}

// getSuggestion godoc
// @Summary Suggest a category
// @Description Proposes the category of the most similar other transaction, if any
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.CategorySuggestionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to compute suggestion"
// @Router /transactions/{transactionID}/suggestion [get]
func (h *transactionHandler) getSuggestion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	suggestion, err := h.ledgerService.SuggestCategory(c.Request.Context(), transactionID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to compute suggestion")
		return
	}

	c.JSON(http.StatusOK, dto.CategorySuggestionResponse{Suggestion: suggestion})
}

// applySuggestion godoc
// @Summary Apply the category suggestion
// @Description Applies the current suggestion; the change is recorded with source "AI"
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction or suggestion not found"
// @Failure 500 {object} map[string]string "Failed to apply suggestion"
// @Router /transactions/{transactionID}/suggestion/apply [post]
func (h *transactionHandler) applySuggestion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	updated, err := h.ledgerService.ApplySuggestion(c.Request.Context(), transactionID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to apply suggestion")
		return
	}

	logger.Info("Category suggestion applied", slog.String("category", string(updated.Category)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*updated))
}

// listAuditLog godoc
// @Summary List the audit log
// @Description Lists category changes, newest first, optionally paginated
// @Tags audit
// @Produce  json
// @Param   limit query int false "Page size" minimum(1) maximum(500)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListAuditLogResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list audit log"
// @Router /audit-log [get]
func (h *transactionHandler) listAuditLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAuditLogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid audit log query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.ledgerService.ListAuditLog(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list audit log from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit log"})
		return
	}

	page, next, err := pagination.PageEntries(entries, params.Limit, params.NextToken)
	if err != nil {
		logger.Warn("Invalid audit log cursor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ListAuditLogResponse{
		Entries:   dto.ToAuditLogEntryResponses(page),
		NextToken: next,
	})
}
