package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finsight_dashboard/internal/dto"
	"github.com/SscSPs/finsight_dashboard/internal/middleware"
	"github.com/SscSPs/finsight_dashboard/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// tableHandler handles the transactions table: search, sort, filters, selection and bulk actions.
type tableHandler struct {
	tableService portssvc.TableSvcFacade
}

func newTableHandler(ts portssvc.TableSvcFacade) *tableHandler {
	return &tableHandler{
		tableService: ts,
	}
}

// registerTableRoutes registers routes for the transactions table
func registerTableRoutes(rg *gin.RouterGroup, tableService portssvc.TableSvcFacade) {
	h := newTableHandler(tableService)

	table := rg.Group("/table")
	{
		table.GET("", h.getView)
		table.PUT("/search", h.setSearch)
		table.POST("/sort", h.toggleSort)

		filters := table.Group("/filters")
		filters.PUT("", h.setFilters)
		filters.POST("/category", h.toggleCategoryFilter)
		filters.DELETE("", h.clearFilters)

		selection := table.Group("/selection")
		selection.POST("/toggle", h.toggleSelection)
		selection.POST("/all", h.toggleSelectAll)

		bulk := table.Group("/bulk")
		bulk.POST("/category", h.bulkRecategorize)
		bulk.POST("/flag", h.bulkToggleFlag)
	}
}

// respond writes the view or maps err to an error response.
func (h *tableHandler) respond(c *gin.Context, logger *slog.Logger, view *domain.TableView, err error, failureMsg string) {
	if err != nil {
		writeServiceError(c, logger, err, failureMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToTableViewResponse(view))
}

// getView godoc
// @Summary Get the table view
// @Description Renders the table. When view parameters (q, sort, dir, cats, start, end, min, max) are present, the table state is first replaced with them.
// @Tags table
// @Produce  json
// @Param   q query string false "Search term"
// @Param   sort query string false "Sort key" Enums(date, description, category, amount)
// @Param   dir query string false "Sort direction" Enums(asc, desc)
// @Param   cats query string false "Comma separated categories"
// @Param   start query string false "Start date (YYYY-MM-DD)"
// @Param   end query string false "End date (YYYY-MM-DD)"
// @Param   min query string false "Minimum amount"
// @Param   max query string false "Maximum amount"
// @Success 200 {object} dto.TableViewResponse
// @Failure 500 {object} map[string]string "Failed to render table"
// @Router /table [get]
func (h *tableHandler) getView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if raw := c.Request.URL.RawQuery; raw != "" {
		logger.Debug("Seeding table state from query", slog.String("query", raw))
		view, err := h.tableService.SeedFromQuery(c.Request.Context(), raw)
		h.respond(c, logger, view, err, "Failed to render table")
		return
	}

	view, err := h.tableService.GetView(c.Request.Context())
	h.respond(c, logger, view, err, "Failed to render table")
}

// setSearch godoc
// @Summary Set the search term
// @Tags table
// @Accept  json
// @Produce  json
// @Param   request body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.TableViewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /table/search [put]
func (h *tableHandler) setSearch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetSearch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.tableService.SetSearch(c.Request.Context(), req.Search)
	h.respond(c, logger, view, err, "Failed to update search")
}

// toggleSort godoc
// @Summary Sort by a column
// @Description Sorts by key descending, or flips the direction when key is already the active sort
// @Tags table
// @Accept  json
// @Produce  json
// @Param   request body dto.SortRequest true "Sort key"
// @Success 200 {object} dto.TableViewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /table/sort [post]
func (h *tableHandler) toggleSort(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ToggleSort", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.tableService.ToggleSort(c.Request.Context(), domain.SortKey(req.Key))
	h.respond(c, logger, view, err, "Failed to update sort")
}

// setFilters godoc
// @Summary Replace the filters
// @Tags table
// @Accept  json
// @Produce  json
// @Param   request body dto.FiltersRequest true "Filters"
// @Success 200 {object} dto.TableViewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /table/filters [put]
func (h *tableHandler) setFilters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetFilters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.tableService.SetFilters(c.Request.Context(), mapping.ToDomainTableFilters(req))
	h.respond(c, logger, view, err, "Failed to update filters")
}

// toggleCategoryFilter godoc
// @Summary Toggle a category filter
// @Tags table
// @Accept  json
// @Produce  json
// @Param   request body dto.CategoryRequest true "Category"
// @Success 200 {object} dto.TableViewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /table/filters/category [post]
func (h *tableHandler) toggleCategoryFilter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ToggleCategoryFilter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.tableService.ToggleCategoryFilter(c.Request.Context(), domain.Category(req.Category))
	h.respond(c, logger, view, err, "Failed to update filters")
}

// clearFilters godoc
// @Summary Clear filters and search
// @Tags table
// @Produce  json
// @Success 200 {object} dto.TableViewResponse
// @Router /table/filters [delete]
func (h *tableHandler) clearFilters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, err := h.tableService.ClearFilters(c.Request.Context())
	h.respond(c, logger, view, err, "Failed to clear filters")
}

// toggleSelection godoc
// @Summary Toggle a row selection
// @Tags table
// @Accept  json
// @Produce  json
// @Param   request body dto.ToggleSelectionRequest true "Transaction"
// @Success 200 {object} dto.TableViewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Row not visible"
// @Router /table/selection/toggle [post]
func (h *tableHandler) toggleSelection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ToggleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ToggleSelection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.tableService.ToggleSelection(c.Request.Context(), req.TransactionID)
	h.respond(c, logger, view, err, "Failed to update selection")
}

// toggleSelectAll godoc
// @Summary Toggle select all
// @Description Selects every visible row, or clears the selection when every visible row is selected
// @Tags table
// @Produce  json
// @Success 200 {object} dto.TableViewResponse
// @Router /table/selection/all [post]
func (h *tableHandler) toggleSelectAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, err := h.tableService.ToggleSelectAll(c.Request.Context())
	h.respond(c, logger, view, err, "Failed to update selection")
}

// bulkRecategorize godoc
// @Summary Recategorize selected rows
// @Description Moves the selected rows to a category, recording "Bulk Edit" audit entries, and clears the selection
// @Tags table
// @Accept  json
// @Produce  json
// @Param   request body dto.CategoryRequest true "Category"
// @Success 200 {object} dto.TableViewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "No transactions selected"
// @Router /table/bulk/category [post]
func (h *tableHandler) bulkRecategorize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkRecategorize", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.tableService.BulkRecategorize(c.Request.Context(), domain.Category(req.Category))
	h.respond(c, logger, view, err, "Failed to recategorize selection")
}

// bulkToggleFlag godoc
// @Summary Toggle the flag of selected rows
// @Tags table
// @Produce  json
// @Success 200 {object} dto.TableViewResponse
// @Failure 409 {object} map[string]string "No transactions selected"
// @Router /table/bulk/flag [post]
func (h *tableHandler) bulkToggleFlag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, err := h.tableService.BulkToggleFlag(c.Request.Context())
	h.respond(c, logger, view, err, "Failed to flag selection")
}
