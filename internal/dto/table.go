package dto

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// SearchRequest replaces the table search term. An empty term clears the search.
type SearchRequest struct {
	Search string `json:"search"`
}

// SortRequest applies a column header click.
type SortRequest struct {
	Key string `json:"key" binding:"required,sortkey"`
}

// FiltersRequest replaces all table filters. Date and amount bounds are kept as
// entered; bounds that do not parse are ignored when filtering.
type FiltersRequest struct {
	Categories []string `json:"categories" binding:"omitempty,dive,category"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	MinAmount  string   `json:"minAmount"`
	MaxAmount  string   `json:"maxAmount"`
}

// CategoryRequest names a single category.
type CategoryRequest struct {
	Category string `json:"category" binding:"required,category"`
}

// ToggleSelectionRequest flips one row in or out of the selection.
type ToggleSelectionRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

// TableStateResponse is the serialisable part of the table state.
type TableStateResponse struct {
	Search  string              `json:"search"`
	Sort    domain.Sort         `json:"sort"`
	Filters domain.TableFilters `json:"filters"`
}

// TableViewResponse is returned by every table endpoint.
type TableViewResponse struct {
	Rows              []TransactionResponse `json:"rows"`
	SelectedIDs       []string              `json:"selectedIds"`
	AllSelected       bool                  `json:"allSelected"`
	ActiveFilterCount int                   `json:"activeFilterCount"`
	State             TableStateResponse    `json:"state"`
	Query             string                `json:"query"`
}

// ToTableViewResponse converts a domain.TableView to its response DTO
func ToTableViewResponse(v *domain.TableView) TableViewResponse {
	rows := make([]TransactionResponse, len(v.Rows))
	for i, t := range v.Rows {
		rows[i] = ToTransactionResponse(t)
	}
	selected := v.SelectedIDs
	if selected == nil {
		selected = []string{}
	}
	filters := v.State.Filters
	if filters.Categories == nil {
		filters.Categories = []domain.Category{}
	}
	return TableViewResponse{
		Rows:              rows,
		SelectedIDs:       selected,
		AllSelected:       v.AllSelected,
		ActiveFilterCount: v.ActiveFilterCount,
		State: TableStateResponse{
			Search:  v.State.Search,
			Sort:    v.State.Sort,
			Filters: filters,
		},
		Query: v.Query,
	}
}
