package services

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// TableReaderSvc defines read operations for the transactions table
type TableReaderSvc interface {
	// GetView renders the table for the current state.
	GetView(ctx context.Context) (*domain.TableView, error)
}

// TableStateSvc defines operations that change the search, sort and filter state.
// Every change narrows the selection to the rows that remain visible.
type TableStateSvc interface {
	// SeedFromQuery replaces search, sort and filters with the state decoded
	// from a shared view query string.
	SeedFromQuery(ctx context.Context, rawQuery string) (*domain.TableView, error)

	// SetSearch replaces the search term.
	SetSearch(ctx context.Context, search string) (*domain.TableView, error)

	// ToggleSort sorts by key, flipping the direction when key is already active.
	ToggleSort(ctx context.Context, key domain.SortKey) (*domain.TableView, error)

	// SetFilters replaces all filters.
	SetFilters(ctx context.Context, filters domain.TableFilters) (*domain.TableView, error)

	// ToggleCategoryFilter adds or removes one category from the category filter.
	ToggleCategoryFilter(ctx context.Context, category domain.Category) (*domain.TableView, error)

	// ClearFilters resets filters and search.
	ClearFilters(ctx context.Context) (*domain.TableView, error)
}

// TableSelectionSvc defines selection and bulk operations on the visible rows
type TableSelectionSvc interface {
	// ToggleSelection adds or removes a visible row from the selection.
	ToggleSelection(ctx context.Context, transactionID string) (*domain.TableView, error)

	// ToggleSelectAll selects every visible row, or clears the selection when
	// every visible row is already selected.
	ToggleSelectAll(ctx context.Context) (*domain.TableView, error)

	// BulkRecategorize moves the selected rows to category and clears the selection.
	BulkRecategorize(ctx context.Context, category domain.Category) (*domain.TableView, error)

	// BulkToggleFlag flips the flag of the selected rows and clears the selection.
	BulkToggleFlag(ctx context.Context) (*domain.TableView, error)
}

// TableSvcFacade combines all table-related service interfaces
type TableSvcFacade interface {
	TableReaderSvc
	TableStateSvc
	TableSelectionSvc
}
