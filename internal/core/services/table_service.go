package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/finsight_dashboard/internal/apperrors"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finsight_dashboard/internal/core/tablequery"
	"github.com/SscSPs/finsight_dashboard/internal/utils/viewstate"
)

// TableService holds the transient table state of the single dashboard session.
// Every rendered view narrows the selection to the rows that are still visible.
type TableService struct {
	BaseService
	mu     sync.Mutex
	state  domain.TableQueryState
	ledger portssvc.LedgerSvcFacade
}

// NewTableService creates a table service over the ledger, starting from the default state
func NewTableService(ledger portssvc.LedgerSvcFacade) *TableService {
	state := domain.DefaultTableQueryState()
	state.SelectedIDs = domain.IDSet{}
	return &TableService{state: state, ledger: ledger}
}

// Ensure TableService implements the TableSvcFacade and LedgerLoadListener interfaces
var (
	_ portssvc.TableSvcFacade     = (*TableService)(nil)
	_ portssvc.LedgerLoadListener = (*TableService)(nil)
)

// GetView renders the current state.
func (s *TableService) GetView(ctx context.Context) (*domain.TableView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render(ctx)
}

// SeedFromQuery replaces search, sort and filters with a decoded view query.
func (s *TableService) SeedFromQuery(ctx context.Context, rawQuery string) (*domain.TableView, error) {
	return s.update(ctx, func(state domain.TableQueryState) domain.TableQueryState {
		seeded := viewstate.Decode(rawQuery)
		seeded.SelectedIDs = state.SelectedIDs
		return seeded
	})
}

// SetSearch replaces the search term.
func (s *TableService) SetSearch(ctx context.Context, search string) (*domain.TableView, error) {
	return s.update(ctx, func(state domain.TableQueryState) domain.TableQueryState {
		return tablequery.WithSearch(state, search)
	})
}

// ToggleSort applies a column header click.
func (s *TableService) ToggleSort(ctx context.Context, key domain.SortKey) (*domain.TableView, error) {
	if !key.IsValid() {
		return nil, fmt.Errorf("%w: unknown sort key %q", apperrors.ErrValidation, key)
	}
	return s.update(ctx, func(state domain.TableQueryState) domain.TableQueryState {
		return tablequery.ToggleSort(state, key)
	})
}

// SetFilters replaces all filters.
func (s *TableService) SetFilters(ctx context.Context, filters domain.TableFilters) (*domain.TableView, error) {
	return s.update(ctx, func(state domain.TableQueryState) domain.TableQueryState {
		return tablequery.WithFilters(state, filters)
	})
}

// ToggleCategoryFilter adds or removes one category from the filter.
func (s *TableService) ToggleCategoryFilter(ctx context.Context, category domain.Category) (*domain.TableView, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
	}
	return s.update(ctx, func(state domain.TableQueryState) domain.TableQueryState {
		return tablequery.ToggleCategory(state, category)
	})
}

// ClearFilters resets filters and search.
func (s *TableService) ClearFilters(ctx context.Context) (*domain.TableView, error) {
	return s.update(ctx, tablequery.ClearFilters)
}

// ToggleSelection flips a row in or out of the selection.
func (s *TableService) ToggleSelection(ctx context.Context, transactionID string) (*domain.TableView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.visibleRows(ctx)
	if err != nil {
		return nil, err
	}
	if !containsID(rows, transactionID) {
		return nil, fmt.Errorf("transaction %s is not visible: %w", transactionID, apperrors.ErrNotFound)
	}
	s.state.SelectedIDs = tablequery.Toggle(s.state.SelectedIDs, transactionID)
	return s.render(ctx)
}

// ToggleSelectAll selects every visible row, or clears a full selection.
func (s *TableService) ToggleSelectAll(ctx context.Context) (*domain.TableView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.visibleRows(ctx)
	if err != nil {
		return nil, err
	}
	s.state.SelectedIDs = tablequery.SelectAll(s.state.SelectedIDs, tablequery.VisibleIDs(rows))
	return s.render(ctx)
}

// BulkRecategorize recategorizes the visible selection and clears it.
func (s *TableService) BulkRecategorize(ctx context.Context, category domain.Category) (*domain.TableView, error) {
	return s.bulk(ctx, "recategorize", func(selected domain.IDSet) error {
		_, err := s.ledger.BulkRecategorize(ctx, selected, category)
		return err
	})
}

// BulkToggleFlag flips the flag of the visible selection and clears it.
func (s *TableService) BulkToggleFlag(ctx context.Context) (*domain.TableView, error) {
	return s.bulk(ctx, "flag", func(selected domain.IDSet) error {
		return s.ledger.BulkToggleFlag(ctx, selected)
	})
}

// OnLedgerLoaded drops the selection when a new dataset is loaded.
func (s *TableService) OnLedgerLoaded(ctx context.Context, _ []domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedIDs = domain.IDSet{}
	s.LogDebug(ctx, "Table selection reset after ledger load")
}

func (s *TableService) bulk(ctx context.Context, action string, apply func(selected domain.IDSet) error) (*domain.TableView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.visibleRows(ctx)
	if err != nil {
		return nil, err
	}
	selected := tablequery.Retain(s.state.SelectedIDs, tablequery.VisibleIDs(rows))
	if selected.Len() == 0 {
		return nil, apperrors.ErrNoSelection
	}
	if err := apply(selected); err != nil {
		s.LogError(ctx, err, "Bulk action failed", slog.String("action", action))
		return nil, fmt.Errorf("bulk %s failed: %w", action, err)
	}

	s.state.SelectedIDs = domain.IDSet{}
	return s.render(ctx)
}

func (s *TableService) update(ctx context.Context, change func(domain.TableQueryState) domain.TableQueryState) (*domain.TableView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = change(s.state)
	view, err := s.render(ctx)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Table state changed",
		slog.String("query", view.Query),
		slog.Int("visible_rows", len(view.Rows)),
		slog.Int("selected", len(view.SelectedIDs)))
	return view, nil
}

func (s *TableService) visibleRows(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load table rows: %w", err)
	}
	return tablequery.Query(transactions, s.state), nil
}

// render runs the query, prunes the selection to the visible rows and builds the view.
// Callers hold s.mu.
func (s *TableService) render(ctx context.Context) (*domain.TableView, error) {
	rows, err := s.visibleRows(ctx)
	if err != nil {
		return nil, err
	}
	visible := tablequery.VisibleIDs(rows)
	s.state.SelectedIDs = tablequery.Retain(s.state.SelectedIDs, visible)

	state := s.state
	state.SelectedIDs = s.state.SelectedIDs.Clone()
	return &domain.TableView{
		Rows:              rows,
		SelectedIDs:       state.SelectedIDs.Sorted(),
		AllSelected:       tablequery.AllSelected(state.SelectedIDs, visible),
		ActiveFilterCount: tablequery.ActiveFilterCount(state.Filters),
		State:             state,
		Query:             viewstate.Encode(state),
	}, nil
}
