// Package tablequery implements the search/filter/sort pipeline of the
// transactions table together with its selection rules. Every operation returns
// a new state value; inputs are never modified.
package tablequery

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// WithSearch returns s with the search text replaced.
func WithSearch(s domain.TableQueryState, search string) domain.TableQueryState {
	next := clone(s)
	next.Search = search
	return next
}

// ToggleSort applies a column header click: the active key flips desc to asc,
// anything else (asc on the active key, or a different key) resets to desc.
func ToggleSort(s domain.TableQueryState, key domain.SortKey) domain.TableQueryState {
	next := clone(s)
	direction := domain.Descending
	if s.Sort.Key == key && s.Sort.Direction == domain.Descending {
		direction = domain.Ascending
	}
	next.Sort = domain.Sort{Key: key, Direction: direction}
	return next
}

// WithFilters returns s with the filters replaced.
func WithFilters(s domain.TableQueryState, f domain.TableFilters) domain.TableQueryState {
	next := clone(s)
	next.Filters = cloneFilters(f)
	return next
}

// ToggleCategory adds c to the category filter, or removes it when already present.
func ToggleCategory(s domain.TableQueryState, c domain.Category) domain.TableQueryState {
	next := clone(s)
	if s.Filters.HasCategory(c) {
		cats := make([]domain.Category, 0, len(s.Filters.Categories))
		for _, fc := range s.Filters.Categories {
			if fc != c {
				cats = append(cats, fc)
			}
		}
		next.Filters.Categories = nil
		if len(cats) > 0 {
			next.Filters.Categories = cats
		}
		return next
	}
	next.Filters.Categories = append(next.Filters.Categories, c)
	return next
}

// ClearFilters resets every filter and the search text. Sort is kept.
func ClearFilters(s domain.TableQueryState) domain.TableQueryState {
	next := clone(s)
	next.Search = ""
	next.Filters = domain.TableFilters{}
	return next
}

// ActiveFilterCount counts the filters that are set: a non-empty category list and
// each non-empty date or amount bound.
func ActiveFilterCount(f domain.TableFilters) int {
	count := 0
	for _, set := range []bool{
		len(f.Categories) > 0,
		f.StartDate != "",
		f.EndDate != "",
		f.MinAmount != "",
		f.MaxAmount != "",
	} {
		if set {
			count++
		}
	}
	return count
}

func clone(s domain.TableQueryState) domain.TableQueryState {
	next := s
	next.Filters = cloneFilters(s.Filters)
	if s.SelectedIDs != nil {
		next.SelectedIDs = s.SelectedIDs.Clone()
	}
	return next
}

// cloneFilters copies f. An empty category list becomes nil so that no
// category filter has a single representation.
func cloneFilters(f domain.TableFilters) domain.TableFilters {
	next := f
	next.Categories = nil
	if len(f.Categories) > 0 {
		next.Categories = make([]domain.Category, len(f.Categories))
		copy(next.Categories, f.Categories)
	}
	return next
}
