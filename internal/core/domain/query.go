package domain

import "sort"

// SortKey names a sortable table column.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByDescription SortKey = "description"
	SortByCategory    SortKey = "category"
	SortByAmount      SortKey = "amount"
)

// IsValid reports whether k is a known sort key.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByDate, SortByDescription, SortByCategory, SortByAmount:
		return true
	}
	return false
}

// SortDirection is either ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// IsValid reports whether d is a known direction.
func (d SortDirection) IsValid() bool {
	return d == Ascending || d == Descending
}

// Sort is the active column ordering of the table.
type Sort struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort is newest first.
var DefaultSort = Sort{Key: SortByDate, Direction: Descending}

// TableFilters holds the raw filter inputs as entered by the user. Bounds that do
// not parse are ignored by the query engine rather than rejected.
type TableFilters struct {
	Categories []Category `json:"categories"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	MinAmount  string     `json:"minAmount"`
	MaxAmount  string     `json:"maxAmount"`
}

// HasCategory reports whether c is part of the category filter.
func (f TableFilters) HasCategory(c Category) bool {
	for _, fc := range f.Categories {
		if fc == c {
			return true
		}
	}
	return false
}

// TableQueryState is the transient search/sort/filter/selection state of the
// transactions table.
type TableQueryState struct {
	Search      string       `json:"search"`
	Sort        Sort         `json:"sort"`
	Filters     TableFilters `json:"filters"`
	SelectedIDs IDSet        `json:"-"`
}

// DefaultTableQueryState returns the state used when nothing has been set.
func DefaultTableQueryState() TableQueryState {
	return TableQueryState{Sort: DefaultSort}
}

// IDSet is a set of transaction ids. Treat values as immutable; helpers return copies.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of s.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// TableView is what the transactions table renders after every state change.
type TableView struct {
	Rows              []Transaction   `json:"rows"`
	SelectedIDs       []string        `json:"selectedIds"`
	AllSelected       bool            `json:"allSelected"`
	ActiveFilterCount int             `json:"activeFilterCount"`
	State             TableQueryState `json:"state"`
	Query             string          `json:"query"`
}
