package tablequery

import "github.com/SscSPs/finsight_dashboard/internal/core/domain"

// Toggle flips membership of id in the selection.
func Toggle(selected domain.IDSet, id string) domain.IDSet {
	next := selected.Clone()
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

// SelectAll clears the selection when every visible id is already selected,
// otherwise selects exactly the visible ids. Hidden rows are never added.
func SelectAll(selected domain.IDSet, visibleIDs []string) domain.IDSet {
	if AllSelected(selected, visibleIDs) {
		return domain.IDSet{}
	}
	return domain.NewIDSet(visibleIDs...)
}

// AllSelected reports whether visibleIDs is non-empty and fully selected.
func AllSelected(selected domain.IDSet, visibleIDs []string) bool {
	if len(visibleIDs) == 0 {
		return false
	}
	for _, id := range visibleIDs {
		if !selected.Has(id) {
			return false
		}
	}
	return true
}

// Retain drops every selected id that is not visible.
func Retain(selected domain.IDSet, visibleIDs []string) domain.IDSet {
	visible := domain.NewIDSet(visibleIDs...)
	next := make(domain.IDSet, len(selected))
	for id := range selected {
		if visible.Has(id) {
			next[id] = struct{}{}
		}
	}
	return next
}
