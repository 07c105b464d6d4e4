// Package viewstate maps the transactions table state to and from a URL query
// string so views can be shared and bookmarked.
package viewstate

import (
	"net/url"
	"strings"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// Query parameter keys.
const (
	ParamSearch     = "q"
	ParamSort       = "sort"
	ParamDirection  = "dir"
	ParamCategories = "cats"
	ParamStart      = "start"
	ParamEnd        = "end"
	ParamMin        = "min"
	ParamMax        = "max"
)

const categorySeparator = ","

// Encode renders the search, sort and filter parts of s as a query string without
// the leading "?". Parameters equal to their defaults are omitted. Selection is
// not part of the view.
func Encode(s domain.TableQueryState) string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}

	if s.Search != "" {
		add(ParamSearch, s.Search)
	}
	if s.Sort.Key != "" && s.Sort.Key != domain.DefaultSort.Key {
		add(ParamSort, string(s.Sort.Key))
	}
	if s.Sort.Direction != "" && s.Sort.Direction != domain.DefaultSort.Direction {
		add(ParamDirection, string(s.Sort.Direction))
	}
	if len(s.Filters.Categories) > 0 {
		names := make([]string, len(s.Filters.Categories))
		for i, c := range s.Filters.Categories {
			names[i] = string(c)
		}
		add(ParamCategories, strings.Join(names, categorySeparator))
	}
	if s.Filters.StartDate != "" {
		add(ParamStart, s.Filters.StartDate)
	}
	if s.Filters.EndDate != "" {
		add(ParamEnd, s.Filters.EndDate)
	}
	if s.Filters.MinAmount != "" {
		add(ParamMin, s.Filters.MinAmount)
	}
	if s.Filters.MaxAmount != "" {
		add(ParamMax, s.Filters.MaxAmount)
	}
	return strings.Join(parts, "&")
}

// Decode parses a query string (a leading "?" is allowed) into a table state.
// Missing, malformed or unknown values fall back to their defaults one field at
// a time; decoding never fails as a whole.
func Decode(raw string) domain.TableQueryState {
	s := domain.DefaultTableQueryState()

	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil && len(values) == 0 {
		return s
	}

	s.Search = values.Get(ParamSearch)

	if key := domain.SortKey(values.Get(ParamSort)); key.IsValid() {
		s.Sort.Key = key
	}
	if dir := domain.SortDirection(values.Get(ParamDirection)); dir.IsValid() {
		s.Sort.Direction = dir
	}

	s.Filters.Categories = decodeCategories(values.Get(ParamCategories))
	s.Filters.StartDate = values.Get(ParamStart)
	s.Filters.EndDate = values.Get(ParamEnd)
	s.Filters.MinAmount = values.Get(ParamMin)
	s.Filters.MaxAmount = values.Get(ParamMax)
	return s
}

// decodeCategories keeps known, distinct categories in their listed order.
func decodeCategories(raw string) []domain.Category {
	if raw == "" {
		return nil
	}
	var cats []domain.Category
	seen := make(map[domain.Category]bool)
	for _, name := range strings.Split(raw, categorySeparator) {
		c, ok := domain.ParseCategory(strings.TrimSpace(name))
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		cats = append(cats, c)
	}
	return cats
}
