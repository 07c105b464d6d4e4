package mapping

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/SscSPs/finsight_dashboard/internal/dto"
)

// ToDomainTableFilters converts a filters request to domain filters.
// Unknown category names are dropped; duplicates keep their first position.
func ToDomainTableFilters(req dto.FiltersRequest) domain.TableFilters {
	return domain.TableFilters{
		Categories: ToDomainCategories(req.Categories),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		MinAmount:  req.MinAmount,
		MaxAmount:  req.MaxAmount,
	}
}

// ToDomainCategories converts category names, skipping unknown and repeated ones.
func ToDomainCategories(names []string) []domain.Category {
	if len(names) == 0 {
		return nil
	}
	cats := make([]domain.Category, 0, len(names))
	seen := make(map[domain.Category]bool, len(names))
	for _, name := range names {
		c, ok := domain.ParseCategory(name)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		cats = append(cats, c)
	}
	if len(cats) == 0 {
		return nil
	}
	return cats
}
