package product

import (
	"sort"

	"hunargaatha-storefront/internal/domain"
)

// Display tags the storefront filters on.
const (
	tagGifting = "Best for Gifting"
	tagEco     = "Eco-friendly"
	tagFestive = "Festive Pick"
)

func filterProducts(products []domain.Product, category, filter string) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if !matchesFilter(p, filter) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesFilter(p domain.Product, filter string) bool {
	switch filter {
	case "gifting":
		return p.HasTag(tagGifting)
	case "eco":
		return p.HasTag(tagEco)
	case "festive":
		return p.HasTag(tagFestive)
	case "available":
		return p.InStock
	default:
		return true
	}
}

// sortProducts orders a copy of products. Every sort is stable, so ties keep
// their catalog order; an unknown key returns the slice unchanged.
func sortProducts(products []domain.Product, sortBy string) []domain.Product {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case "price-low":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case "price-high":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].Price.LessThan(sorted[i].Price)
		})
	case "newest":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsNew && !sorted[j].IsNew
		})
	case "popular":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Reviews > sorted[j].Reviews
		})
	}
	return sorted
}
