package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied to a filtered product list.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByRating    SortKey = "rating"
	SortByNewest    SortKey = "newest"
)

// DefaultPriceCeiling is the upper price bound applied when no explicit
// ceiling has been chosen. The floor is always zero.
const DefaultPriceCeiling = 1000

// FilterQuery captures the transient catalog browse state: free-text search,
// optional category, sort key, and a price ceiling.
type FilterQuery struct {
	Search   string
	Category string
	SortBy   SortKey
	MaxPrice float64
}

// Apply returns the subset of products matching the query, ordered by the
// active sort key. It is a pure function: the input slice is never mutated
// and calling it twice with the same inputs yields identical output.
//
// A product matches when its name or description contains the search string
// case-insensitively, its category equals the selected category (or none is
// selected), and its price falls within [0, MaxPrice]. MaxPrice <= 0 means
// no ceiling.
func (q FilterQuery) Apply(products []Product) []Product {
	search := strings.ToLower(q.Search)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.SortBy)
	return filtered
}

// sortProducts orders the slice in place. The sort is stable so products with
// equal keys keep their relative (fetch) order.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortByRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortByNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	default:
		// Name ascending is the fallback for unknown keys as well.
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
