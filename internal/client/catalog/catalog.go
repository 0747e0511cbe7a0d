// Package catalog implements the pure transforms applied to the fetched
// product list on the home screen: visibility, category/keyword filtering,
// and price sorting. All transforms are idempotent and never mutate the
// source slice, so the server-delivered order stays intact underneath.
package catalog

import (
	"sort"
	"strings"

	"joytrade/internal/client/models"
)

// AllCategories is the pseudo-category matching every product.
const AllCategories = "All"

// SortOrder selects a price ordering for the catalog.
type SortOrder string

const (
	SortDefault SortOrder = "default"
	SortAsc     SortOrder = "asc"
	SortDesc    SortOrder = "desc"
)

// ParseSortOrder maps user input to a SortOrder, falling back to default.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case SortDefault, SortAsc, SortDesc:
		return SortOrder(s), true
	}
	return SortDefault, false
}

// Visible keeps products a buyer may see: status available and the seller
// not on vacation. The server usually pre-filters, but the client re-checks
// rather than assuming it always does.
func Visible(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Status == models.StatusAvailable && !p.Seller.Vacation {
			out = append(out, p)
		}
	}
	return out
}

// Filter keeps products in the given category (AllCategories matches
// everything) whose name or description contains the keyword,
// case-insensitively. An empty keyword matches everything.
func Filter(products []models.Product, category, keyword string) []models.Product {
	kw := strings.ToLower(keyword)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != AllCategories && p.Category != category {
			continue
		}
		if kw != "" &&
			!strings.Contains(strings.ToLower(p.Name), kw) &&
			!strings.Contains(strings.ToLower(p.Description), kw) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortByPrice returns a copy ordered by price. SortDefault preserves the
// input order; asc and desc are stable, so equal prices keep server order.
func SortByPrice(products []models.Product, order SortOrder) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	switch order {
	case SortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}
