package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joytrade/internal/client/models"
)

func product(id int, name, category string, price float64) models.Product {
	return models.Product{
		ID: id, Name: name, Category: category, Price: price,
		Status: models.StatusAvailable,
	}
}

func TestVisible(t *testing.T) {
	sold := product(2, "Desk", "Furniture", 30)
	sold.Status = models.StatusSold
	vacation := product(3, "Lamp", "Furniture", 10)
	vacation.Seller.Vacation = true

	in := []models.Product{product(1, "Bike", "Sports", 45), sold, vacation}
	out := Visible(in)

	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
}

func TestFilter(t *testing.T) {
	in := []models.Product{
		product(1, "Mountain Bike", "Sports", 45),
		product(2, "Desk", "Furniture", 30),
		product(3, "Bike Lock", "Sports", 8),
	}

	tests := []struct {
		name     string
		category string
		keyword  string
		wantIDs  []int
	}{
		{"all categories empty keyword", AllCategories, "", []int{1, 2, 3}},
		{"category only", "Sports", "", []int{1, 3}},
		{"keyword case insensitive", AllCategories, "bike", []int{1, 3}},
		{"category and keyword", "Sports", "lock", []int{3}},
		{"no match", AllCategories, "guitar", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Filter(in, tt.category, tt.keyword)
			ids := make([]int, 0, len(out))
			for _, p := range out {
				ids = append(ids, p.ID)
			}
			if len(tt.wantIDs) == 0 {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterMatchesDescription(t *testing.T) {
	in := []models.Product{
		{ID: 1, Name: "Desk", Description: "solid oak, barely used", Category: "Furniture"},
	}
	out := Filter(in, AllCategories, "OAK")
	require.Len(t, out, 1)
}

func TestSortByPrice(t *testing.T) {
	in := []models.Product{product(1, "A", "X", 30), product(2, "B", "X", 10)}

	asc := SortByPrice(in, SortAsc)
	require.Len(t, asc, 2)
	assert.Equal(t, []int{2, 1}, []int{asc[0].ID, asc[1].ID})

	desc := SortByPrice(in, SortDesc)
	assert.Equal(t, []int{1, 2}, []int{desc[0].ID, desc[1].ID})

	def := SortByPrice(in, SortDefault)
	if diff := cmp.Diff(in, def); diff != "" {
		t.Errorf("default order changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, in[0].ID, "input slice not mutated")
}

func TestSortByPriceStable(t *testing.T) {
	in := []models.Product{product(1, "A", "X", 10), product(2, "B", "X", 10), product(3, "C", "X", 5)}
	out := SortByPrice(in, SortAsc)
	assert.Equal(t, []int{3, 1, 2}, []int{out[0].ID, out[1].ID, out[2].ID},
		"equal prices keep incoming order")
}

func TestParseSortOrder(t *testing.T) {
	for _, s := range []string{"default", "asc", "desc"} {
		got, ok := ParseSortOrder(s)
		assert.True(t, ok)
		assert.Equal(t, SortOrder(s), got)
	}
	got, ok := ParseSortOrder("cheapest")
	assert.False(t, ok)
	assert.Equal(t, SortDefault, got)
}
