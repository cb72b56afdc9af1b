package usecase

import (
	"testing"
	"voltbay-storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accessoriesFixture is a 10-item catalog page: 3 Anker items, of which 2 are
// priced <= 1000 and rated >= 4.
func accessoriesFixture() []domain.Product {
	return []domain.Product{
		{ID: "a1", Brand: "Anker", Type: "charger", Price: 249, Rating: 4.6, ReviewCount: 1875, Badge: domain.BadgeSale, InStock: true},
		{ID: "b1", Brand: "Belkin", Type: "wireless-charger", Price: 499, Rating: 4.3, ReviewCount: 640, InStock: true},
		{ID: "a2", Brand: "Anker", Type: "power-bank", Price: 1099, Rating: 4.8, ReviewCount: 3410, Badge: domain.BadgeBestseller, InStock: true},
		{ID: "u1", Brand: "UGREEN", Type: "hub", Price: 699, Rating: 4.4, ReviewCount: 1120, Badge: domain.BadgeNew, InStock: true},
		{ID: "a3", Brand: "Anker", Type: "cable", Price: 159, Rating: 4.7, ReviewCount: 5230, InStock: true},
		{ID: "b2", Brand: "Baseus", Type: "mount", Price: 299, Rating: 3.9, ReviewCount: 310, InStock: false},
		{ID: "u2", Brand: "UGREEN", Type: "cable", Price: 129, Rating: 4.1, ReviewCount: 890, InStock: true},
		{ID: "s1", Brand: "Samsung", Type: "charger", Price: 349, Rating: 4.0, ReviewCount: 220, Badge: domain.BadgeNew, InStock: true},
		{ID: "b3", Brand: "Belkin", Type: "cable", Price: 199, Rating: 3.8, ReviewCount: 150, InStock: true},
		{ID: "s2", Brand: "Samsung", Type: "power-bank", Price: 899, Rating: 4.2, ReviewCount: 480, InStock: true},
	}
}

func fullRange() domain.FilterState {
	return domain.DefaultFilterState(domain.MaxPriceCeiling)
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestBrowseIdentityFilter(t *testing.T) {
	input := accessoriesFixture()

	res, err := Browse(input, fullRange(), domain.SortFeatured, 1, len(input))
	require.NoError(t, err)

	assert.Equal(t, len(input), res.MatchCount)
	assert.Equal(t, ids(input), ids(res.Items))
}

func TestBrowsePriceRangeContainment(t *testing.T) {
	fs := fullRange()
	fs.PriceMin = 200
	fs.PriceMax = 700

	res, err := Browse(accessoriesFixture(), fs, domain.SortFeatured, 1, 100)
	require.NoError(t, err)
	require.NotEmpty(t, res.Items)

	for _, p := range res.Items {
		assert.GreaterOrEqual(t, p.Price, 200.0)
		assert.LessOrEqual(t, p.Price, 700.0)
	}
	// Inclusive bounds, nothing outside: count them by hand.
	assert.Equal(t, []string{"a1", "b1", "u1", "b2", "s1"}, ids(res.Items))
}

func TestBrowseBrandSetDisjunctive(t *testing.T) {
	fs := fullRange()
	fs.Brands = []string{"Anker", "Samsung"}

	res, err := Browse(accessoriesFixture(), fs, domain.SortFeatured, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3", "s1", "s2"}, ids(res.Items))
}

func TestBrowseFeaturedPreservesInputOrder(t *testing.T) {
	fs := fullRange()
	fs.MinRating = 4

	res, err := Browse(accessoriesFixture(), fs, domain.SortFeatured, 1, 100)
	require.NoError(t, err)

	// Filter must not reorder: featured is the input order exactly.
	assert.Equal(t, []string{"a1", "b1", "a2", "u1", "a3", "u2", "s1", "s2"}, ids(res.Items))
}

func TestBrowsePriceSortReversalWithStableTies(t *testing.T) {
	products := []domain.Product{
		{ID: "x1", Price: 100},
		{ID: "x2", Price: 50},
		{ID: "x3", Price: 100},
		{ID: "x4", Price: 25},
	}

	asc, err := Browse(products, fullRange(), domain.SortPriceAsc, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"x4", "x2", "x1", "x3"}, ids(asc.Items))

	desc, err := Browse(products, fullRange(), domain.SortPriceDesc, 1, 100)
	require.NoError(t, err)
	// Distinct prices reverse; the x1/x3 tie group keeps input order in both.
	assert.Equal(t, []string{"x1", "x3", "x2", "x4"}, ids(desc.Items))
}

func TestBrowseBestSelling(t *testing.T) {
	res, err := Browse(accessoriesFixture(), fullRange(), domain.SortBestSelling, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a2", "a1"}, ids(res.Items))
}

func TestBrowseNewestPartitionsOnBadge(t *testing.T) {
	res, err := Browse(accessoriesFixture(), fullRange(), domain.SortNewest, 1, 100)
	require.NoError(t, err)

	// "new" badge first in input order, everything else after in input order.
	assert.Equal(t, []string{"u1", "s1", "a1", "b1", "a2", "a3", "b2", "u2", "b3", "s2"}, ids(res.Items))
}

func TestBrowsePagination(t *testing.T) {
	products := make([]domain.Product, 17)
	for i := range products {
		products[i] = domain.Product{ID: string(rune('a' + i))}
	}

	res, err := Browse(products, fullRange(), domain.SortFeatured, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Items, 8)

	res, err = Browse(products, fullRange(), domain.SortFeatured, 3, 8)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	// Past the last page: empty, not an error.
	res, err = Browse(products, fullRange(), domain.SortFeatured, 4, 8)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 17, res.MatchCount)
}

func TestBrowseEmptyResultIsPageOneOfOne(t *testing.T) {
	fs := fullRange()
	fs.Brands = []string{"NoSuchBrand"}

	res, err := Browse(accessoriesFixture(), fs, domain.SortFeatured, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, res.MatchCount)
	assert.Equal(t, 1, res.TotalPages)
	assert.Empty(t, res.Items)
}

func TestBrowseContractViolations(t *testing.T) {
	products := accessoriesFixture()

	_, err := Browse(products, fullRange(), domain.SortFeatured, 0, 8)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	_, err = Browse(products, fullRange(), domain.SortFeatured, -1, 8)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	_, err = Browse(products, fullRange(), domain.SortFeatured, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPageSize)

	_, err = Browse(products, fullRange(), "reviews-desc", 1, 8)
	assert.ErrorIs(t, err, domain.ErrUnknownSortKey)

	inverted := fullRange()
	inverted.PriceMin = 10
	inverted.PriceMax = 5
	_, err = Browse(products, inverted, domain.SortFeatured, 1, 8)
	assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
}

func TestBrowseTriStateAndStockFlags(t *testing.T) {
	products := []domain.Product{
		{ID: "g1", FiveG: true, InStock: true},
		{ID: "g2", FiveG: false, InStock: true},
		{ID: "g3", FiveG: true, InStock: false},
	}

	fs := fullRange()
	fs.FiveG = domain.TriTrue
	res, err := Browse(products, fs, domain.SortFeatured, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g3"}, ids(res.Items))

	fs.FiveG = domain.TriFalse
	res, err = Browse(products, fs, domain.SortFeatured, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"g2"}, ids(res.Items))

	fs = fullRange()
	fs.InStock = true
	res, err = Browse(products, fs, domain.SortFeatured, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2"}, ids(res.Items))
}

func TestBrowseAnkerEndToEnd(t *testing.T) {
	fs := domain.FilterState{
		PriceMin:  0,
		PriceMax:  1000,
		Brands:    []string{"Anker"},
		MinRating: 4,
	}

	res, err := Browse(accessoriesFixture(), fs, domain.SortFeatured, 1, 8)
	require.NoError(t, err)

	// 3 Anker items; a2 is over 1000, leaving exactly 2.
	assert.Equal(t, 2, res.MatchCount)
	assert.Equal(t, []string{"a1", "a3"}, ids(res.Items))
}
