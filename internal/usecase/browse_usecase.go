package usecase

import (
	"sort"
	"voltbay-storefront/internal/domain"
)

// BrowseUsecase binds the pure browse engine to the catalog snapshot.
type BrowseUsecase struct {
	catalog *CatalogUsecase
}

func NewBrowseUsecase(catalog *CatalogUsecase) *BrowseUsecase {
	return &BrowseUsecase{catalog: catalog}
}

// Browse runs the engine over the current catalog, optionally scoped to one
// category.
func (uc *BrowseUsecase) Browse(categoryID string, fs domain.FilterState, sortKey string, page, pageSize int) (domain.BrowseResult, error) {
	var products []domain.Product
	if categoryID != "" {
		products = uc.catalog.ProductsByCategory(categoryID)
	} else {
		products = uc.catalog.Products()
	}
	return Browse(products, fs, sortKey, page, pageSize)
}

// Browse is the filter/sort/paginate engine: a pure, total function over its
// inputs. Out-of-range paging input and malformed filter state are contract
// violations and fail loudly rather than clamping.
func Browse(products []domain.Product, fs domain.FilterState, sortKey string, page, pageSize int) (domain.BrowseResult, error) {
	if page < 1 {
		return domain.BrowseResult{}, domain.ErrInvalidPage
	}
	if pageSize < 1 {
		return domain.BrowseResult{}, domain.ErrInvalidPageSize
	}
	if err := fs.Validate(); err != nil {
		return domain.BrowseResult{}, err
	}
	if !validSortKey(sortKey) {
		return domain.BrowseResult{}, domain.ErrUnknownSortKey
	}

	filtered := applyFilters(products, fs)
	sortProducts(filtered, sortKey)

	matchCount := len(filtered)
	totalPages := (matchCount + pageSize - 1) / pageSize
	if totalPages == 0 {
		// An empty match set still reports page 1 of 1.
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	var items []domain.Product
	switch {
	case start >= matchCount:
		// Past the last page: empty slice, not an error.
		items = []domain.Product{}
	case end > matchCount:
		items = filtered[start:matchCount]
	default:
		items = filtered[start:end]
	}

	return domain.BrowseResult{
		Items:      items,
		MatchCount: matchCount,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func validSortKey(key string) bool {
	for _, k := range domain.SortKeys {
		if k == key {
			return true
		}
	}
	return false
}

// applyFilters is conjunctive across predicate groups and disjunctive within
// each set group. An empty set places no restriction on its dimension.
func applyFilters(products []domain.Product, fs domain.FilterState) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Price < fs.PriceMin || p.Price > fs.PriceMax {
			continue
		}
		if fs.MinRating > 0 && p.Rating < fs.MinRating {
			continue
		}
		if !inSet(p.Brand, fs.Brands) {
			continue
		}
		if !inSet(p.Type, fs.Types) {
			continue
		}
		if !anyInSet(p.Compatible, fs.Compatible) {
			continue
		}
		if !fs.FiveG.Match(p.FiveG) {
			continue
		}
		if fs.InStock && !p.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}

func inSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func anyInSet(values, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		for _, v := range values {
			if s == v {
				return true
			}
		}
	}
	return false
}

// sortProducts orders in place. Every key is a stable sort, so ties keep
// their pre-sort relative order; "featured" is the input order untouched.
func sortProducts(products []domain.Product, key string) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(a, b int) bool {
			return products[a].Price < products[b].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(a, b int) bool {
			return products[a].Price > products[b].Price
		})
	case domain.SortBestSelling:
		sort.SliceStable(products, func(a, b int) bool {
			return products[a].ReviewCount > products[b].ReviewCount
		})
	case domain.SortNewest:
		// Coarse partition on the "new" badge, not a true recency sort.
		sort.SliceStable(products, func(a, b int) bool {
			return products[a].Badge == domain.BadgeNew && products[b].Badge != domain.BadgeNew
		})
	}
}
