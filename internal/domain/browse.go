package domain

import "errors"

// Sort keys over a filtered product set. "featured" is the input order.
const (
	SortFeatured    = "featured"
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortBestSelling = "best-selling"
	SortNewest      = "newest"
)

var SortKeys = []string{SortFeatured, SortPriceAsc, SortPriceDesc, SortBestSelling, SortNewest}

// Contract violations from the browse engine. These indicate caller bugs and
// are never clamped away.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("page size must be >= 1")
	ErrInvalidPriceRange = errors.New("price range min must be <= max")
	ErrInvalidMinRating  = errors.New("min rating must be between 0 and 5")
	ErrUnknownSortKey    = errors.New("unknown sort key")
)

// TriState is a yes/no/unset flag. The zero value is unset (filter inactive).
type TriState int

const (
	TriUnset TriState = iota
	TriTrue
	TriFalse
)

// Match reports whether a boolean field satisfies the flag.
func (t TriState) Match(v bool) bool {
	switch t {
	case TriTrue:
		return v
	case TriFalse:
		return !v
	default:
		return true
	}
}

// FilterState holds the active predicate groups for a category page.
// Groups are conjunctive; membership within a set group is disjunctive and an
// empty set places no restriction on that dimension. The price range is always
// active.
type FilterState struct {
	PriceMin   float64  `json:"priceMin"`
	PriceMax   float64  `json:"priceMax"`
	Brands     []string `json:"brands,omitempty"`
	Types      []string `json:"types,omitempty"`
	Compatible []string `json:"compatibility,omitempty"`
	MinRating  float64  `json:"minRating"`
	FiveG      TriState `json:"fiveG"`
	InStock    bool     `json:"inStockOnly"`
}

// MaxPriceCeiling is the absolute upper bound of the storefront price range.
const MaxPriceCeiling = 1_000_000_000

// DefaultFilterState is the page-default: full price range, nothing selected.
func DefaultFilterState(priceMax float64) FilterState {
	return FilterState{PriceMin: 0, PriceMax: priceMax}
}

func (f FilterState) Validate() error {
	if f.PriceMin > f.PriceMax {
		return ErrInvalidPriceRange
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return ErrInvalidMinRating
	}
	return nil
}

// BrowseResult is one page of a filtered+sorted product view.
type BrowseResult struct {
	Items      []Product `json:"items"`
	MatchCount int       `json:"matchCount"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
}
