package domain

import "context"

// Badge values a product card may carry
const (
	BadgeSale       = "sale"
	BadgeNew        = "new"
	BadgeBestseller = "bestseller"
)

// Variant statuses
const (
	VariantStatusActive     = "active"
	VariantStatusDraft      = "draft"
	VariantStatusOutOfStock = "out_of_stock"
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// Product is a catalog record. Price and MRP are in the store currency;
// Discount is stored redundantly and may drift from round(100*(1-price/mrp)),
// so it is display-only and never used in computations.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Image       string    `json:"image"`
	HoverImage  string    `json:"hoverImage"`
	Price       float64   `json:"price"`
	MRP         float64   `json:"mrp"`
	Discount    int       `json:"discount"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	Badge       string    `json:"badge,omitempty"`
	CategoryID  string    `json:"categoryId"`
	Brand       string    `json:"brand,omitempty"`
	Type        string    `json:"type,omitempty"`
	Compatible  []string  `json:"compatibility,omitempty"`
	FiveG       bool      `json:"fiveG"`
	InStock     bool      `json:"inStock"`
	Variants    []Variant `json:"variants,omitempty"`
}

// Variant is a purchasable configuration of a product. Price/MRP/Discount/Stock
// override the product values when present.
type Variant struct {
	SKU        string            `json:"sku,omitempty"`
	Name       string            `json:"name"`
	Price      *float64          `json:"price,omitempty"`
	MRP        *float64          `json:"mrp,omitempty"`
	Discount   *int              `json:"discount,omitempty"`
	Stock      *int              `json:"stock,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"` // color, storage, ram, size
	Images     []string          `json:"images,omitempty"`
	Status     string            `json:"status,omitempty"`
}

// UnitPrice returns the effective price of a product/variant pairing.
// A variant price overrides the product price when present.
func UnitPrice(p Product, v *Variant) float64 {
	if v != nil && v.Price != nil {
		return *v.Price
	}
	return p.Price
}

// CatalogAPI is the upstream collaborator for catalog data.
type CatalogAPI interface {
	FetchProducts(ctx context.Context, limit int, sort string) ([]Product, error)
	FetchCategories(ctx context.Context) ([]Category, error)
}
