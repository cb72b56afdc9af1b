package domain

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// ErrUnknownVariant marks a variant selection that does not exist on the
// product it was requested for.
var ErrUnknownVariant = errors.New("unknown variant for product")

// NoVariantKey is the literal variant key for lines added without a variant.
const NoVariantKey = "base"

// VariantKey builds a stable, order-independent serialization of a variant's
// identity fields (SKU, name, attribute bag). It exists only for line identity
// comparison, never for display.
func VariantKey(v *Variant) string {
	if v == nil {
		return NoVariantKey
	}

	parts := make([]string, 0, 2+len(v.Attributes))
	parts = append(parts, "sku="+v.SKU, "name="+v.Name)

	keys := make([]string, 0, len(v.Attributes))
	for k := range v.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, "attr."+k+"="+v.Attributes[k])
	}

	return strings.Join(parts, "|")
}

// LineID is the deterministic identity of a cart row: two additions with the
// same product and variant identity land on the same line.
func LineID(productID string, v *Variant) string {
	return productID + ":" + VariantKey(v)
}

// CartLine is a single cart row. Product is a snapshot taken at add time for
// anonymous carts, or a partial display-only reconstruction for server-backed
// carts. ServerID is set only on server-backed lines and is distinct from the
// locally computed LineID.
type CartLine struct {
	LineID   string   `json:"lineId"`
	ServerID string   `json:"-"`
	Product  Product  `json:"product"`
	Variant  *Variant `json:"variant,omitempty"`
	Quantity int      `json:"quantity"`
}

// Cart is an ordered view over cart lines. Order is insertion order for
// anonymous carts; for server-backed carts it is whatever the server returned.
type Cart struct {
	Lines         []CartLine `json:"lines"`
	Authenticated bool       `json:"authenticated"`
	TotalItems    int        `json:"totalItems"`
	TotalPrice    float64    `json:"totalPrice"`
}

// ServerCartLine is the normalized upstream cart row. The upstream carries a
// denormalized partial product on each line; fields it omits stay zero and are
// never fetched separately.
type ServerCartLine struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Price     float64  `json:"price"`
	Category  string   `json:"category"`
	Quantity  int      `json:"quantity"`
	Variant   *Variant `json:"variant,omitempty"`
}

// CartAPI is the upstream collaborator for server-backed carts. Every call
// returns the server's full cart state; callers replace their view wholesale.
type CartAPI interface {
	GetCart(ctx context.Context, token string) ([]ServerCartLine, error)
	AddCartItem(ctx context.Context, token, productID string, quantity int, variant *Variant) ([]ServerCartLine, error)
	UpdateCartItem(ctx context.Context, token, serverLineID string, quantity int) ([]ServerCartLine, error)
	RemoveCartItem(ctx context.Context, token, serverLineID string) ([]ServerCartLine, error)
	ClearCart(ctx context.Context, token string) ([]ServerCartLine, error)
}
