package upstream

import (
	"context"
	"fmt"
	"net/url"
	"voltbay-storefront/internal/domain"
)

type productListResponse struct {
	Items []domain.Product `json:"items"`
}

// FetchProducts pulls the upstream product list.
func (c *Client) FetchProducts(ctx context.Context, limit int, sort string) ([]domain.Product, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	path := "/api/v1/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp productListResponse
	if err := c.do(ctx, "GET", path, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// FetchCategories pulls the upstream category list.
func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := c.do(ctx, "GET", "/api/v1/categories", "", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
