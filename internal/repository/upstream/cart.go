package upstream

import (
	"context"
	"voltbay-storefront/internal/domain"
)

type cartResponse struct {
	Items []domain.ServerCartLine `json:"items"`
}

type addCartItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Variant   *domain.Variant `json:"variant,omitempty"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart fetches the server cart for the token's user.
func (c *Client) GetCart(ctx context.Context, token string) ([]domain.ServerCartLine, error) {
	var res cartResponse
	if err := c.do(ctx, "GET", "/api/v1/cart", token, nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// AddCartItem adds a product (optionally a specific variant) and returns the
// server's full cart state.
func (c *Client) AddCartItem(ctx context.Context, token, productID string, quantity int, variant *domain.Variant) ([]domain.ServerCartLine, error) {
	var res cartResponse
	req := addCartItemRequest{ProductID: productID, Quantity: quantity, Variant: variant}
	if err := c.do(ctx, "POST", "/api/v1/cart/items", token, req, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// UpdateCartItem sets the absolute quantity on a server line.
func (c *Client) UpdateCartItem(ctx context.Context, token, serverLineID string, quantity int) ([]domain.ServerCartLine, error) {
	var res cartResponse
	if err := c.do(ctx, "PUT", "/api/v1/cart/items/"+serverLineID, token, updateCartItemRequest{Quantity: quantity}, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// RemoveCartItem deletes a server line.
func (c *Client) RemoveCartItem(ctx context.Context, token, serverLineID string) ([]domain.ServerCartLine, error) {
	var res cartResponse
	if err := c.do(ctx, "DELETE", "/api/v1/cart/items/"+serverLineID, token, nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// ClearCart empties the server cart.
func (c *Client) ClearCart(ctx context.Context, token string) ([]domain.ServerCartLine, error) {
	var res cartResponse
	if err := c.do(ctx, "DELETE", "/api/v1/cart", token, nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}
