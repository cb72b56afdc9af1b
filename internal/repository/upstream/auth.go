package upstream

import (
	"context"
	"voltbay-storefront/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type meResponse struct {
	User domain.User `json:"user"`
}

// Login exchanges credentials for a user record and an access token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	var res domain.AuthResult
	if err := c.do(ctx, "POST", "/api/v1/auth/login", "", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an account and returns the fresh session.
func (c *Client) Register(ctx context.Context, name, email, password, phone string) (*domain.AuthResult, error) {
	var res domain.AuthResult
	if err := c.do(ctx, "POST", "/api/v1/auth/register", "", registerRequest{Name: name, Email: email, Password: password, Phone: phone}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// FetchMe resolves a token to its user record.
func (c *Client) FetchMe(ctx context.Context, token string) (*domain.User, error) {
	var res meResponse
	if err := c.do(ctx, "GET", "/api/v1/auth/me", token, nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}
