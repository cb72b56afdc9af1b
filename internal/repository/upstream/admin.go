package upstream

import (
	"context"
	"voltbay-storefront/internal/domain"
)

// FetchAdminAnalytics pulls the back-office dashboard payload. Read-only.
func (c *Client) FetchAdminAnalytics(ctx context.Context, token string) (*domain.AdminAnalytics, error) {
	var res domain.AdminAnalytics
	if err := c.do(ctx, "GET", "/api/v1/admin/analytics", token, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
