// Package upstream implements the HTTP client for the commerce API this
// service fronts. The upstream stays the system of record for authenticated
// carts, auth and admin analytics; every call here is a single attempt with no
// retry — a failed attempt is terminal and the caller keeps its last good state.
package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"voltbay-storefront/pkg/logger"

	"github.com/goccy/go-json"
)

// Client talks to the upstream commerce API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an upstream API client. An empty baseURL yields a client
// whose calls all fail; callers fall back per their own policy.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do performs one request against the upstream and decodes the response body
// into out (when out is non-nil). Non-2xx statuses are errors.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}, out interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("upstream not configured")
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.UpstreamCall(method, path, 0, time.Since(start), err)
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err = fmt.Errorf("upstream error (status %d): %s", resp.StatusCode, string(respBody))
		logger.UpstreamCall(method, path, resp.StatusCode, time.Since(start), err)
		return err
	}

	logger.UpstreamCall(method, path, resp.StatusCode, time.Since(start), nil)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}
