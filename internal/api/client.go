// Package api provides a minimal client for the CacheForge proxy service.
// The analysis engine never touches this package; only the ops-style CLI
// commands do.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cacheforge-ai/cacheforge-skills/internal/errors"
)

const defaultBaseURL = "https://app.anvil-ai.io"

// Client handles communication with the CacheForge API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a CacheForge API client. It reads the API key from
// CACHEFORGE_API_KEY and the base URL from CACHEFORGE_BASE_URL.
func NewClient(opts ...ClientOption) (*Client, error) {
	apiKey := os.Getenv("CACHEFORGE_API_KEY")
	if apiKey == "" {
		return nil, errors.APIAuthMissing()
	}

	baseURL := defaultBaseURL
	if env := os.Getenv("CACHEFORGE_BASE_URL"); env != "" {
		baseURL = env
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Billing describes the tenant's billing state.
type Billing struct {
	CreditBalanceMicroUSD   int64 `json:"creditBalanceMicrousd"`
	AutoTopupEnabled        bool  `json:"autoTopupEnabled"`
	AutoTopupThresholdCents int   `json:"autoTopupThresholdCents"`
	AutoTopupAmountCents    int   `json:"autoTopupAmountCents"`
	DefaultPaymentMethodSet bool  `json:"defaultPaymentMethodSet"`
}

// BalanceUSD returns the credit balance in dollars.
func (b *Billing) BalanceUSD() float64 {
	return float64(b.CreditBalanceMicroUSD) / 1_000_000
}

// Tenant describes the account the API key belongs to.
type Tenant struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	UpstreamConfigured bool   `json:"upstreamConfigured"`
	ActiveKeys         int    `json:"activeKeys"`
}

// Balance fetches the tenant's billing state.
func (c *Client) Balance(ctx context.Context) (*Billing, error) {
	var resp struct {
		Billing Billing `json:"billing"`
	}
	if err := c.get(ctx, "/v1/account/billing", &resp); err != nil {
		return nil, err
	}
	return &resp.Billing, nil
}

// TenantInfo fetches tenant account details.
func (c *Client) TenantInfo(ctx context.Context) (*Tenant, error) {
	var resp struct {
		Tenant Tenant `json:"tenant"`
	}
	if err := c.get(ctx, "/v1/account/info", &resp); err != nil {
		return nil, err
	}
	return &resp.Tenant, nil
}

// apiError represents an error payload from the API.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// get issues a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return errors.APIRequestFailed("failed to create request", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.APIRequestFailed("API request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.APIRequestFailed("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil {
			detail := apiErr.Error
			if detail == "" {
				detail = apiErr.Message
			}
			if detail != "" {
				return errors.APIRequestFailed(
					fmt.Sprintf("API error (%d): %s", resp.StatusCode, detail), nil)
			}
		}
		return errors.APIRequestFailed(
			fmt.Sprintf("API returned status %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.APIRequestFailed("failed to decode response", err)
	}

	return nil
}
